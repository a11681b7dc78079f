package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchema_IsValidJSON(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ConfigSchema), &v))
	assert.Equal(t, "object", v["type"])
}

func TestValidateConfig_Valid(t *testing.T) {
	doc := `{
		"page_url": "https://en.wikipedia.org/wiki/List_of_Latin_phrases_(full)",
		"output_file": "out.xlsx",
		"min_word_length": 5,
		"filler": "lux",
		"verbose": true
	}`

	assert.NoError(t, ValidateConfig([]byte(doc)))
}

func TestValidateConfig_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateConfig([]byte(`{}`)))
}

func TestValidateConfig_UnknownField(t *testing.T) {
	err := ValidateConfig([]byte(`{"top_n": 10}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "top_n")
}

func TestValidateConfig_WrongType(t *testing.T) {
	err := ValidateConfig([]byte(`{"min_word_length": "four", "verbose": "yes"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)

	fields := []string{validationErr.Errors[0].Field, validationErr.Errors[1].Field}
	assert.ElementsMatch(t, []string{"min_word_length", "verbose"}, fields)
}

func TestValidateConfig_NegativeNumber(t *testing.T) {
	err := ValidateConfig([]byte(`{"timeout_seconds": -1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidateConfig_Malformed(t *testing.T) {
	err := ValidateConfig([]byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "carpe"}`))

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "is required")
}
