package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{
		"fetch_page", "extract_columns",
		"load_spreadsheet", "save_spreadsheet",
		"count_words", "generate_sentences",
	}

	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
		assert.NotEmpty(t, def.Description)
	}
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryAcquisition: {"fetch_page", "extract_columns"},
		CategoryPersistence: {"load_spreadsheet", "save_spreadsheet"},
		CategoryAnalysis:    {"count_words", "generate_sentences"},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			def, ok := StepRegistry[stepName]
			require.True(t, ok)
			assert.Equal(t, category, def.Category, "Step %s should be in category %s", stepName, category)
		}
	}
}

func TestBuiltInPlansAreValid(t *testing.T) {
	assert.NoError(t, ValidatePlan(RunPlan))
	assert.NoError(t, ValidatePlan(AnalyzePlan))
}

func TestValidatePlan_MissingDependency(t *testing.T) {
	err := ValidatePlan([]string{FetchPage, CountWords})
	require.Error(t, err)

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, CountWords, depErr.Step)
	assert.Equal(t, []string{ArtifactPhrases}, depErr.MissingDependencies)
}

func TestValidatePlan_OutOfOrder(t *testing.T) {
	err := ValidatePlan([]string{GenerateSentences, LoadSpreadsheet, CountWords})

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, GenerateSentences, depErr.Step)
}

func TestValidatePlan_UnknownStep(t *testing.T) {
	err := ValidatePlan([]string{"render_latex"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestValidatePlan_Empty(t *testing.T) {
	assert.Error(t, ValidatePlan(nil))
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Contains(t, err.Error(), "test_step")
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Step 1/5: Fetching phrase page", Label(RunPlan, 0))
	assert.Equal(t, "Step 3/3: Generating sentences", Label(AnalyzePlan, 2))
}
