package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_PadsKeywords(t *testing.T) {
	output, err := executeCommand(t, "generate", "veritas", "amor")
	require.NoError(t, err)

	assert.Contains(t, output, "1. El concepto de 'veritas' ha marcado la historia.")
	assert.Contains(t, output, "2. Muchos pensadores hablaron sobre 'amor'.")
	assert.Contains(t, output, "3. 'vida' es una idea fundamental en la filosofía.")
	assert.Contains(t, output, "4. La sociedad moderna aún depende de 'vida'.")
	assert.Contains(t, output, "5. Comprender 'vida' nos ayuda a reflexionar.")
}

func TestGenerateCommand_NoKeywords(t *testing.T) {
	output, err := executeCommand(t, "generate")
	require.NoError(t, err)

	assert.Contains(t, output, "1. El concepto de 'vida' ha marcado la historia.")
	assert.Contains(t, output, "5. Comprender 'vida' nos ayuda a reflexionar.")
}

func TestGenerateCommand_CustomFiller(t *testing.T) {
	output, err := executeCommand(t, "generate", "--filler", "lux", "amor")
	require.NoError(t, err)

	assert.Contains(t, output, "1. El concepto de 'amor' ha marcado la historia.")
	assert.Contains(t, output, "2. Muchos pensadores hablaron sobre 'lux'.")
}

func TestGenerateCommand_InvalidFiller(t *testing.T) {
	_, err := executeCommand(t, "generate", "--filler", "two words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'filler'")
}
