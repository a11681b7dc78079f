package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopWords_Words(t *testing.T) {
	top := TopWords{
		{Word: "vita", Count: 2},
		{Word: "brevis", Count: 2},
		{Word: "longa", Count: 1},
	}

	assert.Equal(t, []string{"vita", "brevis", "longa"}, top.Words())
}

func TestTopWords_WordsEmpty(t *testing.T) {
	var top TopWords

	words := top.Words()
	assert.NotNil(t, words)
	assert.Empty(t, words)
}
