package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuote(t *testing.T) {
	var out bytes.Buffer
	quoteCmd.SetOut(&out)

	err := runQuote(quoteCmd, []string{"ls", "-la", "it's"})
	require.NoError(t, err)
	assert.Equal(t, "'ls' '-la' 'it'\"'\"'s'\n", out.String())
}
