package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/externgen/format"
)

func TestNewDumpEncoder(t *testing.T) {
	var buf bytes.Buffer
	for _, name := range []string{"json", "line", "haxe"} {
		enc, err := newDumpEncoder(name, &buf, format.DefaultImports)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := newDumpEncoder("xml", &buf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}
