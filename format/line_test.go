package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineEncoder(t *testing.T) {
	m := buildFoo(t)
	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(Units(m)[0]))

	want := "class\tFoo\t-\n" +
		"field\tx\tFloat\t-\t-\n" +
		"method\tbar\tVoid\ta:String\t-\t-\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONEncoder(t *testing.T) {
	m := buildFoo(t)
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(Units(m)[0]))

	var got jsonClass
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Foo", got.FullPath)
	assert.Equal(t, "class", got.Kind)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "Float", got.Fields[0].Type)
	require.Len(t, got.Methods, 1)
	require.Len(t, got.Methods[0].Overloads, 1)
	assert.Equal(t, []jsonParameter{{Name: "a", Type: "String"}}, got.Methods[0].Overloads[0].Parameters)
}
