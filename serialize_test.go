package respcore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeCommandExactBytes(t *testing.T) {
	cmd := NewCommand("LLEN", "fmm.cheap-travles2")
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, cmd))
	assert.Equal(t, "*2\r\n$4\r\nLLEN\r\n$18\r\nfmm.cheap-travles2\r\n", buf.String())
}

func TestSerializeEmptyCommand(t *testing.T) {
	cmd := NewCommand()
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, cmd))
	assert.Equal(t, "*0\r\n", buf.String())
}

func TestSerializePipelineConcatenatesCommands(t *testing.T) {
	p := NewPipeline(NewCommand("PING"), NewCommand("GET", "key"))
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, p))
	assert.Equal(t, "*1\r\n$4\r\nPING\r\n*2\r\n$3\r\nGET\r\n$3\r\nkey\r\n", buf.String())
}

func TestSerializeLengthIsFullyDeterminedByArgs(t *testing.T) {
	cmd := NewCommand("SET", "k", "v")
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, cmd))

	expectedLen := len("*3\r\n") + len("$3\r\nSET\r\n") + len("$1\r\nk\r\n") + len("$1\r\nv\r\n")
	assert.Equal(t, expectedLen, buf.Len())
}

func TestSerializeThenParseRoundTrips(t *testing.T) {
	cmd := NewCommand("LLEN", "fmm.cheap-travles2")
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, cmd))

	res := ParseValue(buf.Bytes())
	require.Equal(t, StatusPositive, res.Status)
	assert.Equal(t, buf.Len(), res.Consumed)
	require.Equal(t, KindArray, res.Marker.Kind)
	require.Len(t, res.Marker.Array, 2)
	assert.Equal(t, "LLEN", res.Marker.Array[0].Text.String())
	assert.Equal(t, "fmm.cheap-travles2", res.Marker.Array[1].Text.String())
}

func TestSerializeBinarySafeArgument(t *testing.T) {
	arg := []byte{0x00, '\r', '\n', 0xff}
	cmd := Command{Args: [][]byte{[]byte("SET"), []byte("k"), arg}}
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, cmd))

	res := ParseValue(buf.Bytes())
	require.Equal(t, StatusPositive, res.Status)
	require.Len(t, res.Marker.Array, 3)
	assert.Equal(t, View(arg), res.Marker.Array[2].Text)
}
