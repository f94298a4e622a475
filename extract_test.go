package respcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSimpleString(t *testing.T) {
	v, err := Extract(Marker{Kind: KindSimpleString, Text: View("OK")})
	require.NoError(t, err)
	assert.Equal(t, ValueString, v.Kind)
	assert.Equal(t, "OK", v.Str)
}

func TestExtractError(t *testing.T) {
	v, err := Extract(Marker{Kind: KindError, Text: View("ERR bad")})
	require.NoError(t, err)
	assert.Equal(t, ValueError, v.Kind)
	assert.Equal(t, "ERR bad", v.Str)
}

func TestExtractNil(t *testing.T) {
	v, err := Extract(Marker{Kind: KindNil})
	require.NoError(t, err)
	assert.Equal(t, ValueNil, v.Kind)
}

func TestExtractPositiveInteger(t *testing.T) {
	v, err := Extract(Marker{Kind: KindInteger, Text: View("42")})
	require.NoError(t, err)
	assert.Equal(t, ValueInteger, v.Kind)
	assert.Equal(t, int64(42), v.Int)
}

func TestExtractNegativeInteger(t *testing.T) {
	v, err := Extract(Marker{Kind: KindInteger, Text: View("-17")})
	require.NoError(t, err)
	assert.Equal(t, int64(-17), v.Int)
}

func TestExtractLargeInteger(t *testing.T) {
	v, err := Extract(Marker{Kind: KindInteger, Text: View("9223372036854775807")})
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), v.Int)
}

func TestExtractIntegerOverflowFails(t *testing.T) {
	_, err := Extract(Marker{Kind: KindInteger, Text: View("36893488147419103232")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountConversion))
}

func TestExtractIntegerGarbageFails(t *testing.T) {
	_, err := Extract(Marker{Kind: KindInteger, Text: View("-55abc")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountConversion))
}

func TestExtractArrayRecursesAndPreservesOrder(t *testing.T) {
	m := Marker{
		Kind: KindArray,
		Array: []Marker{
			{Kind: KindSimpleString, Text: View("some")},
			{Kind: KindInteger, Text: View("5")},
			{Kind: KindNil},
		},
	}
	v, err := Extract(m)
	require.NoError(t, err)
	require.Equal(t, ValueArray, v.Kind)
	require.Len(t, v.Array, 3)
	assert.Equal(t, "some", v.Array[0].Str)
	assert.Equal(t, int64(5), v.Array[1].Int)
	assert.Equal(t, ValueNil, v.Array[2].Kind)
}

func TestExtractArrayPropagatesChildError(t *testing.T) {
	m := Marker{
		Kind: KindArray,
		Array: []Marker{
			{Kind: KindSimpleString, Text: View("ok")},
			{Kind: KindInteger, Text: View("not-a-number")},
		},
	}
	_, err := Extract(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountConversion))
}

func TestExtractEmptyArray(t *testing.T) {
	v, err := Extract(Marker{Kind: KindArray})
	require.NoError(t, err)
	assert.Equal(t, ValueArray, v.Kind)
	assert.Empty(t, v.Array)
}
