package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	for _, tc := range []struct {
		args       []string
		positional []string
		format     string
		header     bool
	}{
		{[]string{"-75", "37", "-66", "18"}, []string{"-75", "37", "-66", "18"}, "text", false},
		{[]string{"-75", "--format", "csv", "37"}, []string{"-75", "37"}, "csv", false},
		{[]string{"--format=csv", "-1e3", "--header", "-.5"}, []string{"-1e3", "-.5"}, "csv", true},
		{[]string{"--header", "1", "2"}, []string{"1", "2"}, "text", true},
		{[]string{"0", "--", "--format", "-1"}, []string{"0", "--format", "-1"}, "text", false},
		{[]string{"0", "90", "20015", "undetermined"}, []string{"0", "90", "20015", "undetermined"}, "text", false},
	} {
		fs, _ := newFlagSet("test", true)
		positional, err := parseArgs(fs, tc.args)
		require.NoError(t, err, "%v", tc.args)
		assert.Equal(t, tc.positional, positional, "%v", tc.args)
		format, _ := fs.GetString("format")
		assert.Equal(t, tc.format, format, "%v", tc.args)
		header, _ := fs.GetBool("header")
		assert.Equal(t, tc.header, header, "%v", tc.args)
	}
}

func TestParseArgsHelp(t *testing.T) {
	fs, opts := newFlagSet("test", false)
	_, err := parseArgs(fs, []string{"-h"})
	require.NoError(t, err)
	assert.True(t, opts.help)

	fs, _ = newFlagSet("test", false)
	_, err = parseArgs(fs, []string{"--snap-tolerance", "1", "0"})
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	vals, err := parseFloats([]string{"a", "b"}, []string{"-75.5", "1e2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{-75.5, 100}, vals)

	_, err = parseFloats([]string{"a", "b"}, []string{"1", "x"})
	assert.EqualError(t, err, `invalid b "x"`)
}
