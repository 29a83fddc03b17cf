package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarkit/coordtran"
	"github.com/radarkit/coordtran/internal/config"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "2288.664", formatFloat(2288.663607940097, 3))
	assert.Equal(t, "0.0000", formatFloat(-1e-12, 4))
	assert.Equal(t, "0.0000", formatFloat(-0.0, 4))
	assert.Equal(t, "-0.0001", formatFloat(-0.0001, 4))

	b, err := coordtran.NewBearing(359.99999)
	require.NoError(t, err)
	assert.Equal(t, "0.0000", formatBearing(b, 4))
	assert.Equal(t, "359.99999", formatBearing(b, 5))
	assert.Equal(t, "undetermined", formatBearing(coordtran.Undetermined, 4))

	assert.Equal(t, "-180.0000", formatLon(179.99999, 4))
	assert.Equal(t, "179.9999", formatLon(179.9999, 4))
	assert.Equal(t, "-180.0000", formatLon(-180, 4))
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRecord(&buf, config.OutputConfig{Format: "text"},
		[]string{"a", "b"}, []string{"1", "2"}))
	assert.Equal(t, "1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, writeRecord(&buf, config.OutputConfig{Format: "csv"},
		[]string{"a", "b"}, []string{"1", "2"}))
	assert.Equal(t, "1,2\n", buf.String())

	buf.Reset()
	require.NoError(t, writeRecord(&buf, config.OutputConfig{Format: "csv", Header: true},
		[]string{"a", "b"}, []string{"1", "2"}))
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}
