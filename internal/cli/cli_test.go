package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveThenDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	netPath := filepath.Join(dir, "circuit")
	require.NoError(t, os.WriteFile(netPath, []byte(
		"V V1 1 0 1\nR R1 1 0 1k\n.OUTPUT 1\n",
	), 0o644))

	rootCmd.SetArgs([]string{"resolve", netPath})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(netPath + ".out")
	require.NoError(t, err)
	_, err = os.Stat(netPath + ".fdt")
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"decode", netPath + ".fdt"})
	require.NoError(t, rootCmd.Execute())
	assert.NotEmpty(t, out.String())
}
