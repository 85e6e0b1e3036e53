package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execVersion(t *testing.T) string {
	t.Helper()
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()

	assert.NoError(t, err)
	return buf.String()
}

func TestVersionDefault(t *testing.T) {
	SetVersionInfo("dev", "none", "unknown")
	assert.Equal(t, "pfn dev (commit: none, built: unknown)\n", execVersion(t))
}

func TestVersionRelease(t *testing.T) {
	SetVersionInfo("1.0.0", "abc1234", "2026-10-19")
	assert.Equal(t, "pfn 1.0.0 (commit: abc1234, built: 2026-10-19)\n", execVersion(t))
}
