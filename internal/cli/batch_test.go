package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russellbanks/package-family-name/internal/batch"
)

func execBatch(env *runEnv, stdin io.Reader, path, inputFormat string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := batchCmd
	cmd.SetOut(stdout)
	cmd.SetIn(stdin)
	err := runBatch(cmd, env, path, inputFormat)
	cmd.SetOut(nil)
	cmd.SetIn(nil)
	return stdout.String(), err
}

func TestBatchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: AppName
  publisher: Publisher Software
- name: Microsoft.WindowsTerminal
  publisher: CN=Microsoft Corporation, O=Microsoft Corporation, L=Redmond, S=Washington, C=US
`), 0644))

	stdout, err := execBatch(testEnv(batch.FormatText), nil, path, "")

	require.NoError(t, err)
	assert.Equal(t, "AppName_zj75k085cmj1a\nMicrosoft.WindowsTerminal_8wekyb3d8bbwe\n", stdout)
}

func TestBatchFromStdinJSONC(t *testing.T) {
	stdin := strings.NewReader(`[
  // documented example
  {"name": "AppName", "publisher": "Publisher Software"},
]`)

	stdout, err := execBatch(testEnv(batch.FormatJSON), stdin, "-", "jsonc")

	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"name": "AppName",
		"publisher": "Publisher Software",
		"publisherId": "zj75k085cmj1a",
		"packageFamilyName": "AppName_zj75k085cmj1a"
	}]`, stdout)
}

func TestBatchEmptyInput(t *testing.T) {
	stdout, err := execBatch(testEnv(batch.FormatYAML), strings.NewReader(""), "-", "")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestBatchInvalidInputFormat(t *testing.T) {
	_, err := execBatch(testEnv(batch.FormatText), strings.NewReader(""), "-", "xml")

	assert.ErrorContains(t, err, "unsupported input format: xml")
}

func TestBatchMissingFile(t *testing.T) {
	_, err := execBatch(testEnv(batch.FormatText), nil, filepath.Join(t.TempDir(), "missing.json"), "")

	assert.ErrorIs(t, err, os.ErrNotExist)
}
