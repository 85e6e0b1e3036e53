package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russellbanks/package-family-name/internal/batch"
)

func execExplain(env *runEnv, name, publisher string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := explainCmd
	cmd.SetOut(stdout)
	err := runExplain(cmd, env, name, publisher)
	cmd.SetOut(nil)
	return stdout.String(), err
}

func TestExplainIdentity(t *testing.T) {
	e := explainIdentity("AppName", "Publisher Software")

	assert.Equal(t, 36, e.UTF16LEBytes)
	assert.Equal(t, "fc8e598105652415", e.HashPrefix)
	assert.Len(t, e.Digest, 64)
	assert.Equal(t, "1f91cb3020aca482a", e.Shifted)
	assert.Equal(t, []int{31, 18, 7, 5, 19, 0, 8, 5, 12, 20, 18, 1, 10}, e.Groups)
	assert.Equal(t, "zj75k085cmj1a", e.PublisherID)
	assert.Equal(t, "AppName_zj75k085cmj1a", e.PackageFamilyName)
}

func TestExplainEmptyPublisher(t *testing.T) {
	e := explainIdentity("AppName", "")

	assert.Equal(t, 0, e.UTF16LEBytes)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", e.Digest)
	assert.Equal(t, "AppName_werc8gmrzge18", e.PackageFamilyName)
}

func TestExplainText(t *testing.T) {
	stdout, err := execExplain(testEnv(batch.FormatText), "AppName", "Publisher Software")

	require.NoError(t, err)
	for _, want := range []string{
		"identity publisher:", "Publisher Software",
		"36 bytes",
		"fc8e598105652415",
		"1f91cb3020aca482a",
		"31 18 7 5 19 0 8 5 12 20 18 1 10",
		"zj75k085cmj1a",
		"AppName_zj75k085cmj1a",
	} {
		assert.Contains(t, stdout, want)
	}
}

func TestExplainYAML(t *testing.T) {
	stdout, err := execExplain(testEnv(batch.FormatYAML), "AppName", "Publisher Software")

	require.NoError(t, err)
	assert.Contains(t, stdout, "groups: [31, 18, 7, 5, 19, 0, 8, 5, 12, 20, 18, 1, 10]\n")
	assert.Contains(t, stdout, "publisherId: zj75k085cmj1a\n")
}
