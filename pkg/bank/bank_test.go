package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.paramcheck/pkg/contract"
)

const yamlBank = `version: "1.0"
name: strings
contracts:
  - id: strings.join
    target: join
    tags: [strings]
    parameters:
      - name: parts
        validValue: ["a", "b"]
        assertions: [defined, notNull, object]
      - name: sep
        validValue: ","
        assertions: "string, notEmpty"
  - id: strings.trim
    target: trim
    parameters:
      - name: s
        assertions: [notNull]
      - name: cutset
        validValue: null
`

const jsonBank = `{
  "version": "1.0",
  "contracts": [
    {
      "id": "math.abs",
      "target": "abs",
      "tags": ["math"],
      "parameters": [
        {"name": "x", "validValue": 1, "assertions": ["number"]}
      ]
    }
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBank_LoadFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strings.yaml", yamlBank)

	b := New()
	require.NoError(t, b.LoadFile(path))
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, []string{path}, b.Sources())

	join, ok := b.Get("strings.join")
	require.True(t, ok)
	assert.Equal(t, "join", join.Target)
	require.Len(t, join.Parameters, 2)
	assert.Equal(t, contract.Of([]any{"a", "b"}), join.Parameters[0].ValidValue)
	assert.Equal(t, []string{"defined", "notNull", "object"}, join.Parameters[0].Assertions)
	assert.Equal(t, []string{"string", "notEmpty"}, join.Parameters[1].Assertions)
}

func TestBank_LoadFile_OmittedVersusNull(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strings.yml", yamlBank)

	b := New()
	require.NoError(t, b.LoadFile(path))

	trim, ok := b.Get("strings.trim")
	require.True(t, ok)
	assert.False(t, trim.Parameters[0].ValidValue.Defined())
	assert.True(t, trim.Parameters[1].ValidValue.IsNull())
	assert.Empty(t, trim.Parameters[1].Assertions)
}

func TestBank_LoadFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "math.json", jsonBank)

	b := New()
	require.NoError(t, b.LoadFile(path))

	abs, ok := b.Get("math.abs")
	require.True(t, ok)
	assert.Equal(t, contract.Of(float64(1)), abs.Parameters[0].ValidValue)
}

func TestBank_LoadFile_NotFound(t *testing.T) {
	err := New().LoadFile("/nonexistent/bank.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read bank file")
}

func TestBank_LoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	err := New().LoadFile(writeFile(t, dir, "bad.json", "{invalid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bank file")

	err = New().LoadFile(writeFile(t, dir, "noparams.yaml", "version: \"1\"\ncontracts:\n  - id: a\n    target: t\n    parameters: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/contracts/0/parameters")
}

func TestBank_LoadFile_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.json", jsonBank)
	second := writeFile(t, dir, "b.json", jsonBank)

	b := New()
	require.NoError(t, b.LoadFile(first))
	err := b.LoadFile(second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already loaded")
	assert.Equal(t, 1, b.Count())
}

func TestBank_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", yamlBank)
	writeFile(t, dir, "b.json", jsonBank)
	writeFile(t, dir, "README.md", "# not a bank")
	writeFile(t, dir, "nested/c.json", `{"version":"1","contracts":[{"id":"n","target":"t","parameters":[{"name":"p"}]}]}`)

	b := New()
	require.NoError(t, b.LoadDir(dir))
	assert.Equal(t, 3, b.Count())
	_, nested := b.Get("n")
	assert.False(t, nested)
}

func TestBank_LoadDir_NotFound(t *testing.T) {
	assert.Error(t, New().LoadDir("/nonexistent/dir"))
}

func TestBank_LoadGlob_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "strings/strings.yaml", yamlBank)
	writeFile(t, dir, "deep/er/math.json", jsonBank)
	writeFile(t, dir, "deep/notes.txt", "ignored")

	b := New()
	n, err := b.LoadGlob(filepath.Join(dir, "**", "*"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, b.Count())
}

func TestBank_LoadGlob_BadPattern(t *testing.T) {
	_, err := New().LoadGlob("[")
	assert.Error(t, err)
}

func TestBank_AllAndByTag(t *testing.T) {
	dir := t.TempDir()
	b := New()
	require.NoError(t, b.LoadFile(writeFile(t, dir, "a.yaml", yamlBank)))
	require.NoError(t, b.LoadFile(writeFile(t, dir, "b.json", jsonBank)))

	all := b.All()
	require.Len(t, all, 3)
	assert.Equal(t, "math.abs", all[0].ID)
	assert.Equal(t, "strings.join", all[1].ID)
	assert.Equal(t, "strings.trim", all[2].ID)

	tagged := b.ByTag("STRINGS")
	require.Len(t, tagged, 1)
	assert.Equal(t, "strings.join", tagged[0].ID)
}

func TestContract_Definitions(t *testing.T) {
	b := New()
	require.NoError(t, b.LoadBytes([]byte(yamlBank), FormatYAML, "inline"))

	c, ok := b.Get("strings.trim")
	require.True(t, ok)

	defs := c.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "s", defs[0].ParamName)
	assert.Equal(t, contract.Absent(), defs[0].ValidValue)
	assert.Equal(t, []string{"notNull"}, defs[0].Assertions)
	assert.Equal(t, contract.Null(), defs[1].ValidValue)
	assert.Equal(t, []string{"inline"}, b.Sources())
}
