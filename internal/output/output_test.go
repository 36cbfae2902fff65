// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docgen/pkg/types"
)

func sampleOutput() types.Output {
	docs := types.CodeDocs{
		Classes: []types.ClassDoc{{
			Name:    "Client",
			Extends: []string{"BaseClient<string>"},
			Props: []types.ClassPropDoc{{
				Name: "guilds",
				Type: types.CompactType{{{Name: "Map", Suffix: "<"}, {Name: "string", Suffix: ", "}, {Name: "Guild", Suffix: ">"}}},
			}},
		}},
		Typedefs:   []types.TypedefDoc{},
		Namespaces: []types.NamespaceDoc{},
	}
	custom := types.CustomDocs{{
		ID:    "general",
		Name:  "General",
		Files: []types.CustomFile{{ID: "welcome", Name: "Welcome", Type: "md", Content: "# Hi & welcome", Path: "docs/general/welcome.md"}},
	}}
	return Assemble(docs, custom, "1.2.3", time.UnixMilli(1700000000000))
}

func TestAssemble(t *testing.T) {
	out := sampleOutput()

	assert.Equal(t, "1.2.3", out.Meta.Version)
	assert.Equal(t, 20, out.Meta.Format)
	assert.Equal(t, int64(1700000000000), out.Meta.Date)
	assert.Len(t, out.Classes, 1)
}

func TestAssembleNilCustom(t *testing.T) {
	out := Assemble(types.CodeDocs{}, nil, "dev", time.Now())

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, out, 0))
	assert.Contains(t, buf.String(), `"custom":{}`)
}

func TestEncodeCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleOutput(), 0))

	text := buf.String()
	assert.True(t, strings.HasPrefix(text, `{"meta":{"version":"1.2.3","format":20,"date":1700000000000},"custom":{"general"`))
	assert.Contains(t, text, `[["Map","<"],["string",", "],["Guild",">"]]`)
	assert.Contains(t, text, `"extends":["BaseClient<string>"]`)
	assert.Contains(t, text, `# Hi & welcome`)
	assert.NotContains(t, text, "\n")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"meta", "custom", "classes", "typedefs", "namespaces"} {
		assert.Contains(t, decoded, key)
	}
}

func TestEncodeIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleOutput(), 2))

	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"meta\": {\n    \"version\""))
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")

	require.NoError(t, WriteFile(path, sampleOutput(), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is cleaned up")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "docs.json")
	err := WriteFile(path, sampleOutput(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
}
