// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflection

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKind(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want Kind
	}{
		{"kind string wins", Node{KindString: "Class", KindFlag: 0x100}, KindClass},
		{"numeric class", Node{KindFlag: 0x80}, KindClass},
		{"numeric type alias", Node{KindFlag: 0x200000}, KindTypeAlias},
		{"numeric reference", Node{KindFlag: 0x400000}, KindReference},
		{"retired event flag", Node{KindFlag: 0x800000}, KindUnknown},
		{"numeric accessor", Node{KindFlag: 0x40000}, KindAccessor},
		{"unknown flag", Node{KindFlag: 0x4000000}, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Kind())
		})
	}
}

func TestRouteOf(t *testing.T) {
	tests := []struct {
		kind Kind
		want Route
	}{
		{KindClass, RouteClass},
		{KindInterface, RouteTypedef},
		{KindTypeAlias, RouteTypedef},
		{KindEnum, RouteTypedef},
		{KindNamespace, RouteNamespace},
		{KindFunction, RouteSkip},
		{KindVariable, RouteSkip},
		{KindReference, RouteSkip},
		{Kind("Something new"), RouteSkip},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, RouteOf(tt.kind))
		})
	}
}

func TestEveryFlagHasRoute(t *testing.T) {
	for flag, kind := range kindFlags {
		route := RouteOf(kind)
		assert.Contains(t, []Route{RouteSkip, RouteClass, RouteTypedef, RouteNamespace}, route, "flag %#x", flag)
	}
}

func TestSignatureListForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"array", `{"getSignature":[{"name":"__get"}]}`, 1},
		{"single object", `{"getSignature":{"name":"__get"}}`, 1},
		{"null", `{"getSignature":null}`, 0},
		{"absent", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Len(t, n.GetSignature, tt.want)
			if tt.want > 0 {
				assert.Equal(t, "__get", n.Getter().Name)
			} else {
				assert.Nil(t, n.Getter())
			}
		})
	}
}

func TestCommentLegacy(t *testing.T) {
	c := &Comment{
		ShortText: "  The client.  ",
		Text:      "Longer text.\n",
		Returns:   " the result ",
		Tags: []Tag{
			{Tag: "see", Text: " Guild "},
			{Tag: "example", Text: "client.login()\n"},
			{Tag: "see", Text: "Channel"},
			{Tag: "deprecated", Text: ""},
		},
	}

	assert.Equal(t, "The client.", c.Short())
	assert.Equal(t, "Longer text.", c.Long())
	assert.Equal(t, "the result", c.ReturnsText())
	assert.Equal(t, []string{"Guild", "Channel"}, c.TagTexts("see"))
	assert.True(t, c.HasTag("deprecated"))
	assert.False(t, c.HasTag("private"))
	assert.Nil(t, c.TagTexts("emits"))
}

func TestCommentModern(t *testing.T) {
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{
		"summary": [{"kind": "text", "text": "The client.\n\nMore about it."}],
		"blockTags": [
			{"tag": "@default", "content": [{"kind": "code", "text": "5"}]},
			{"tag": "@returns", "content": [{"kind": "text", "text": "a promise"}]}
		],
		"modifierTags": ["@internal"]
	}`), &c))

	assert.Equal(t, "The client.", c.Short())
	assert.Equal(t, "More about it.", c.Long())
	assert.Equal(t, "a promise", c.ReturnsText())
	def, ok := c.TagText("default")
	assert.True(t, ok)
	assert.Equal(t, "5", def)
	assert.True(t, c.HasTag("internal"))
}

func TestNilComment(t *testing.T) {
	var c *Comment
	assert.Empty(t, c.Short())
	assert.Empty(t, c.Long())
	assert.Empty(t, c.ReturnsText())
	assert.Nil(t, c.TagTexts("see"))
	assert.False(t, c.HasTag("private"))
}

func TestDecodeTemplateLiteral(t *testing.T) {
	var ty Type
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "template-literal",
		"head": "id-",
		"tail": [[{"type": "intrinsic", "name": "number"}, "-end"]]
	}`), &ty))

	require.Len(t, ty.Tail, 1)
	assert.Equal(t, TypeIntrinsic, ty.Tail[0].Type.Kind)
	assert.Equal(t, "-end", ty.Tail[0].Text)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"id": 0, "name": "lib", "kind": 1, "flags": {},
		"children": [{"id": 1, "name": "Client", "kind": 128, "kindString": "Class", "flags": {}}]
	}`), 0o644))

	root, err := Load(path)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindClass, root.Children[0].Kind())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing reflection JSON")
}

func TestDefaultTagCodeFence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"language tag", "```ts\n5\n```", "5"},
		{"bare fence", "```\n'hello'\n```", "'hello'"},
		{"single line", "```true```", "true"},
		{"multi line body", "```ts\n{\n  a: 1\n}\n```", "{\n  a: 1\n}"},
		{"numeric first line kept", "```5\n```", "5"},
		{"unfenced", "42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Comment{BlockTags: []BlockTag{{
				Tag:     "@default",
				Content: []CommentPart{{Kind: "code", Text: tt.text}},
			}}}
			got, ok := c.TagText("default")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeFenceKeptOnOtherTags(t *testing.T) {
	c := &Comment{BlockTags: []BlockTag{{
		Tag:     "@example",
		Content: []CommentPart{{Kind: "code", Text: "```js\nclient.login()\n```"}},
	}}}
	assert.Equal(t, []string{"```js\nclient.login()\n```"}, c.TagTexts("example"))
}
