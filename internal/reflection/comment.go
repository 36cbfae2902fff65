// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflection

import "strings"

// Tag is a legacy block tag such as {"tag": "see", "text": "Client"}.
type Tag struct {
	Tag       string `json:"tag"`
	Text      string `json:"text"`
	ParamName string `json:"paramName,omitempty"`
}

// CommentPart is one fragment of a modern comment body.
type CommentPart struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// BlockTag is a modern block tag such as {"tag": "@see", "content": [...]}.
type BlockTag struct {
	Tag     string        `json:"tag"`
	Content []CommentPart `json:"content"`
}

// Comment is a doc comment. Both the legacy layout (shortText, text, tags)
// and the modern layout (summary, blockTags, modifierTags) are accepted;
// the accessors below read whichever one is populated.
type Comment struct {
	ShortText string `json:"shortText,omitempty"`
	Text      string `json:"text,omitempty"`
	Returns   string `json:"returns,omitempty"`
	Tags      []Tag  `json:"tags,omitempty"`

	Summary      []CommentPart `json:"summary,omitempty"`
	BlockTags    []BlockTag    `json:"blockTags,omitempty"`
	ModifierTags []string      `json:"modifierTags,omitempty"`
}

// Short returns the trimmed summary line, or "".
func (c *Comment) Short() string {
	if c == nil {
		return ""
	}
	if c.ShortText != "" {
		return strings.TrimSpace(c.ShortText)
	}
	short, _ := c.splitSummary()
	return short
}

// Long returns the trimmed extended description, or "".
func (c *Comment) Long() string {
	if c == nil {
		return ""
	}
	if c.Text != "" {
		return strings.TrimSpace(c.Text)
	}
	if c.ShortText != "" {
		return ""
	}
	_, long := c.splitSummary()
	return long
}

// splitSummary splits a modern summary at its first blank line.
func (c *Comment) splitSummary() (short, long string) {
	text := strings.TrimSpace(joinParts(c.Summary))
	if text == "" {
		return "", ""
	}
	short, long, _ = strings.Cut(text, "\n\n")
	return strings.TrimSpace(short), strings.TrimSpace(long)
}

// ReturnsText returns the trimmed description of the return value.
func (c *Comment) ReturnsText() string {
	if c == nil {
		return ""
	}
	if c.Returns != "" {
		return strings.TrimSpace(c.Returns)
	}
	if texts := c.TagTexts("returns"); len(texts) > 0 {
		return texts[0]
	}
	return ""
}

// TagTexts returns the trimmed text of every tag named name (without the
// leading "@"), in source order. Nil when there are none.
func (c *Comment) TagTexts(name string) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, t := range c.Tags {
		if t.Tag == name {
			out = append(out, strings.TrimSpace(t.Text))
		}
	}
	for _, t := range c.BlockTags {
		if t.Tag != "@"+name {
			continue
		}
		text := strings.TrimSpace(joinParts(t.Content))
		if name == "default" {
			text = stripCodeFence(text)
		}
		out = append(out, text)
	}
	return out
}

// stripCodeFence removes one surrounding ``` fence, language tag included.
// The modern comment format fences @default content.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	body := strings.TrimSuffix(text[3:], "```")
	if first, rest, ok := strings.Cut(body, "\n"); ok && isFenceLanguage(strings.TrimSpace(first)) {
		body = rest
	}
	return strings.TrimSpace(body)
}

// isFenceLanguage reports whether s can be the info string of a fence:
// empty, or a word starting with a letter.
func isFenceLanguage(s string) bool {
	if s == "" {
		return true
	}
	if c := s[0]; !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}

// TagText returns the first text of tag name and whether the tag exists.
func (c *Comment) TagText(name string) (string, bool) {
	texts := c.TagTexts(name)
	if len(texts) == 0 {
		return "", false
	}
	return texts[0], true
}

// HasTag reports whether the comment carries tag name as a block or
// modifier tag.
func (c *Comment) HasTag(name string) bool {
	if c == nil {
		return false
	}
	for _, m := range c.ModifierTags {
		if m == "@"+name {
			return true
		}
	}
	_, ok := c.TagText(name)
	return ok
}

func joinParts(parts []CommentPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
