package yatgmarkup_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaTgMarkup/yatgmarkup"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
)

// Well-formed markup survives a parse/unparse cycle byte for byte.
func TestParseUnparseRoundTrip(t *testing.T) {
	t.Parallel()

	md := yatgmarkup.NewMarkdownEncoding()

	cases := []struct {
		name   string
		markup string
	}{
		{
			name:   "every inline delimiter",
			markup: "**bold** __italic__ --under-- ~~strike~~ ||spoiler|| `code`",
		},
		{
			name:   "every link form",
			markup: "[site](https://example.com) [dev](tg://user?id=7) [x](emoji/123)",
		},
		{
			name:   "single-line blockquote",
			markup: "> quoted line\nafter",
		},
		{
			name:   "expandable blockquote",
			markup: "**> secret\nvisible",
		},
		{
			name:   "fence with language",
			markup: "```python\nprint(1)\n```",
		},
		{
			name:   "nested spans",
			markup: "**b __c__**",
		},
		{
			name:   "surrogate pairs around markup",
			markup: "😀 **x** 😀",
		},
		{
			name:   "markup shielded by inline code",
			markup: "keep `**this** literal` but **format this**",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plain, entities := md.Parse(tc.markup)

			assert.Equal(t, tc.markup, md.Unparse(plain, entities))
		})
	}
}

// Plain text plus entities survives an unparse/parse cycle: the text comes
// back identical and the entities come back as the same set.
func TestUnparseParseRoundTrip(t *testing.T) {
	t.Parallel()

	md := yatgmarkup.NewMarkdownEncoding()

	cases := []struct {
		name     string
		text     string
		entities []tg.MessageEntityClass
	}{
		{
			name: "disjoint inline spans with surrogates",
			text: "alpha beta 😀gamma",
			entities: []tg.MessageEntityClass{
				&tg.MessageEntityBold{Offset: 0, Length: 5},
				&tg.MessageEntityItalic{Offset: 6, Length: 4},
				&tg.MessageEntityStrike{Offset: 13, Length: 5},
			},
		},
		{
			name: "pre block",
			text: "code",
			entities: []tg.MessageEntityClass{
				&tg.MessageEntityPre{Offset: 0, Length: 4, Language: "go"},
			},
		},
		{
			name: "mention and emoji",
			text: "dev waves",
			entities: []tg.MessageEntityClass{
				&tg.MessageEntityMentionName{Offset: 0, Length: 3, UserID: 7},
				&tg.MessageEntityCustomEmoji{Offset: 4, Length: 5, DocumentID: 99},
			},
		},
		{
			name: "spoiler and code",
			text: "hide show",
			entities: []tg.MessageEntityClass{
				&tg.MessageEntitySpoiler{Offset: 0, Length: 4},
				&tg.MessageEntityCode{Offset: 5, Length: 4},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			markup := md.Unparse(tc.text, tc.entities)
			plain, entities := md.Parse(markup)

			assert.Equal(t, tc.text, plain)
			assert.ElementsMatch(t, tc.entities, entities)
		})
	}
}
