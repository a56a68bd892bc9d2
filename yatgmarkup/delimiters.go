package yatgmarkup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gotd/td/tg"
)

const lineBreak = '\n'

type delimiter string

const (
	preDelim       delimiter = "```"
	codeDelim      delimiter = "`"
	strikeDelim    delimiter = "~~"
	underlineDelim delimiter = "--"
	italicDelim    delimiter = "__"
	boldDelim      delimiter = "**"
	spoilerDelim   delimiter = "||"

	blockquoteDelim           delimiter = ">"
	blockquoteExpandableDelim delimiter = "**>"
)

func (d delimiter) String() string {
	return string(d)
}

// delimiterTags maps each toggling delimiter to the tag the tokenizer emits.
var delimiterTags = map[delimiter]string{
	boldDelim:      "b",
	italicDelim:    "i",
	underlineDelim: "u",
	strikeDelim:    "s",
	codeDelim:      "code",
	preDelim:       "pre",
	spoilerDelim:   "spoiler",
}

// markdownRe matches either one fixed delimiter token or a [label](target)
// link construct. The pre fence precedes the code delimiter in the
// alternation so the longer token wins; Go regexps are leftmost-first.
var markdownRe = func() *regexp.Regexp {
	ordered := []delimiter{
		preDelim,
		codeDelim,
		strikeDelim,
		underlineDelim,
		italicDelim,
		boldDelim,
		spoilerDelim,
	}

	escaped := make([]string, 0, len(ordered))
	for _, d := range ordered {
		escaped = append(escaped, regexp.QuoteMeta(d.String()))
	}

	return regexp.MustCompile(`(` + strings.Join(escaped, "|") + `)|\[(.+?)\]\((.+?)\)`)
}()

// codeTagRe finds already tag-wrapped code spans that must be shielded from
// the tokenizer. Non-greedy and single-line, matching the reference behavior.
var codeTagRe = regexp.MustCompile(`<code>.*?</code>`)

// entityTokens selects the start/end markup tokens for an entity. An empty
// end token means the entity inserts at its start offset only (blockquote
// line prefixes). The third result is false for entity kinds this dialect
// has no representation for.
func entityTokens(entity tg.MessageEntityClass) (string, string, bool) {
	switch e := entity.(type) {
	case *tg.MessageEntityBold:
		return boldDelim.String(), boldDelim.String(), true
	case *tg.MessageEntityItalic:
		return italicDelim.String(), italicDelim.String(), true
	case *tg.MessageEntityUnderline:
		return underlineDelim.String(), underlineDelim.String(), true
	case *tg.MessageEntityStrike:
		return strikeDelim.String(), strikeDelim.String(), true
	case *tg.MessageEntitySpoiler:
		return spoilerDelim.String(), spoilerDelim.String(), true
	case *tg.MessageEntityCode:
		return codeDelim.String(), codeDelim.String(), true
	case *tg.MessageEntityPre:
		return preDelim.String() + e.Language + string(lineBreak),
			string(lineBreak) + preDelim.String(),
			true
	case *tg.MessageEntityTextURL:
		return "[", "](" + e.URL + ")", true
	case *tg.MessageEntityMentionName:
		return "[", "](tg://user?id=" + strconv.FormatInt(e.UserID, 10) + ")", true
	case *tg.MessageEntityCustomEmoji:
		return "[", "](" + emojiSentinelPrefix + strconv.FormatInt(e.DocumentID, 10) + ")", true
	case *tg.MessageEntityBlockquote:
		if e.Collapsed {
			return blockquoteExpandableDelim.String() + " ", "", true
		}

		return blockquoteDelim.String() + " ", "", true
	default:
		return "", "", false
	}
}
