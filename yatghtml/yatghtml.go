// Package yatghtml converts an HTML-like tag-annotated string into plain text
// plus Telegram (gotd) message entities with UTF-16 code-unit offsets.
//
// It is the bridge the markup tokenizer hands its output to: every tag it
// recognizes is stripped and becomes an entity, everything else — unknown
// tags, comments, character references — is passed through as literal text,
// byte for byte. Unclosed tags at end of input produce no entity.
//
// Recognized tags: b/strong, i/em, u, s/del/strike, code, pre (language
// attribute), spoiler/tg-spoiler, blockquote (expandable attribute), and
// a (href), where an href of the form tg://user?id=N becomes a mention.
//
// Example usage:
//
//	plain, entities := yatghtml.Parse(`<b>bold</b> text`)
//	// plain == "bold text", entities == one MessageEntityBold{0, 4}
package yatghtml

import (
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaTgMarkup/yatgtext"

	"github.com/gotd/td/tg"
	"golang.org/x/net/html"
)

const mentionHrefPrefix = "tg://user?id="

type tagKind uint8

const (
	kindUnknown tagKind = iota
	kindBold
	kindItalic
	kindUnderline
	kindStrike
	kindCode
	kindPre
	kindSpoiler
	kindBlockquote
	kindLink
)

var tagKinds = map[string]tagKind{
	"b":          kindBold,
	"strong":     kindBold,
	"i":          kindItalic,
	"em":         kindItalic,
	"u":          kindUnderline,
	"s":          kindStrike,
	"del":        kindStrike,
	"strike":     kindStrike,
	"code":       kindCode,
	"pre":        kindPre,
	"spoiler":    kindSpoiler,
	"tg-spoiler": kindSpoiler,
	"blockquote": kindBlockquote,
	"a":          kindLink,
}

// openTag is one entry of the parse stack: a recognized tag that has been
// opened but not yet closed, pinned to the UTF-16 offset of its content.
type openTag struct {
	kind       tagKind
	start      int
	language   string
	href       string
	expandable bool
}

// Parse strips all recognized tags from text and returns the remaining plain
// text together with the entities the tags described. Offsets and lengths are
// in UTF-16 code units. Character content outside of recognized tags is never
// altered.
func Parse(text string) (string, []tg.MessageEntityClass) {
	var (
		plain    strings.Builder
		utf16Pos int
		stack    []openTag
		entities = []tg.MessageEntityClass{}
	)

	appendText := func(chunk string) {
		plain.WriteString(chunk)
		utf16Pos += yatgtext.Len(chunk)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(text))

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}

		// Raw must be copied before TagName, which lowercases in place.
		raw := string(tokenizer.Raw())

		switch tokenType {
		case html.TextToken:
			// Raw bytes, not tokenizer.Text(): character references
			// such as &amp; must survive verbatim.
			appendText(raw)
		case html.StartTagToken:
			tag, recognized := readTag(tokenizer)
			if !recognized {
				appendText(raw)

				continue
			}

			tag.start = utf16Pos
			stack = append(stack, tag)
		case html.EndTagToken:
			name, _ := tokenizer.TagName()

			kind, recognized := tagKinds[string(name)]
			if !recognized {
				appendText(raw)

				continue
			}

			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].kind != kind {
					continue
				}

				entity := stack[i].entity(utf16Pos - stack[i].start)
				if entity != nil {
					entities = append(entities, entity)
				}

				stack = append(stack[:i], stack[i+1:]...)

				break
			}
		default:
			appendText(raw)
		}
	}

	return plain.String(), entities
}

// readTag consumes the current start tag's name and attributes and reports
// whether the tag is one the bridge recognizes.
func readTag(tokenizer *html.Tokenizer) (openTag, bool) {
	name, hasAttr := tokenizer.TagName()

	kind, recognized := tagKinds[string(name)]
	if !recognized {
		return openTag{}, false
	}

	tag := openTag{kind: kind}

	for hasAttr {
		var key, value []byte

		key, value, hasAttr = tokenizer.TagAttr()

		switch string(key) {
		case "language":
			tag.language = string(value)
		case "href":
			tag.href = string(value)
		case "expandable":
			tag.expandable = true
		}
	}

	return tag, true
}

// entity materializes the gotd entity for a closed tag.
func (t openTag) entity(length int) tg.MessageEntityClass {
	switch t.kind {
	case kindBold:
		return &tg.MessageEntityBold{Offset: t.start, Length: length}
	case kindItalic:
		return &tg.MessageEntityItalic{Offset: t.start, Length: length}
	case kindUnderline:
		return &tg.MessageEntityUnderline{Offset: t.start, Length: length}
	case kindStrike:
		return &tg.MessageEntityStrike{Offset: t.start, Length: length}
	case kindCode:
		return &tg.MessageEntityCode{Offset: t.start, Length: length}
	case kindPre:
		return &tg.MessageEntityPre{Offset: t.start, Length: length, Language: t.language}
	case kindSpoiler:
		return &tg.MessageEntitySpoiler{Offset: t.start, Length: length}
	case kindBlockquote:
		return &tg.MessageEntityBlockquote{
			Offset:    t.start,
			Length:    length,
			Collapsed: t.expandable,
		}
	case kindLink:
		if userID, err := strconv.ParseInt(
			strings.TrimPrefix(t.href, mentionHrefPrefix), 10, 64,
		); err == nil && strings.HasPrefix(t.href, mentionHrefPrefix) {
			return &tg.MessageEntityMentionName{
				Offset: t.start,
				Length: length,
				UserID: userID,
			}
		}

		return &tg.MessageEntityTextURL{Offset: t.start, Length: length, URL: t.href}
	case kindUnknown:
		return nil
	default:
		return nil
	}
}
