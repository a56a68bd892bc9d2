// Package yatgmarkup is a bidirectional transcoder between a lightweight
// markup dialect and Telegram (gotd) message entities.
//
// The markup syntax: **bold**, __italic__, --underline--, ~~strike~~,
// ||spoiler||, `code`, ```language fences```, > and **> blockquote line
// prefixes (plain and expandable), and [label](target) links where the target
// may be a URL, a tg://user?id=N mention, an emoji/<id> custom-emoji sentinel,
// or the literal sentinel "spoiler".
//
// Parse runs a fixed pipeline: blockquote grouping, shielding of already
// tag-wrapped code spans, a single-pass delimiter tokenizer emitting
// HTML-like tags, the yatghtml tag-to-entity bridge, and a normalizer that
// rewrites sentinel links into spoiler/custom-emoji entities. Unparse
// synthesizes markup directly from the entity list by splicing tokens into
// the surrogate-expanded text in descending offset order.
//
// The transcoder is best-effort and never fails: unbalanced delimiters yield
// a partially formatted result, unknown entity kinds are skipped, and
// out-of-bounds entity offsets are dropped instead of panicking. Entity
// offsets and lengths are in UTF-16 code units per the Telegram
// specification.
package yatgmarkup

import (
	"github.com/YaCodeDev/GoYaTgMarkup/yalogger"
	"github.com/YaCodeDev/GoYaTgMarkup/yatghtml"

	"github.com/gotd/td/tg"
)

// MessageEncoding defines the interface for Telegram (gotd) message encoding.
type MessageEncoding interface {
	// Parse parses the input markup and returns the plain text along with the
	// corresponding message entities. Entity offsets are in UTF-16LE code
	// units. Empty input returns ("", empty slice).
	//
	// Example usage:
	//
	//	md := yatgmarkup.NewMarkdownEncoding()
	//	plain, entities := md.Parse("This is **bold** text")
	Parse(text string) (string, []tg.MessageEntityClass)

	// Unparse takes plain text and its associated message entities and
	// reconstructs the formatted markup. Empty text returns "" regardless of
	// entities.
	//
	// Example usage:
	//
	//	md := yatgmarkup.NewMarkdownEncoding()
	//	markup := md.Unparse("This is bold text", []tg.MessageEntityClass{
	//		&tg.MessageEntityBold{Offset: 8, Length: 4},
	//	})
	Unparse(text string, entities []tg.MessageEntityClass) string
}

// markdownEncoding implements MessageEncoding. It holds configuration only —
// every call owns its transient state, so a single value is safe for
// concurrent use without locking.
type markdownEncoding struct {
	log yalogger.Logger
}

// Option configures the encoder returned by NewMarkdownEncoding.
type Option func(*markdownEncoding)

// WithLogger overrides the encoder's logger. The default is a Warn-level
// logger, so the encoder is silent unless an entity has to be dropped.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.TraceLevel}).NewLogger()
//	md := yatgmarkup.NewMarkdownEncoding(yatgmarkup.WithLogger(log))
func WithLogger(log yalogger.Logger) Option {
	return func(m *markdownEncoding) {
		m.log = log
	}
}

// NewMarkdownEncoding creates a new MessageEncoding implementation for the
// markup dialect described in the package documentation.
//
// Example usage:
//
//	md := yatgmarkup.NewMarkdownEncoding()
//	plain, entities := md.Parse("||hidden|| and `code`")
func NewMarkdownEncoding(opts ...Option) MessageEncoding {
	md := &markdownEncoding{
		log: yalogger.NewBaseLogger(nil).NewLogger(),
	}

	for _, opt := range opts {
		opt(md)
	}

	return md
}

func (m *markdownEncoding) Parse(text string) (string, []tg.MessageEntityClass) {
	if text == "" {
		return "", []tg.MessageEntityClass{}
	}

	m.log.Tracef("parsing %d bytes of markup", len(text))

	grouped := groupBlockquotes(text)

	shielded, spans := shieldCodeTags(grouped)

	tokenized := tokenizeDelimiters(shielded)

	restored := unshieldCodeTags(tokenized, spans)

	plain, entities := yatghtml.Parse(restored)

	return plain, m.normalizeEntities(entities)
}

func (m *markdownEncoding) Unparse(text string, entities []tg.MessageEntityClass) string {
	if text == "" {
		return ""
	}

	m.log.Tracef("unparsing %d entities over %d bytes of text", len(entities), len(text))

	return m.spliceEntityTokens(text, entities)
}
