package yatgmarkup

import (
	"github.com/YaCodeDev/GoYaTgMarkup/yatgtext"

	"github.com/google/uuid"
)

// placeholderMarker brackets every shield placeholder. NUL cannot appear in
// any delimiter token, so a placeholder can never be split by the tokenizer.
const placeholderMarker = "\x00"

// shieldedSpan associates one placeholder with the code-tag substring it
// replaced. The span list as a whole is the bijective placeholder map: each
// occurrence is shielded independently under its own placeholder.
type shieldedSpan struct {
	placeholder string
	original    string
}

// shieldCodeTags replaces every already tag-wrapped code span with a unique
// collision-free placeholder so the tokenizer never reinterprets its
// contents. Replacement runs back to front to keep earlier match indices
// valid.
func shieldCodeTags(text string) (string, []shieldedSpan) {
	locations := codeTagRe.FindAllStringIndex(text, -1)
	if len(locations) == 0 {
		return text, nil
	}

	spans := make([]shieldedSpan, 0, len(locations))

	for i := len(locations) - 1; i >= 0; i-- {
		location := locations[i]
		placeholder := placeholderMarker + uuid.NewString() + placeholderMarker

		spans = append(spans, shieldedSpan{
			placeholder: placeholder,
			original:    text[location[0]:location[1]],
		})

		text = text[:location[0]] + placeholder + text[location[1]:]
	}

	return text, spans
}

// unshieldCodeTags restores every shielded span verbatim. A missing
// placeholder is a no-op: the splice primitive reports it and the span is
// simply dropped, which cannot happen unless the input contained the
// placeholder bytes themselves.
func unshieldCodeTags(text string, spans []shieldedSpan) string {
	for _, span := range spans {
		text, _ = yatgtext.SpliceFirstAtOrAfter(text, span.placeholder, span.original, 0)
	}

	return text
}
