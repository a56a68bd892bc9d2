package yatgmarkup

// tokenizeDelimiters converts delimiter markup into HTML-like inline tags in
// a single left-to-right scan over the precomputed match list.
//
// State is one open/closed flag per delimiter kind plus a fixed-width flag.
// Kinds toggle independently, so occurrences of the same kind pair up
// sequentially; an odd count leaves that kind open with no closing tag
// emitted. While fixed-width (code or pre open), every other delimiter is
// passed through literally. Link constructs are emitted unconditionally,
// fixed-width or not — the dialect recognizes links inside code spans.
func tokenizeDelimiters(text string) string {
	matches := markdownRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	out := make([]byte, 0, len(text)+len(matches)*4)
	open := make(map[delimiter]bool, len(delimiterTags))
	fixedWidth := false
	cursor := 0

	for _, match := range matches {
		start, end := match[0], match[1]

		// Consumed by a preceding fence's language tag.
		if start < cursor {
			continue
		}

		out = append(out, text[cursor:start]...)
		cursor = end

		if match[4] >= 0 {
			label := text[match[4]:match[5]]
			target := text[match[6]:match[7]]

			out = append(out, `<a href="`...)
			out = append(out, target...)
			out = append(out, `">`...)
			out = append(out, label...)
			out = append(out, `</a>`...)

			continue
		}

		delim := delimiter(text[match[2]:match[3]])

		if fixedWidth && delim != codeDelim && delim != preDelim {
			out = append(out, delim...)

			continue
		}

		tag := delimiterTags[delim]

		if !open[delim] {
			open[delim] = true

			if delim == preDelim {
				language, next := consumeLanguageTag(text, end)

				out = append(out, `<pre language="`...)
				out = append(out, language...)
				out = append(out, `">`...)

				cursor = next
			} else {
				out = append(out, '<')
				out = append(out, tag...)
				out = append(out, '>')
			}
		} else {
			open[delim] = false

			// The line break before a closing fence belongs to the
			// fence, not to the pre content.
			if delim == preDelim && len(out) > 0 && out[len(out)-1] == lineBreak {
				out = out[:len(out)-1]
			}

			out = append(out, '<')
			out = append(out, '/')
			out = append(out, tag...)
			out = append(out, '>')
		}

		if delim == codeDelim || delim == preDelim {
			fixedWidth = open[codeDelim] || open[preDelim]
		}
	}

	out = append(out, text[cursor:]...)

	return string(out)
}

// consumeLanguageTag reads the language tag of an opening fence: the
// remainder of the current line, plus the line break itself when present.
// Returns the language and the position scanning resumes from.
func consumeLanguageTag(text string, from int) (string, int) {
	to := from

	for to < len(text) && text[to] != lineBreak {
		to++
	}

	language := text[from:to]

	if to < len(text) {
		to++
	}

	return language, to
}
