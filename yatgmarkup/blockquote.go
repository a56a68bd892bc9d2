package yatgmarkup

import "strings"

const (
	blockquoteOpenTag           = "<blockquote>"
	blockquoteExpandableOpenTag = "<blockquote expandable>"
	blockquoteCloseTag          = "</blockquote>"
)

// groupBlockquotes is the line-oriented preprocessing pass that folds
// consecutive quote-prefixed lines into blockquote tags before tokenization.
//
// The expandable prefix (**>) is checked before the plain one (>) since the
// latter is a suffix of the former. Whether a block is expandable is decided
// by its first line; the prefix of a continuation line only determines how
// much leading text to strip. A non-prefixed line closes the open block, as
// does end of input.
func groupBlockquotes(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, string(lineBreak))
	result := make([]string, 0, len(lines))
	inBlockquote := false

	for _, line := range lines {
		var prefix delimiter

		switch {
		case strings.HasPrefix(line, blockquoteExpandableDelim.String()):
			prefix = blockquoteExpandableDelim
		case strings.HasPrefix(line, blockquoteDelim.String()):
			prefix = blockquoteDelim
		}

		if prefix == "" {
			if inBlockquote {
				result[len(result)-1] += blockquoteCloseTag
				inBlockquote = false
			}

			result = append(result, line)

			continue
		}

		content := strings.TrimPrefix(line, prefix.String())
		content = strings.TrimPrefix(content, " ")

		if inBlockquote {
			result = append(result, content)

			continue
		}

		openTag := blockquoteOpenTag
		if prefix == blockquoteExpandableDelim {
			openTag = blockquoteExpandableOpenTag
		}

		result = append(result, openTag+content)
		inBlockquote = true
	}

	if inBlockquote && len(result) > 0 {
		result[len(result)-1] += blockquoteCloseTag
	}

	return strings.Join(result, string(lineBreak))
}
