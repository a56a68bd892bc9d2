package yatgmarkup

import (
	"sort"

	"github.com/YaCodeDev/GoYaTgMarkup/yatgtext"

	"github.com/gotd/td/tg"
)

// insertion is one markup token pinned to a UTF-16 code-unit offset.
type insertion struct {
	offset int
	token  string
}

// spliceEntityTokens rebuilds markup from plain text and entities. The text
// is expanded to UTF-16 code units so entity offsets index it directly, then
// every entity contributes its start/end tokens to one insertion list.
//
// The list is stable-sorted ascending by offset and applied back to front:
// splicing at a later offset never shifts a still-unprocessed earlier offset,
// and tokens sharing an offset keep their build order in the output.
func (m *markdownEncoding) spliceEntityTokens(
	text string,
	entities []tg.MessageEntityClass,
) string {
	expanded := yatgtext.Expand(text)

	insertions := make([]insertion, 0, 2*len(entities))

	for _, entity := range entities {
		start := entity.GetOffset()
		end := start + entity.GetLength()

		if start < 0 || start > len(expanded) || end < start {
			m.log.Warnf(
				"skipping %T outside plain text bounds: offset=%d length=%d text=%d units",
				entity, entity.GetOffset(), entity.GetLength(), len(expanded),
			)

			continue
		}

		if end > len(expanded) {
			m.log.Warnf(
				"clamping %T end to text bounds: offset=%d length=%d text=%d units",
				entity, entity.GetOffset(), entity.GetLength(), len(expanded),
			)

			end = len(expanded)
		}

		startToken, endToken, known := entityTokens(entity)
		if !known {
			m.log.Debugf("no markup template for %T, skipping", entity)

			continue
		}

		insertions = append(insertions, insertion{offset: start, token: startToken})

		if endToken != "" {
			insertions = append(insertions, insertion{offset: end, token: endToken})
		}
	}

	sort.SliceStable(insertions, func(i, j int) bool {
		return insertions[i].offset < insertions[j].offset
	})

	for i := len(insertions) - 1; i >= 0; i-- {
		expanded = expanded.InsertAt(insertions[i].offset, insertions[i].token)
	}

	return expanded.Contract()
}
