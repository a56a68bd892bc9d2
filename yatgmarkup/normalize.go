package yatgmarkup

import (
	"strconv"
	"strings"

	"github.com/gotd/td/tg"
)

const (
	spoilerSentinel     = "spoiler"
	emojiSentinelPrefix = "emoji/"
)

// normalizeEntities reinterprets link entities whose target encodes a
// sentinel: the literal "spoiler" becomes a spoiler entity and "emoji/<id>"
// with a parseable non-negative id becomes a custom-emoji entity, both at the
// same offset and length. Anything else — including a malformed emoji id —
// is left as a link. In place, order-preserving and idempotent.
func (m *markdownEncoding) normalizeEntities(
	entities []tg.MessageEntityClass,
) []tg.MessageEntityClass {
	for i, entity := range entities {
		link, ok := entity.(*tg.MessageEntityTextURL)
		if !ok {
			continue
		}

		switch {
		case link.URL == spoilerSentinel:
			entities[i] = &tg.MessageEntitySpoiler{
				Offset: link.Offset,
				Length: link.Length,
			}
		case strings.HasPrefix(link.URL, emojiSentinelPrefix):
			documentID, err := strconv.ParseInt(
				strings.TrimPrefix(link.URL, emojiSentinelPrefix), 10, 64,
			)
			if err != nil || documentID < 0 {
				m.log.Debugf("leaving link with unparseable emoji id %q as-is", link.URL)

				continue
			}

			entities[i] = &tg.MessageEntityCustomEmoji{
				Offset:     link.Offset,
				Length:     link.Length,
				DocumentID: documentID,
			}
		}
	}

	return entities
}
