package yaparsecache_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaTgMarkup/yaparsecache"

	"github.com/google/go-cmp/cmp"
	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
)

func TestEntityRecordCodec(t *testing.T) {
	t.Parallel()

	entities := []tg.MessageEntityClass{
		&tg.MessageEntityBold{Offset: 0, Length: 1},
		&tg.MessageEntityItalic{Offset: 1, Length: 2},
		&tg.MessageEntityUnderline{Offset: 3, Length: 1},
		&tg.MessageEntityStrike{Offset: 4, Length: 1},
		&tg.MessageEntitySpoiler{Offset: 5, Length: 1},
		&tg.MessageEntityCode{Offset: 6, Length: 1},
		&tg.MessageEntityPre{Offset: 7, Length: 3, Language: "go"},
		&tg.MessageEntityTextURL{Offset: 10, Length: 1, URL: "https://example.com"},
		&tg.MessageEntityMentionName{Offset: 11, Length: 2, UserID: 42},
		&tg.MessageEntityCustomEmoji{Offset: 13, Length: 2, DocumentID: 7},
		&tg.MessageEntityBlockquote{Offset: 15, Length: 4, Collapsed: true},
	}

	restored := yaparsecache.ToEntities(yaparsecache.FromEntities(entities))

	assert.Empty(t, cmp.Diff(entities, restored))
}

func TestEntityRecordCodecDropsUnknownKinds(t *testing.T) {
	t.Parallel()

	t.Run("on encode", func(t *testing.T) {
		t.Parallel()

		records := yaparsecache.FromEntities([]tg.MessageEntityClass{
			&tg.MessageEntityMention{Offset: 0, Length: 2},
			&tg.MessageEntityBold{Offset: 3, Length: 1},
		})

		assert.Len(t, records, 1)
		assert.Equal(t, yaparsecache.KindBold, records[0].Kind)
	})

	t.Run("on decode", func(t *testing.T) {
		t.Parallel()

		entities := yaparsecache.ToEntities([]yaparsecache.EntityRecord{
			{Kind: "hashtag", Offset: 0, Length: 2},
			{Kind: yaparsecache.KindItalic, Offset: 3, Length: 1},
		})

		assert.Empty(t, cmp.Diff([]tg.MessageEntityClass{
			&tg.MessageEntityItalic{Offset: 3, Length: 1},
		}, entities))
	})
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	record := yaparsecache.NewRecord("**x**", "x", []tg.MessageEntityClass{
		&tg.MessageEntityBold{Offset: 0, Length: 1},
	})

	assert.Equal(t, "**x**", record.Markup)
	assert.Equal(t, "x", record.Plain)
	assert.Equal(t, []yaparsecache.EntityRecord{
		{Kind: yaparsecache.KindBold, Offset: 0, Length: 1},
	}, record.Entities)
}
