// Package yaparsecache memoizes yatgmarkup parse results. Parse is a pure
// function of its input, so a (markup → plain text + entities) record can be
// cached indefinitely; the package ships a Redis back-end for shared caches
// and an in-memory back-end for single-process use, both behind one Cache
// interface, plus CachedEncoding, which bolts a cache onto any
// yatgmarkup.MessageEncoding.
//
// Records travel as MessagePack. Keys are FNV-64a digests of the markup; the
// record stores the original markup and Get verifies it, so a digest
// collision degrades to a cache miss rather than a wrong answer.
//
// Example usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	cache := yaparsecache.NewRedis(client, log)
//	md := yaparsecache.NewCachedEncoding(yatgmarkup.NewMarkdownEncoding(), cache, time.Hour, log)
//	plain, entities := md.Parse(ctx, "**bold** text")
package yaparsecache

import (
	"context"
	"encoding/hex"
	"hash/fnv"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yaerrors"

	"github.com/gotd/td/tg"
)

const keyPrefix = "yatgmarkup:parse:"

// Entity kind discriminators used by EntityRecord. The set is closed: it
// covers exactly the kinds the transcoder produces.
const (
	KindBold        = "bold"
	KindItalic      = "italic"
	KindUnderline   = "underline"
	KindStrike      = "strike"
	KindSpoiler     = "spoiler"
	KindCode        = "code"
	KindPre         = "pre"
	KindTextURL     = "text_url"
	KindMentionName = "mention_name"
	KindCustomEmoji = "custom_emoji"
	KindBlockquote  = "blockquote"
)

// EntityRecord is the portable form of one message entity. Only the fields
// relevant to the record's kind are populated.
type EntityRecord struct {
	Kind       string `msgpack:"kind"                  json:"kind"`
	Offset     int    `msgpack:"offset"                json:"offset"`
	Length     int    `msgpack:"length"                json:"length"`
	URL        string `msgpack:"url,omitempty"         json:"url,omitempty"`
	UserID     int64  `msgpack:"user_id,omitempty"     json:"user_id,omitempty"`
	DocumentID int64  `msgpack:"document_id,omitempty" json:"document_id,omitempty"`
	Language   string `msgpack:"language,omitempty"    json:"language,omitempty"`
	Collapsed  bool   `msgpack:"collapsed,omitempty"   json:"collapsed,omitempty"`
}

// Record is one memoized parse result. Markup is the exact input the record
// was computed from and is checked on every cache hit.
type Record struct {
	Markup   string         `msgpack:"markup"   json:"markup"`
	Plain    string         `msgpack:"plain"    json:"plain"`
	Entities []EntityRecord `msgpack:"entities" json:"entities"`
}

// NewRecord builds the Record memoizing one parse result.
//
// Example usage:
//
//	plain, entities := md.Parse(markup)
//	record := yaparsecache.NewRecord(markup, plain, entities)
func NewRecord(markup, plain string, entities []tg.MessageEntityClass) Record {
	return Record{
		Markup:   markup,
		Plain:    plain,
		Entities: FromEntities(entities),
	}
}

// ToEntities materializes the record's entity list as gotd entities.
func (r Record) ToEntities() []tg.MessageEntityClass {
	return ToEntities(r.Entities)
}

// Cache stores parse records keyed by the markup they were computed from.
// All back-ends are safe for concurrent use.
type Cache interface {
	// Get looks up the record computed from markup. The second result is
	// false on a miss; an error indicates a back-end failure, not a miss.
	//
	// Example usage:
	//
	//	record, ok, err := cache.Get(ctx, "**bold**")
	Get(ctx context.Context, markup string) (Record, bool, yaerrors.Error)

	// Put stores the record under its markup. A zero ttl stores it without
	// expiry.
	//
	// Example usage:
	//
	//	_ = cache.Put(ctx, record.Markup, record, time.Hour)
	Put(ctx context.Context, markup string, record Record, ttl time.Duration) yaerrors.Error

	// Ping verifies that the back-end is reachable and healthy.
	Ping(ctx context.Context) yaerrors.Error

	// Close releases the back-end's resources.
	Close() yaerrors.Error
}

// FromEntities converts gotd entities into portable records. Entity kinds
// outside the transcoder's set are dropped.
func FromEntities(entities []tg.MessageEntityClass) []EntityRecord {
	records := make([]EntityRecord, 0, len(entities))

	for _, entity := range entities {
		record := EntityRecord{
			Offset: entity.GetOffset(),
			Length: entity.GetLength(),
		}

		switch e := entity.(type) {
		case *tg.MessageEntityBold:
			record.Kind = KindBold
		case *tg.MessageEntityItalic:
			record.Kind = KindItalic
		case *tg.MessageEntityUnderline:
			record.Kind = KindUnderline
		case *tg.MessageEntityStrike:
			record.Kind = KindStrike
		case *tg.MessageEntitySpoiler:
			record.Kind = KindSpoiler
		case *tg.MessageEntityCode:
			record.Kind = KindCode
		case *tg.MessageEntityPre:
			record.Kind = KindPre
			record.Language = e.Language
		case *tg.MessageEntityTextURL:
			record.Kind = KindTextURL
			record.URL = e.URL
		case *tg.MessageEntityMentionName:
			record.Kind = KindMentionName
			record.UserID = e.UserID
		case *tg.MessageEntityCustomEmoji:
			record.Kind = KindCustomEmoji
			record.DocumentID = e.DocumentID
		case *tg.MessageEntityBlockquote:
			record.Kind = KindBlockquote
			record.Collapsed = e.Collapsed
		default:
			continue
		}

		records = append(records, record)
	}

	return records
}

// ToEntities converts portable records back into gotd entities. Records with
// an unknown kind are dropped, mirroring FromEntities.
func ToEntities(records []EntityRecord) []tg.MessageEntityClass {
	entities := make([]tg.MessageEntityClass, 0, len(records))

	for _, record := range records {
		switch record.Kind {
		case KindBold:
			entities = append(entities, &tg.MessageEntityBold{
				Offset: record.Offset, Length: record.Length,
			})
		case KindItalic:
			entities = append(entities, &tg.MessageEntityItalic{
				Offset: record.Offset, Length: record.Length,
			})
		case KindUnderline:
			entities = append(entities, &tg.MessageEntityUnderline{
				Offset: record.Offset, Length: record.Length,
			})
		case KindStrike:
			entities = append(entities, &tg.MessageEntityStrike{
				Offset: record.Offset, Length: record.Length,
			})
		case KindSpoiler:
			entities = append(entities, &tg.MessageEntitySpoiler{
				Offset: record.Offset, Length: record.Length,
			})
		case KindCode:
			entities = append(entities, &tg.MessageEntityCode{
				Offset: record.Offset, Length: record.Length,
			})
		case KindPre:
			entities = append(entities, &tg.MessageEntityPre{
				Offset: record.Offset, Length: record.Length, Language: record.Language,
			})
		case KindTextURL:
			entities = append(entities, &tg.MessageEntityTextURL{
				Offset: record.Offset, Length: record.Length, URL: record.URL,
			})
		case KindMentionName:
			entities = append(entities, &tg.MessageEntityMentionName{
				Offset: record.Offset, Length: record.Length, UserID: record.UserID,
			})
		case KindCustomEmoji:
			entities = append(entities, &tg.MessageEntityCustomEmoji{
				Offset: record.Offset, Length: record.Length, DocumentID: record.DocumentID,
			})
		case KindBlockquote:
			entities = append(entities, &tg.MessageEntityBlockquote{
				Offset: record.Offset, Length: record.Length, Collapsed: record.Collapsed,
			})
		}
	}

	return entities
}

// cacheKey derives the storage key for a markup string.
func cacheKey(markup string) string {
	hasher := fnv.New64a()
	hasher.Write([]byte(markup))

	return keyPrefix + hex.EncodeToString(hasher.Sum(nil))
}
