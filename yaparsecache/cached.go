package yaparsecache

import (
	"context"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yalogger"
	"github.com/YaCodeDev/GoYaTgMarkup/yatgmarkup"

	"github.com/gotd/td/tg"
)

// CachedEncoding bolts a Cache onto a yatgmarkup.MessageEncoding. Parse
// consults the cache first and memoizes on a miss; a failing cache degrades
// to a plain parse with a warning, it never fails the call. Unparse is not
// memoized — splicing is cheaper than a cache round-trip.
//
// Example usage:
//
//	cache := yaparsecache.NewMemory(time.Minute)
//	md := yaparsecache.NewCachedEncoding(yatgmarkup.NewMarkdownEncoding(), cache, time.Hour, log)
//	plain, entities := md.Parse(ctx, "**bold** text")
type CachedEncoding struct {
	inner yatgmarkup.MessageEncoding
	cache Cache
	ttl   time.Duration
	log   yalogger.Logger
}

// NewCachedEncoding wraps inner with cache. Records are stored with the given
// ttl; zero means no expiry. Pass a nil logger to get a default Warn-level
// one.
func NewCachedEncoding(
	inner yatgmarkup.MessageEncoding,
	cache Cache,
	ttl time.Duration,
	log yalogger.Logger,
) *CachedEncoding {
	if log == nil {
		log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	return &CachedEncoding{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// Parse returns the memoized result for text when present, otherwise parses
// and stores. The context bounds the cache round-trips only; the parse itself
// is CPU-bound and not cancellable.
func (c *CachedEncoding) Parse(
	ctx context.Context,
	text string,
) (string, []tg.MessageEntityClass) {
	record, hit, err := c.cache.Get(ctx, text)
	if err != nil {
		c.log.Warnf("parse cache get failed, falling back to parse: %v", err)
	}

	if hit {
		return record.Plain, record.ToEntities()
	}

	plain, entities := c.inner.Parse(text)

	if err == nil {
		if putErr := c.cache.Put(ctx, text, NewRecord(text, plain, entities), c.ttl); putErr != nil {
			c.log.Warnf("parse cache put failed: %v", putErr)
		}
	}

	return plain, entities
}

// Unparse delegates to the inner encoder.
func (c *CachedEncoding) Unparse(text string, entities []tg.MessageEntityClass) string {
	return c.inner.Unparse(text, entities)
}
