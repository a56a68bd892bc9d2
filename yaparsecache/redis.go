package yaparsecache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yaerrors"
	"github.com/YaCodeDev/GoYaTgMarkup/yalogger"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Redis is the shared-cache back-end: parse records stored as MessagePack
// under FNV-64a keys. Thread-safety is inherited from the go-redis client.
//
// Example usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	cache := yaparsecache.NewRedis(client, log)
//	defer cache.Close()
type Redis struct {
	client *redis.Client
	log    yalogger.Logger
}

// NewRedis wraps an already-configured *redis.Client. Pass a nil logger to
// get a default Warn-level one.
func NewRedis(client *redis.Client, log yalogger.Logger) *Redis {
	if log == nil {
		log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	return &Redis{
		client: client,
		log:    log,
	}
}

// Raw exposes the underlying *redis.Client for operations outside the
// high-level API, e.g. flushing the cache or inspecting keys.
func (r *Redis) Raw() *redis.Client {
	return r.client
}

// Get fetches and decodes the record stored for markup. A missing key is a
// miss, not an error; so is a key whose stored markup differs from the
// requested one (digest collision).
func (r *Redis) Get(
	ctx context.Context,
	markup string,
) (Record, bool, yaerrors.Error) {
	key := cacheKey(markup)

	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}

	if err != nil {
		return Record{}, false, yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToGetRecord),
			fmt.Sprintf("[REDIS] failed `GET` by `%s`", key),
		)
	}

	var record Record

	if err := msgpack.Unmarshal(payload, &record); err != nil {
		return Record{}, false, yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToDecodeRecord),
			fmt.Sprintf("[REDIS] failed to decode record by `%s`", key),
		)
	}

	if record.Markup != markup {
		r.log.Debugf("digest collision on %s, treating as miss", key)

		return Record{}, false, nil
	}

	return record, true, nil
}

// Put encodes and stores the record. A zero ttl stores it without expiry.
func (r *Redis) Put(
	ctx context.Context,
	markup string,
	record Record,
	ttl time.Duration,
) yaerrors.Error {
	key := cacheKey(markup)

	payload, err := msgpack.Marshal(record)
	if err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToEncodeRecord),
			fmt.Sprintf("[REDIS] failed to encode record by `%s`", key),
		)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToPutRecord),
			fmt.Sprintf("[REDIS] failed `SET` by `%s`", key),
		)
	}

	return nil
}

// Ping sends the Redis PING command.
func (r *Redis) Ping(ctx context.Context) yaerrors.Error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedPing),
			"[REDIS] failed `PING`",
		)
	}

	return nil
}

// Close closes the underlying connection(s). Call it in `defer` when the
// *redis.Client was created for this cache alone.
func (r *Redis) Close() yaerrors.Error {
	if err := r.client.Close(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToCloseBackend),
			"[REDIS] failed `CLOSE`",
		)
	}

	return nil
}
