package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Rohithsilent/P-o-P/internal/model"
)

const cacheKeyPrefix = "pulse:cache:"

// ErrCacheMiss is returned by a Cache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource memoises video and channel metadata. Comments always go to
// the wrapped source.
type CachedSource struct {
	src   Source
	cache Cache
	ttl   time.Duration
}

func NewCachedSource(src Source, cache Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: cache, ttl: ttl}
}

func (s *CachedSource) FetchComments(ctx context.Context, videoID string) ([]model.Comment, error) {
	return s.src.FetchComments(ctx, videoID)
}

func (s *CachedSource) FetchVideo(ctx context.Context, videoID string) (*model.VideoMeta, error) {
	return cached(ctx, s, "video", videoID, s.src.FetchVideo)
}

func (s *CachedSource) FetchVideoStats(ctx context.Context, videoID string) (*model.VideoStats, error) {
	return cached(ctx, s, "stats", videoID, s.src.FetchVideoStats)
}

func (s *CachedSource) FetchChannelInfo(ctx context.Context, channelID string) (*model.ChannelInfo, error) {
	return cached(ctx, s, "channel", channelID, s.src.FetchChannelInfo)
}

func cacheKey(kind, id string) string {
	return cacheKeyPrefix + kind + ":" + id
}

func cached[T any](ctx context.Context, s *CachedSource, kind, id string, fetch func(context.Context, string) (*T, error)) (*T, error) {
	key := cacheKey(kind, id)

	data, err := s.cache.Get(ctx, key)
	if err == nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return &v, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", key)
	} else if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("cache read failed", "key", key, "error", err)
	}

	v, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}
