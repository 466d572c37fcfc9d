// Package youtube fetches comments and metadata from the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rohithsilent/P-o-P/internal/model"
)

var (
	ErrInvalidIdentifier = errors.New("invalid youtube video link")
	ErrExternalAPI       = errors.New("youtube api request failed")
	ErrNotFound          = errors.New("youtube resource not found")
)

var videoIDPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu.be/)([a-zA-Z0-9_-]{11})`)

func ExtractVideoID(link string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(strings.TrimSpace(link))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, link)
	}
	return m[1], nil
}

// APIError is a non-2xx answer from the API. It matches ErrExternalAPI, and
// ErrNotFound as well for 404s.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("youtube %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("youtube %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	if target == ErrExternalAPI {
		return true
	}
	return target == ErrNotFound && e.StatusCode == 404
}

type Source interface {
	FetchComments(ctx context.Context, videoID string) ([]model.Comment, error)
	FetchVideo(ctx context.Context, videoID string) (*model.VideoMeta, error)
	FetchVideoStats(ctx context.Context, videoID string) (*model.VideoStats, error)
	FetchChannelInfo(ctx context.Context, channelID string) (*model.ChannelInfo, error)
}
