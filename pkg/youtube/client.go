package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Rohithsilent/P-o-P/internal/model"
)

const (
	baseURL      = "https://www.googleapis.com/youtube/v3"
	pageSize     = 100
	DefaultLimit = 500
)

type Client struct {
	apiKey      string
	maxComments int
	httpClient  *http.Client
}

func NewClient(apiKey string, maxComments int, timeout time.Duration) *Client {
	if maxComments <= 0 {
		maxComments = DefaultLimit
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:      apiKey,
		maxComments: maxComments,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// FetchComments pages through the top-level comment threads, 100 per page,
// and stops once maxComments have been collected or there are no more pages.
func (c *Client) FetchComments(ctx context.Context, videoID string) ([]model.Comment, error) {
	var comments []model.Comment
	pageToken := ""

	for {
		params := url.Values{
			"part":       {"snippet"},
			"videoId":    {videoID},
			"textFormat": {"plainText"},
			"maxResults": {strconv.Itoa(pageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var raw commentThreadsResponse
		if err := c.get(ctx, "commentThreads", params, &raw); err != nil {
			return nil, err
		}

		for _, item := range raw.Items {
			s := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, model.Comment{
				Username:    s.AuthorDisplayName,
				Text:        s.TextDisplay,
				Likes:       s.LikeCount,
				PublishedAt: s.PublishedAt,
				ReplyCount:  item.Snippet.TotalReplyCount,
			})
		}

		if raw.NextPageToken == "" || len(comments) >= c.maxComments {
			break
		}
		pageToken = raw.NextPageToken
	}

	if len(comments) > c.maxComments {
		comments = comments[:c.maxComments]
	}
	return comments, nil
}

func (c *Client) FetchVideo(ctx context.Context, videoID string) (*model.VideoMeta, error) {
	var raw videosResponse
	params := url.Values{"part": {"snippet"}, "id": {videoID}}
	if err := c.get(ctx, "videos", params, &raw); err != nil {
		return nil, err
	}
	if len(raw.Items) == 0 {
		return nil, fmt.Errorf("youtube video %s: %w", videoID, ErrNotFound)
	}

	s := raw.Items[0].Snippet
	return &model.VideoMeta{
		ID:           videoID,
		Title:        s.Title,
		ChannelID:    s.ChannelID,
		ChannelTitle: s.ChannelTitle,
		PublishedAt:  s.PublishedAt,
	}, nil
}

func (c *Client) FetchVideoStats(ctx context.Context, videoID string) (*model.VideoStats, error) {
	var raw videosResponse
	params := url.Values{"part": {"statistics"}, "id": {videoID}}
	if err := c.get(ctx, "videos", params, &raw); err != nil {
		return nil, err
	}
	if len(raw.Items) == 0 {
		return nil, fmt.Errorf("youtube video stats %s: %w", videoID, ErrNotFound)
	}

	s := raw.Items[0].Statistics
	return &model.VideoStats{
		ViewCount:    parseCount(s.ViewCount),
		LikeCount:    parseCount(s.LikeCount),
		CommentCount: parseCount(s.CommentCount),
	}, nil
}

func (c *Client) FetchChannelInfo(ctx context.Context, channelID string) (*model.ChannelInfo, error) {
	var raw channelsResponse
	params := url.Values{"part": {"snippet,statistics,brandingSettings"}, "id": {channelID}}
	if err := c.get(ctx, "channels", params, &raw); err != nil {
		return nil, err
	}
	if len(raw.Items) == 0 {
		return nil, fmt.Errorf("youtube channel %s: %w", channelID, ErrNotFound)
	}

	item := raw.Items[0]
	return &model.ChannelInfo{
		ID:              channelID,
		Title:           item.Snippet.Title,
		VideoCount:      parseCount(item.Statistics.VideoCount),
		LogoURL:         item.Snippet.Thumbnails.High.URL,
		CreatedAt:       item.Snippet.PublishedAt,
		SubscriberCount: parseCount(item.Statistics.SubscriberCount),
		Description:     item.Snippet.Description,
	}, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("youtube %s: %w", resource, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube %s fetch: %w: %w", resource, ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Op: resource, StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube %s decode: %w", resource, err)
	}
	return nil
}

// The API reports statistics as decimal strings; hidden counts are absent.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type commentThreadsResponse struct {
	NextPageToken string          `json:"nextPageToken"`
	Items         []commentThread `json:"items"`
}

type commentThread struct {
	Snippet struct {
		TotalReplyCount int64 `json:"totalReplyCount"`
		TopLevelComment struct {
			Snippet struct {
				AuthorDisplayName string `json:"authorDisplayName"`
				TextDisplay       string `json:"textDisplay"`
				LikeCount         int64  `json:"likeCount"`
				PublishedAt       string `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			VideoCount      string `json:"videoCount"`
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}
