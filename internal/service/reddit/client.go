// Package reddit provides a read-only client for reddit's public search API.
package reddit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"FinGather/internal/domain/models"
)

const searchURL = "https://www.reddit.com/search.json"

// Client searches reddit for ticker mentions. Reddit throttles anonymous
// clients aggressively without a descriptive User-Agent.
type Client struct {
	rest *resty.Client
}

// New creates a reddit search client.
func New(userAgent string, timeout time.Duration) *Client {
	rest := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Client{rest: rest}
}

type searchResponse struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
}

// Search returns the newest posts matching query, bounded by limit.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.SocialPost, error) {
	if limit <= 0 {
		limit = 25
	}
	var result searchResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     query,
			"sort":  "new",
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("reddit search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("reddit search: status %d", resp.StatusCode())
	}

	posts := make([]models.SocialPost, 0, len(result.Data.Children))
	for _, child := range result.Data.Children {
		d := child.Data
		if d.Title == "" {
			continue
		}
		posts = append(posts, models.SocialPost{
			Title:     d.Title,
			Subreddit: d.Subreddit,
			Author:    d.Author,
			Score:     d.Score,
			Comments:  d.NumComments,
			Permalink: "https://www.reddit.com" + d.Permalink,
			Unix:      int64(d.CreatedUTC),
		})
	}
	return posts, nil
}
