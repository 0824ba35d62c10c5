// Package googlebooks provides a client for the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// SearchResult is one catalog hit mapped into the internal shape.
type SearchResult struct {
	GoogleID      string   `json:"google_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// Client queries the Google Books volumes API. Calls are single-shot with a
// fixed timeout; there is no retry or backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Google Books client. apiKey may be empty; the volumes
// endpoint works unauthenticated at lower quota.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// Search queries the volumes endpoint and maps each item into a
// SearchResult. Volumes without a title are reported as "Untitled"; the
// full-size thumbnail is preferred over the small one.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "BookTrack/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search volumes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var volumes volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]SearchResult, 0, len(volumes.Items))
	for _, item := range volumes.Items {
		results = append(results, convertVolume(item))
	}
	return results, nil
}

func convertVolume(item volumeItem) SearchResult {
	info := item.VolumeInfo

	title := info.Title
	if title == "" {
		title = "Untitled"
	}

	thumbnail := info.ImageLinks.Thumbnail
	if thumbnail == "" {
		thumbnail = info.ImageLinks.SmallThumbnail
	}

	return SearchResult{
		GoogleID:      item.ID,
		Title:         title,
		Authors:       info.Authors,
		Thumbnail:     thumbnail,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
	}
}

// Google Books API response types (internal)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	PublishedDate string     `json:"publishedDate"`
	Description   string     `json:"description"`
	ImageLinks    imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
