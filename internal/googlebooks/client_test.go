package googlebooks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    serverURL,
		apiKey:     apiKey,
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))

		response := volumesResponse{
			TotalItems: 2,
			Items: []volumeItem{
				{
					ID: "vol-1",
					VolumeInfo: volumeInfo{
						Title:         "The Go Programming Language",
						Authors:       []string{"Alan Donovan", "Brian Kernighan"},
						PublishedDate: "2015-10-26",
						Description:   "The reference.",
						ImageLinks: imageLinks{
							SmallThumbnail: "http://books.example/small.jpg",
							Thumbnail:      "http://books.example/full.jpg",
						},
					},
				},
				{
					ID: "vol-2",
					VolumeInfo: volumeInfo{
						Title: "Learning Go",
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	results, err := client.Search(context.Background(), "golang", 20)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "vol-1", results[0].GoogleID)
	assert.Equal(t, "The Go Programming Language", results[0].Title)
	assert.Equal(t, []string{"Alan Donovan", "Brian Kernighan"}, results[0].Authors)
	assert.Equal(t, "http://books.example/full.jpg", results[0].Thumbnail, "full-size thumbnail preferred")
	assert.Empty(t, results[1].Thumbnail)
	assert.Empty(t, results[1].Authors)
}

func TestSearch_UntitledDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := volumesResponse{
			TotalItems: 1,
			Items:      []volumeItem{{ID: "vol-1"}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	results, err := client.Search(context.Background(), "anything", 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Untitled", results[0].Title)
}

func TestSearch_SmallThumbnailFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := volumesResponse{
			TotalItems: 1,
			Items: []volumeItem{{
				ID: "vol-1",
				VolumeInfo: volumeInfo{
					Title:      "Title",
					ImageLinks: imageLinks{SmallThumbnail: "http://books.example/small.jpg"},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	results, err := client.Search(context.Background(), "anything", 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "http://books.example/small.jpg", results[0].Thumbnail)
}

func TestSearch_APIKeyPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(volumesResponse{})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "secret-key")
	_, err := client.Search(context.Background(), "q", 1)
	require.NoError(t, err)
}

func TestSearch_NoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(volumesResponse{TotalItems: 0})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	results, err := client.Search(context.Background(), "nothing", 10)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.Search(context.Background(), "q", 1)

	assert.Error(t, err)
}

func TestSearch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL, "")
	_, err := client.Search(context.Background(), "q", 1)

	assert.Error(t, err)
}
