package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tmh-tarot-scraper/internal/config"
	"tmh-tarot-scraper/internal/fetcher"
	"tmh-tarot-scraper/internal/observability"
	"tmh-tarot-scraper/internal/scraper"
)

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/img/fool.jpg":
			_, _ = w.Write([]byte("jpeg-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newDownloader(dir string) *Downloader {
	f := fetcher.NewFetcher(config.DefaultConfig(), observability.NewDiscardLogger())
	return NewDownloader(f, observability.NewDiscardLogger(), dir)
}

func TestFileName(t *testing.T) {
	card := &scraper.Card{Name: "The Fool", ImageURL: "https://example.com/img/fool.jpg?format=2500w"}
	assert.Equal(t, "the-fool.jpg", FileName(card))

	card = &scraper.Card{Name: "Two of Cups", ImageURL: "https://example.com/images/twoofcups"}
	assert.Equal(t, "two-of-cups.jpg", FileName(card))
}

func TestDownloadAll(t *testing.T) {
	server := imageServer(t)
	dir := filepath.Join(t.TempDir(), "images")

	cards := []*scraper.Card{
		{Name: "The Fool", ImageURL: server.URL + "/img/fool.jpg"},
		{Name: "Two of Cups"}, // no image on the page
	}

	ok, failed := newDownloader(dir).DownloadAll(context.Background(), cards)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 0, failed)

	data, err := os.ReadFile(filepath.Join(dir, "the-fool.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "card without image URL must not produce a file")
}

func TestDownloadAll_FailureIsolation(t *testing.T) {
	server := imageServer(t)
	dir := filepath.Join(t.TempDir(), "images")

	cards := []*scraper.Card{
		{Name: "The Tower", ImageURL: server.URL + "/img/missing.jpg"},
		{Name: "The Fool", ImageURL: server.URL + "/img/fool.jpg"},
	}

	ok, failed := newDownloader(dir).DownloadAll(context.Background(), cards)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, failed)

	_, err := os.Stat(filepath.Join(dir, "the-tower.jpg"))
	assert.True(t, os.IsNotExist(err), "404 image must not leave a file behind")

	_, err = os.Stat(filepath.Join(dir, "the-fool.jpg"))
	assert.NoError(t, err)
}

func TestDownloadAll_NoCandidates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	ok, failed := newDownloader(dir).DownloadAll(context.Background(), []*scraper.Card{{Name: "The Fool"}})
	assert.Equal(t, 0, ok)
	assert.Equal(t, 0, failed)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no images dir created when there is nothing to download")
}

func TestDownloadAll_OverwritesOnRerun(t *testing.T) {
	server := imageServer(t)
	dir := filepath.Join(t.TempDir(), "images")
	d := newDownloader(dir)

	cards := []*scraper.Card{{Name: "The Fool", ImageURL: server.URL + "/img/fool.jpg"}}

	ok, _ := d.DownloadAll(context.Background(), cards)
	require.Equal(t, 1, ok)
	ok, _ = d.DownloadAll(context.Background(), cards)
	require.Equal(t, 1, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
