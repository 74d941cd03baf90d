package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClient(&Config{
		HotsLogsURL:   url,
		HeroesFireURL: url + "/",
		Timeout:       5 * time.Second,
		UserAgent:     "hotsbot-test",
	})
}

func TestFetchPlayerSearch(t *testing.T) {
	page, err := os.ReadFile("testdata/player_search.html")
	require.NoError(t, err)

	var gotPath, gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("Name")
		gotAgent = r.Header.Get("User-Agent")
		w.Write(page)
	}))
	defer srv.Close()

	ratings, err := newTestClient(srv.URL).FetchPlayerSearch(context.Background(), "Wobbley")
	require.NoError(t, err)
	require.Equal(t, "/PlayerSearch", gotPath)
	require.Equal(t, "Wobbley", gotQuery)
	require.Equal(t, "hotsbot-test", gotAgent)
	require.Len(t, ratings, 2)
}

func TestFetchPlayerSearchFullBattleTag(t *testing.T) {
	page, err := os.ReadFile("testdata/player_search.html")
	require.NoError(t, err)

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("Name")
		w.Write(page)
	}))
	defer srv.Close()

	ratings, err := newTestClient(srv.URL).FetchPlayerSearch(context.Background(), "Wobbley#2327")
	require.NoError(t, err)
	require.Equal(t, "Wobbley#2327", gotQuery)
	require.Empty(t, ratings)
}

func TestFetchFreeRotation(t *testing.T) {
	page, err := os.ReadFile("testdata/free_rotation.html")
	require.NoError(t, err)

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(page)
	}))
	defer srv.Close()

	heroes, err := newTestClient(srv.URL).FetchFreeRotation(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/", gotPath)
	require.Len(t, heroes, 4)
	require.Equal(t, "Li Ming", heroes[0].Name)
}

func TestFetchErrorOnStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchFreeRotation(context.Background())
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
	require.Equal(t, pageFreeRotation, fetchErr.Page)
}

func TestFetchErrorOnTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).FetchPlayerSearch(context.Background(), "Wobbley")
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Error(t, fetchErr.Err)
}
