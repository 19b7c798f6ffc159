package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens is an in-memory TokenStore for client tests.
type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Load() (string, error) { return f.token, nil }

func (f *fakeTokens) Clear() error {
	f.token = ""
	f.cleared = true
	return nil
}

// recordingNav records navigation requests made by the interception layer.
type recordingNav struct {
	routes  []string
	reloads int
}

func (n *recordingNav) To(route string) { n.routes = append(n.routes, route) }
func (n *recordingNav) Reload()         { n.reloads++ }

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens *fakeTokens, nav Navigator) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		BaseURL:   srv.URL,
		Tokens:    tokens,
		Navigator: nav,
	})
}

func TestClient_AttachesBearerHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"OK","data":{"channels":[]}}`))
	}, &fakeTokens{token: "tok123"}, nil)

	_, err := c.Channels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"message":"OK","data":null}`))
	}, &fakeTokens{}, nil)

	_, err := c.Channels(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth, "empty token must not produce an Authorization header")
}

func TestClient_AttachesRequestID(t *testing.T) {
	var gotID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"message":"OK","data":null}`))
	}, &fakeTokens{}, nil)

	_, err := c.Channels(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestClient_SessionExpiry(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	nav := &recordingNav{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}, tokens, nav)

	_, err := c.Profile(context.Background())

	// The error is still raised to the caller
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSessionExpired))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)

	// Side effects ran exactly once, in the interception layer
	assert.True(t, tokens.cleared, "persisted token must be cleared")
	assert.Equal(t, []string{LoginRoute}, nav.routes, "navigation to login must be recorded")
	assert.Equal(t, 1, nav.reloads, "in-memory state must be reset")
}

func TestClient_NonAuthErrorHasNoSideEffects(t *testing.T) {
	tokens := &fakeTokens{token: "tok"}
	nav := &recordingNav{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"title required"}`))
	}, tokens, nav)

	_, err := c.CreateArticle(context.Background(), ArticleDraft{})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSessionExpired))
	assert.False(t, tokens.cleared)
	assert.Empty(t, nav.routes)
}

func TestClient_StripsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"OK","data":{"id":"8218","title":"hello"}}`))
	}, &fakeTokens{}, nil)

	art, err := c.GetArticle(context.Background(), "8218")
	require.NoError(t, err)
	assert.Equal(t, "8218", art.ID)
	assert.Equal(t, "hello", art.Title)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "13800000002", creds.Mobile)
		assert.Equal(t, "246810", creds.Code)

		w.Write([]byte(`{"message":"OK","data":{"token":"tok123"}}`))
	}, &fakeTokens{}, nil)

	res, err := c.Login(context.Background(), Credentials{Mobile: "13800000002", Code: "246810"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", res.Token)
}

func TestClient_CreateVsUpdateRouting(t *testing.T) {
	type seen struct {
		method, path string
		body         ArticleDraft
	}
	var last seen
	handler := func(w http.ResponseWriter, r *http.Request) {
		var draft ArticleDraft
		_ = json.NewDecoder(r.Body).Decode(&draft)
		last = seen{method: r.Method, path: r.URL.Path, body: draft}
		w.Write([]byte(`{"message":"OK","data":{"id":"42"}}`))
	}
	c := newTestClient(t, handler, &fakeTokens{token: "tok"}, nil)

	draft := ArticleDraft{Title: "t", Content: "c", ChannelID: 1}

	_, err := c.CreateArticle(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/articles", last.path)
	assert.Empty(t, last.body.ID)

	_, err = c.UpdateArticle(context.Background(), "42", draft)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last.method)
	assert.Equal(t, "/articles/42", last.path)
	assert.Equal(t, "42", last.body.ID, "update payload carries the id")
}

func TestClient_ListArticles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{"message":"OK","data":{"results":[{"id":"1","title":"a"}],"total_count":11,"page":2,"per_page":10}}`))
	}, &fakeTokens{token: "tok"}, nil)

	list, err := c.ListArticles(context.Background(), ListOptions{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 11, list.TotalCount)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "a", list.Results[0].Title)
}

func TestClient_UploadImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err, "upload must use the 'image' form field")
		defer file.Close()

		assert.Equal(t, "cat.png", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "pngbytes", string(data))

		w.Write([]byte(`{"message":"OK","data":{"url":"http://cdn/cat.png"}}`))
	}, &fakeTokens{token: "tok"}, nil)

	res, err := c.UploadImage(context.Background(), "cat.png", strings.NewReader("pngbytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/cat.png", res.URL)
}

func TestArticle_StatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{0, "draft"},
		{1, "pending"},
		{2, "published"},
		{3, "failed"},
		{9, "9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Article{Status: tt.status}.StatusLabel())
	}
}
