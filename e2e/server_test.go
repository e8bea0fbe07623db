//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const samplePosts = `[
	{"userId":7,"id":1,"title":"Hello World","body":"text"},
	{"userId":3,"id":2,"title":"Another Note","body":"more text"}
]`

// newPostsServer serves body with status on every request
func newPostsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
