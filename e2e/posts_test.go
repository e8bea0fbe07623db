//go:build e2e && unix

package main

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostsRenderAsCards(t *testing.T) {
	srv := newPostsServer(t, http.StatusOK, samplePosts)

	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", srv.URL))
	require.True(t, tf.Ready())

	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "ID пользователя: 7") && strings.Contains(plain, "Another Note")
	}, 5*time.Second, "cards did not render"))
}

func TestTypingUpdatesLocation(t *testing.T) {
	srv := newPostsServer(t, http.StatusOK, samplePosts)

	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", srv.URL))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("Hello World", 5*time.Second))

	require.NoError(t, tf.Type("zzz"))
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "/?search=zzz")
	}, 3*time.Second, "location did not follow the input"))
}

func TestPresetSearchFromLocation(t *testing.T) {
	srv := newPostsServer(t, http.StatusOK, samplePosts)

	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", srv.URL, "/?search=another"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("Another Note", 5*time.Second))

	// The filter applies before the first card frame
	require.NotContains(t, tf.SnapshotPlain(), "Hello World")
}

func TestServerErrorShowsMessage(t *testing.T) {
	srv := newPostsServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", srv.URL))
	require.True(t, tf.Ready())

	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "Ошибка:") && strings.Contains(plain, "500")
	}, 5*time.Second, "error message did not render"))
}
