package main

import (
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHub(t *testing.T) *GitHubClient {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	profile := func(login string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"login": %q, "name": "Test", "avatar_url": "%s/avatars/%s.png"}`, login, srv.URL, login)
		}
	}
	mux.HandleFunc("/users/octocat", profile("octocat"))
	mux.HandleFunc("/user", profile("me"))
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login": "ghost", "avatar_url": ""}`)
	})
	mux.HandleFunc("/users/broken", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"login": "broken", "avatar_url": "%s/avatars/broken.png"}`, srv.URL)
	})
	mux.HandleFunc("/avatars/octocat.png", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, png.Encode(w, testImage(46, 46)))
	})
	mux.HandleFunc("/avatars/me.png", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, png.Encode(w, testImage(20, 20)))
	})
	mux.HandleFunc("/avatars/broken.png", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not a png")
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &GitHubClient{httpClient: srv.Client(), baseURL: srv.URL}
}

func TestFetchProfile(t *testing.T) {
	client := newTestGitHub(t)

	profile, err := client.FetchProfile("@octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", profile.Login)
	assert.Contains(t, profile.AvatarURL, "/avatars/octocat.png")

	for _, login := range []string{"", "@me", "me"} {
		profile, err := client.FetchProfile(login)
		require.NoError(t, err, login)
		assert.Equal(t, "me", profile.Login)
	}
}

func TestFetchProfileErrors(t *testing.T) {
	client := newTestGitHub(t)

	_, err := client.FetchProfile("nobody")
	assert.ErrorContains(t, err, "404")

	_, err = client.FetchProfile("ghost")
	assert.ErrorContains(t, err, "no avatar")
}

func TestFetchAvatarImage(t *testing.T) {
	client := newTestGitHub(t)

	img, err := client.FetchAvatarImage("octocat")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 46, 46), img.Bounds())

	_, err = client.FetchAvatarImage("broken")
	assert.Error(t, err)
}
