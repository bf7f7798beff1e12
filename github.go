package main

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/auth"
)

const githubAPIURL = "https://api.github.com"

// GitHubClient fetches profile avatars to use as source images
type GitHubClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGitHubClient creates a client through go-gh, which picks up GH_TOKEN,
// GITHUB_TOKEN or the gh CLI login. Without a token requests are anonymous
// and subject to the lower rate limit.
func NewGitHubClient() (*GitHubClient, error) {
	httpClient, err := ghAPI.NewHTTPClient(ghAPI.ClientOptions{
		Host:    "github.com",
		Timeout: 10 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	if token, _ := auth.TokenForHost("github.com"); token == "" {
		log.Printf("no GitHub authentication found, using anonymous requests")
	}

	return &GitHubClient{httpClient: httpClient, baseURL: githubAPIURL}, nil
}

// Profile is the subset of a GitHub user needed to find the avatar
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// FetchProfile fetches a user's public profile. An empty login or "@me"
// fetches the authenticated user.
func (c *GitHubClient) FetchProfile(login string) (*Profile, error) {
	login = strings.TrimPrefix(login, "@")

	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(login))
	if login == "" || login == "me" {
		endpoint = fmt.Sprintf("%s/user", c.baseURL)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API error: %s", resp.Status)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if profile.AvatarURL == "" {
		return nil, fmt.Errorf("profile %q has no avatar", profile.Login)
	}

	return &profile, nil
}

// FetchAvatarImage downloads and decodes a user's avatar at full size
func (c *GitHubClient) FetchAvatarImage(login string) (image.Image, error) {
	profile, err := c.FetchProfile(login)
	if err != nil {
		return nil, err
	}
	log.Printf("fetching avatar of %s from %s", profile.Login, profile.AvatarURL)

	resp, err := c.httpClient.Get(profile.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch avatar: status %d", resp.StatusCode)
	}

	img, _, err := DecodeImage(resp.Body)
	if err != nil {
		return nil, err
	}
	return img, nil
}
