package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/Viviane-Queiroz/dev-shop/configs"
)

const githubUserURL = "https://api.github.com/user"

// OAuthConfig builds the GitHub sign-in config from app config.
func OAuthConfig(cfg configs.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURL,
		Scopes:       []string{"read:user"},
		Endpoint:     github.Endpoint,
	}
}

// GitHubUser is the subset of the GitHub user profile we keep in a session.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// FetchGitHubUser loads the signed-in user's profile with the exchanged token.
func FetchGitHubUser(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) (GitHubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubUserURL, nil)
	if err != nil {
		return GitHubUser{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := conf.Client(ctx, tok).Do(req)
	if err != nil {
		return GitHubUser{}, fmt.Errorf("fetch github user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GitHubUser{}, fmt.Errorf("fetch github user: status %d", resp.StatusCode)
	}
	var u GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return GitHubUser{}, fmt.Errorf("decode github user: %w", err)
	}
	return u, nil
}

// UserID renders the numeric GitHub id as the session's user id.
func (u GitHubUser) UserID() string {
	return "github:" + strconv.FormatInt(u.ID, 10)
}
