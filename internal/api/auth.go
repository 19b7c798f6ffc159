package api

import "context"

// Credentials is the login request body.
type Credentials struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

// LoginResult carries the session token returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
}

// UserProfile is the authenticated user's profile, replaced wholesale on
// every fetch.
type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Photo  string `json:"photo"`
	Mobile string `json:"mobile"`
	Intro  string `json:"intro"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var res LoginResult
	if err := c.post(ctx, "/login", creds, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

// Profile fetches the current user's profile.
func (c *Client) Profile(ctx context.Context) (UserProfile, error) {
	var profile UserProfile
	if err := c.get(ctx, "/profile", nil, &profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}
