// Package session owns the current authentication state: the session token
// and the user profile. All mutation goes through the store's entry points;
// nothing else writes the persisted token except the API client's expiry
// interception.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/geek-project/geekctl/internal/api"
)

// Persister reads, writes, and removes the durable token.
type Persister interface {
	Load() (string, error)
	Save(tok string) error
	Clear() error
}

// AuthAPI is the slice of the API client the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (api.LoginResult, error)
	Profile(ctx context.Context) (api.UserProfile, error)
}

// Store holds the token and user profile for the running process. The
// persisted token is read once at construction.
type Store struct {
	mu       sync.RWMutex
	token    string
	userInfo api.UserProfile

	persist Persister
	client  AuthAPI
}

// NewStore builds a session store seeded from the persisted token.
func NewStore(persist Persister, client AuthAPI) (*Store, error) {
	tok, err := persist.Load()
	if err != nil {
		return nil, fmt.Errorf("loading persisted token: %w", err)
	}
	return &Store{token: tok, persist: persist, client: client}, nil
}

// Token returns the current session token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserInfo returns the last fetched profile.
func (s *Store) UserInfo() api.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userInfo
}

// SetToken replaces the in-memory token and persists it.
func (s *Store) SetToken(tok string) error {
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
	if err := s.persist.Save(tok); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	return nil
}

// SetUserInfo replaces the profile wholesale.
func (s *Store) SetUserInfo(info api.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userInfo = info
}

// Clear resets the session: empty token, zero profile, persisted token
// removed.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.userInfo = api.UserProfile{}
	s.mu.Unlock()
	if err := s.persist.Clear(); err != nil {
		return fmt.Errorf("removing persisted token: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and commits it. Failures propagate
// to the caller; no retry.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	res, err := s.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	return s.SetToken(res.Token)
}

// FetchProfile fetches the profile and commits it. Concurrent calls are
// independent; the last response to resolve wins, which is fine because
// readers only ever see a whole profile.
func (s *Store) FetchProfile(ctx context.Context) (api.UserProfile, error) {
	info, err := s.client.Profile(ctx)
	if err != nil {
		return api.UserProfile{}, err
	}
	s.SetUserInfo(info)
	return info, nil
}
