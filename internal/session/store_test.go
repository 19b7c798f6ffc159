package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geek-project/geekctl/internal/api"
)

// memPersister is an in-memory Persister for store tests.
type memPersister struct {
	token string
	saves int
}

func (m *memPersister) Load() (string, error) { return m.token, nil }

func (m *memPersister) Save(tok string) error {
	m.token = tok
	m.saves++
	return nil
}

func (m *memPersister) Clear() error {
	m.token = ""
	return nil
}

// fakeAuthAPI stubs the login and profile endpoints.
type fakeAuthAPI struct {
	loginResult api.LoginResult
	loginErr    error
	profile     api.UserProfile
	profileErr  error
	loginCreds  api.Credentials
}

func (f *fakeAuthAPI) Login(_ context.Context, creds api.Credentials) (api.LoginResult, error) {
	f.loginCreds = creds
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) Profile(context.Context) (api.UserProfile, error) {
	return f.profile, f.profileErr
}

func TestNewStore_SeedsFromPersistedToken(t *testing.T) {
	s, err := NewStore(&memPersister{token: "persisted"}, &fakeAuthAPI{})
	require.NoError(t, err)
	assert.Equal(t, "persisted", s.Token())
}

func TestSetToken_Persists(t *testing.T) {
	persist := &memPersister{}
	s, err := NewStore(persist, &fakeAuthAPI{})
	require.NoError(t, err)

	require.NoError(t, s.SetToken("tok123"))

	assert.Equal(t, "tok123", s.Token())
	assert.Equal(t, "tok123", persist.token)
}

func TestLogin_CommitsToken(t *testing.T) {
	persist := &memPersister{}
	client := &fakeAuthAPI{loginResult: api.LoginResult{Token: "fresh"}}
	s, err := NewStore(persist, client)
	require.NoError(t, err)

	creds := api.Credentials{Mobile: "13800000002", Code: "246810"}
	require.NoError(t, s.Login(context.Background(), creds))

	assert.Equal(t, creds, client.loginCreds)
	assert.Equal(t, "fresh", s.Token())
	assert.Equal(t, "fresh", persist.token)
}

func TestLogin_FailurePropagates(t *testing.T) {
	persist := &memPersister{}
	client := &fakeAuthAPI{loginErr: errors.New("wrong code")}
	s, err := NewStore(persist, client)
	require.NoError(t, err)

	err = s.Login(context.Background(), api.Credentials{})

	require.Error(t, err)
	assert.Empty(t, s.Token(), "failed login must not commit a token")
	assert.Zero(t, persist.saves)
}

func TestFetchProfile_CommitsWholesale(t *testing.T) {
	client := &fakeAuthAPI{profile: api.UserProfile{ID: "1", Name: "geek"}}
	s, err := NewStore(&memPersister{token: "tok"}, client)
	require.NoError(t, err)
	s.SetUserInfo(api.UserProfile{ID: "0", Name: "stale", Intro: "old intro"})

	got, err := s.FetchProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "geek", got.Name)
	assert.Equal(t, client.profile, s.UserInfo(), "profile is replaced wholesale")
	assert.Empty(t, s.UserInfo().Intro)
}

func TestFetchProfile_FailurePropagates(t *testing.T) {
	client := &fakeAuthAPI{profileErr: errors.New("boom")}
	s, err := NewStore(&memPersister{token: "tok"}, client)
	require.NoError(t, err)

	_, err = s.FetchProfile(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.UserInfo().Name)
}

func TestClear_ResetsEverything(t *testing.T) {
	persist := &memPersister{token: "tok"}
	s, err := NewStore(persist, &fakeAuthAPI{})
	require.NoError(t, err)
	s.SetUserInfo(api.UserProfile{Name: "geek"})

	require.NoError(t, s.Clear())

	assert.Empty(t, s.Token())
	assert.Equal(t, api.UserProfile{}, s.UserInfo())
	assert.Empty(t, persist.token)
}

func TestInspect_JWTClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"iat": iat.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s, err := NewStore(&memPersister{token: signed}, &fakeAuthAPI{})
	require.NoError(t, err)

	info := s.Inspect()
	assert.True(t, info.HasExpiry())
	assert.False(t, info.Expired())
	assert.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
	assert.Equal(t, iat.Unix(), info.IssuedAt.Unix())
}

func TestInspect_OpaqueToken(t *testing.T) {
	s, err := NewStore(&memPersister{token: "not-a-jwt"}, &fakeAuthAPI{})
	require.NoError(t, err)

	info := s.Inspect()
	assert.False(t, info.HasExpiry(), "opaque tokens carry no readable claims")
	assert.False(t, info.Expired())
}
