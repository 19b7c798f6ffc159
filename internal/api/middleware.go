package api

import (
	"net/http"

	"github.com/google/uuid"
)

// LoginRoute is the view users are sent to when the session ends.
const LoginRoute = "/login"

// RoundTripFunc executes a single HTTP request.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// Middleware wraps a RoundTripFunc with behavior applied to every request.
// Middleware are applied as an explicit ordered list around the transport
// call, so each one can be tested in isolation.
type Middleware func(next RoundTripFunc) RoundTripFunc

// TokenSource provides the current session token before each request.
type TokenSource interface {
	Load() (string, error)
}

// TokenStore extends TokenSource with the ability to drop the credential.
type TokenStore interface {
	TokenSource
	Clear() error
}

// Navigator receives navigation requests from the interception layer.
// To records a route change; Reload discards all in-memory session state so
// no stale authenticated view survives.
type Navigator interface {
	To(route string)
	Reload()
}

// Chain composes middleware around a transport. The first middleware sees
// the request first and the response last.
func Chain(transport RoundTripFunc, mw ...Middleware) RoundTripFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		transport = mw[i](transport)
	}
	return transport
}

// RequestID attaches a correlation id to every outbound request.
func RequestID() Middleware {
	return func(next RoundTripFunc) RoundTripFunc {
		return func(req *http.Request) (*http.Response, error) {
			req.Header.Set("X-Request-ID", uuid.NewString())
			return next(req)
		}
	}
}

// BearerAuth reads the current token before every request and, when one is
// present, attaches it as a bearer credential. With no token the request is
// passed through untouched.
func BearerAuth(tokens TokenSource) Middleware {
	return func(next RoundTripFunc) RoundTripFunc {
		return func(req *http.Request) (*http.Response, error) {
			tok, err := tokens.Load()
			if err != nil {
				return nil, err
			}
			if tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			return next(req)
		}
	}
}

// SessionExpiry inspects every response for an expired session. On 401 it
// clears the persisted token, records a navigation to the login view, and
// resets in-memory state through the navigator. The response still flows
// back to the caller so call-site error handling runs as well.
func SessionExpiry(tokens TokenStore, nav Navigator) Middleware {
	return func(next RoundTripFunc) RoundTripFunc {
		return func(req *http.Request) (*http.Response, error) {
			resp, err := next(req)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode == http.StatusUnauthorized {
				// Best effort: the caller still sees the 401 even if
				// clearing the token fails.
				_ = tokens.Clear()
				if nav != nil {
					nav.To(LoginRoute)
					nav.Reload()
				}
			}
			return resp, nil
		}
	}
}
