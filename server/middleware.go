package server

import (
	"context"
	"net/http"
	"time"

	"github.com/eiasy/wolf/authz"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyIdentity stores the caller's resolved identity.
const ContextKeyIdentity ContextKey = "identity"

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// IdentityMiddleware resolves the bearer header into an identity. A missing
// header proceeds as anonymous (downstream policy denies as appropriate); a
// present but unresolvable token fails the request immediately.
func (s *Server) IdentityMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := authz.Anonymous()

		if token := r.Header.Get(TokenHeader); token != "" {
			resolved, err := s.sessions.Resolve(token)
			if err != nil {
				s.writeError(w, err)
				return
			}
			identity = resolved
		}

		ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
		next(w, r.WithContext(ctx))
	}
}

// LoggingMiddleware logs each request in development environments.
func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.env != "DEV" {
			next(w, r)
			return
		}
		start := time.Now()
		next(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// callerIdentity pulls the resolved identity out of the request context.
func callerIdentity(r *http.Request) authz.Identity {
	if identity, ok := r.Context().Value(ContextKeyIdentity).(authz.Identity); ok {
		return identity
	}
	return authz.Anonymous()
}
