// Package server is the HTTP façade over the RBAC core: it resolves the
// caller's identity from the bearer header, dispatches to the registry and
// accounts services, and renders the response envelope.
package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/eiasy/wolf/accounts"
	"github.com/eiasy/wolf/internal/config"
	"github.com/eiasy/wolf/registry"
	"github.com/eiasy/wolf/sessions"
)

type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	registry *registry.Service
	accounts *accounts.Service
	sessions *sessions.Manager
	log      zerolog.Logger
}

func New(cfg config.Config, registryService *registry.Service, accountsService *accounts.Service, sessionManager *sessions.Manager, logger zerolog.Logger) (*Server, error) {
	if registryService == nil {
		return nil, errors.New("[server.New] registry service is required")
	}
	if accountsService == nil {
		return nil, errors.New("[server.New] accounts service is required")
	}
	if sessionManager == nil {
		return nil, errors.New("[server.New] session manager is required")
	}

	s := &Server{
		env:      cfg.Env,
		mux:      http.NewServeMux(),
		config:   cfg,
		registry: registryService,
		accounts: accountsService,
		sessions: sessionManager,
		log:      logger,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		s.log.Debug().Str("route", route).Msg("registered")
	}
}
