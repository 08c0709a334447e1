package server

import "net/http"

// TokenHeader carries the bearer token issued at login.
const TokenHeader = "x-rbac-token"

const (
	RouteApplicationAdd     = "/wolf/application/add"
	RouteApplicationUpdate  = "/wolf/application/update"
	RouteApplicationDelete  = "/wolf/application/delete"
	RouteApplicationGet     = "/wolf/application/get"
	RouteApplicationSecret  = "/wolf/application/secret"
	RouteApplicationList    = "/wolf/application/list"
	RouteApplicationListAll = "/wolf/application/list_all"
	RouteApplicationDiagram = "/wolf/application/diagram"

	RouteUserAdd    = "/wolf/user/add"
	RouteUserDelete = "/wolf/user/delete"
	RouteUserLogin  = "/wolf/user/login"
)

func (s *Server) initRoutes() {
	mw := []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.IdentityMiddleware,
	}

	// APPLICATION
	s.RegisterRouteFunc("POST "+RouteApplicationAdd, ChainMiddleware(s.ApplicationAddHandler(), mw...))
	s.RegisterRouteFunc("POST "+RouteApplicationUpdate, ChainMiddleware(s.ApplicationUpdateHandler(), mw...))
	s.RegisterRouteFunc("POST "+RouteApplicationDelete, ChainMiddleware(s.ApplicationDeleteHandler(), mw...))
	s.RegisterRouteFunc("GET "+RouteApplicationGet, ChainMiddleware(s.ApplicationGetHandler(), mw...))
	s.RegisterRouteFunc("GET "+RouteApplicationSecret, ChainMiddleware(s.ApplicationSecretHandler(), mw...))
	s.RegisterRouteFunc("GET "+RouteApplicationList, ChainMiddleware(s.ApplicationListHandler(), mw...))
	s.RegisterRouteFunc("GET "+RouteApplicationListAll, ChainMiddleware(s.ApplicationListAllHandler(), mw...))
	s.RegisterRouteFunc("GET "+RouteApplicationDiagram, ChainMiddleware(s.ApplicationDiagramHandler(), mw...))

	// USER
	s.RegisterRouteFunc("POST "+RouteUserAdd, ChainMiddleware(s.UserAddHandler(), mw...))
	s.RegisterRouteFunc("POST "+RouteUserDelete, ChainMiddleware(s.UserDeleteHandler(), mw...))
	s.RegisterRouteFunc("POST "+RouteUserLogin, ChainMiddleware(s.UserLoginHandler(), s.LoggingMiddleware))
}
