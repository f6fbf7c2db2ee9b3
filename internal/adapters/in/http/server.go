// Package http exposes the command and query handlers as a JSON API.
package http

import (
	"net/http"

	"proteseflow/api"
	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterDentist    commands.RegisterDentistCommandHandler
	Authenticate       commands.AuthenticateCommandHandler
	UpdateProfile      commands.UpdateProfileCommandHandler
	ChangePassword     commands.ChangePasswordCommandHandler
	CreateUser         commands.CreateUserCommandHandler
	EditUser           commands.EditUserCommandHandler
	ChangeAccountState commands.ChangeAccountStateCommandHandler
	PurgeUser          commands.PurgeUserCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	EditOrder          commands.EditOrderCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler

	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetDashboard     queries.GetDashboardQueryHandler
	ListUsers        queries.ListUsersQueryHandler
	GetUser          queries.GetUserQueryHandler
	GetAttachmentURL queries.GetAttachmentURLQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface by translating HTTP requests into
// commands and queries.
type Server struct {
	h       Handlers
	auth    *Authenticator
	tokens  Tokens
	revoked RevocationList
	log     zerolog.Logger
}

func NewServer(h Handlers, auth *Authenticator, tokens Tokens, revoked RevocationList, log zerolog.Logger) *Server {
	return &Server{
		h:       h,
		auth:    auth,
		tokens:  tokens,
		revoked: revoked,
		log:     log,
	}
}

// RegisterRoutes mounts the generated API routes and the documentation on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	servers.RegisterHandlers(securedRouter{EchoRouter: e, auth: s.auth.Middleware}, s)
}

// publicPaths are the operations served without a session.
var publicPaths = map[string]bool{
	"/api/v1/auth/register": true,
	"/api/v1/auth/login":    true,
}

// securedRouter puts the authenticator in front of every route except publicPaths.
type securedRouter struct {
	servers.EchoRouter
	auth echo.MiddlewareFunc
}

func (r securedRouter) guard(path string, m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if publicPaths[path] {
		return m
	}
	return append([]echo.MiddlewareFunc{r.auth}, m...)
}

func (r securedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.GET(path, h, r.guard(path, m)...)
}

func (r securedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.POST(path, h, r.guard(path, m)...)
}

func (r securedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.PUT(path, h, r.guard(path, m)...)
}

func (r securedRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.PATCH(path, h, r.guard(path, m)...)
}

func (r securedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.EchoRouter.DELETE(path, h, r.guard(path, m)...)
}
