package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskdeck/internal/tasks/service"
	"github.com/aussiebroadwan/taskdeck/internal/tasks/store"
	"github.com/aussiebroadwan/taskdeck/pkg/httpx"
	"github.com/aussiebroadwan/taskdeck/pkg/slogx"

	_ "github.com/aussiebroadwan/taskdeck/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	TokenService *service.TokenService
	AuthService  *service.AuthService
	TaskService  *service.TaskService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskDeck API
//	@version		0.1.0
//	@description	Task management backend: JWT-authenticated auth endpoints plus
//	@description	per-user task CRUD with pagination, filtering, and search.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskdeck
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /auth/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /auth/login", &LoginHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /auth/refresh", &RefreshHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /auth/logout", &LogoutHandler{AuthService: r.AuthService})
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// Every task route runs behind the access guard; handlers read the
	// verified user id from the request context.
	authn := httpx.AuthnMiddleware(r.TokenService)

	r.Mux.Handle("GET /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /tasks", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn))
	r.Mux.Handle("PATCH /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
	r.Mux.Handle("PATCH /tasks/{id}/toggle", httpx.Chain(http.HandlerFunc(h.HandleToggle), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
