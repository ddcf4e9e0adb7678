package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/pkg/httpx"
	"github.com/credgate/credgate/pkg/jwtx"
	"github.com/credgate/credgate/pkg/slogx"

	_ "github.com/credgate/credgate/api/gate" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AppService       *service.AppService
	AuthorityService *service.AuthorityService
	InviteService    *service.InviteService
	TransferService  *service.TransferService
	QueryService     *service.QueryService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerApps()
	r.registerInvites()
	r.registerTokens()
	r.registerSettings()
	r.registerAuthority()
	r.registerQueries()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Credgate Membership Service API
//	@version		0.1.0
//	@description	Invitation-gated membership service with transferable credential tokens.
//	@description
//	@description				Each app (tenant) has an owner, an admin set, registered members and per-member
//	@description				invite budgets. Members spend invites to mint invitation tokens; accepting an
//	@description				invitation burns it and mints a membership token.
//
//	@contact.name				Credgate Team
//	@contact.url				https://github.com/credgate/credgate
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

func (r *Router) registerApps() {
	h := &AppsHandler{AppService: r.AppService}

	// POST /v1/apps - strict rate limit by identity (app creation is rare)
	r.Mux.Handle("POST /v1/apps",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.StrictLimit),
		),
	)

	// GET /v1/apps/{app} - public read, high limit
	r.Mux.Handle("GET /v1/apps/{app}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	// POST /invites - moderate rate limit by identity
	r.Mux.Handle("POST /v1/apps/{app}/invites",
		httpx.Chain(http.HandlerFunc(h.HandleInvite),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)

	// POST /invites/batch - strict rate limit (mints many tokens at once)
	r.Mux.Handle("POST /v1/apps/{app}/invites/batch",
		httpx.Chain(http.HandlerFunc(h.HandleBatch),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.StrictLimit),
		),
	)

	// POST /tokens/{id}/accept - moderate rate limit by identity
	r.Mux.Handle("POST /v1/tokens/{id}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTokens() {
	h := &TokensHandler{
		AppService:      r.AppService,
		TransferService: r.TransferService,
		QueryService:    r.QueryService,
	}

	// POST /tokens/{id}/transfer - moderate rate limit by identity
	r.Mux.Handle("POST /v1/tokens/{id}/transfer",
		httpx.Chain(http.HandlerFunc(h.HandleTransfer),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)

	// POST /tokens/{id}/lock - moderate rate limit by identity (admin operation)
	r.Mux.Handle("POST /v1/tokens/{id}/lock",
		httpx.Chain(http.HandlerFunc(h.HandleLock),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)

	// Public token reads - high limits
	r.Mux.Handle("GET /v1/tokens/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/tokens/{id}/uri",
		httpx.Chain(http.HandlerFunc(h.HandleURI),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{AppService: r.AppService}

	// Admin-gated policy knobs - moderate rate limit by identity
	secured := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/apps/{app}/transferrable", secured(h.HandleSetTransferrable))
	r.Mux.Handle("POST /v1/apps/{app}/invites-per-user", secured(h.HandleSetInvitesPerUser))
	r.Mux.Handle("POST /v1/apps/{app}/grants", secured(h.HandleGrantInvites))
	r.Mux.Handle("POST /v1/apps/{app}/base-uri", secured(h.HandleSetBaseURI))
}

func (r *Router) registerAuthority() {
	h := &AuthorityHandler{AuthorityService: r.AuthorityService}

	// Owner-only operations - strict rate limit by identity
	secured := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.StrictLimit),
		)
	}

	r.Mux.Handle("POST /v1/apps/{app}/ownership", secured(h.HandleTransferOwnership))
	r.Mux.Handle("POST /v1/apps/{app}/admins", secured(h.HandleAddAdmin))
	r.Mux.Handle("DELETE /v1/apps/{app}/admins/{identity}", secured(h.HandleRemoveAdmin))
}

func (r *Router) registerQueries() {
	h := &QueriesHandler{QueryService: r.QueryService}

	// Unauthenticated reads - high limits by IP
	public := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.RateLimitByIP(httpx.PublicLimit),
		)
	}

	r.Mux.Handle("GET /v1/apps/{app}/access/{identity}", public(h.HandleAccess))
	r.Mux.Handle("GET /v1/apps/{app}/invitations/{identity}", public(h.HandleInvitations))
	r.Mux.Handle("GET /v1/apps/{app}/invites-left/{identity}", public(h.HandleInvitesLeft))
	r.Mux.Handle("GET /v1/apps/{app}/events", public(h.HandleEvents))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
