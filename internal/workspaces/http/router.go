package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/zunohq/zuno/api/workspaces" // Swagger docs
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.TokenVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	WorkspaceService    *service.WorkspaceService
	InviteService       *service.InviteService
	SubscriptionService *service.SubscriptionService
}

func NewRouter(
	verifier httpx.TokenVerifier,
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
	r.registerAuth()
	r.registerInvites()
	r.registerWorkspaces()
	r.registerSubscription()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Zuno Workspaces API
//	@version		0.1.0
//	@description	Multi-tenant workspace management: registration with email verification,
//	@description	workspaces, team invitations with plan-based seat limits, and role-based access.
//
//	@contact.name				Zuno Team
//	@contact.url				https://github.com/zunohq/zuno
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
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	verifyHandler := &VerifyEmailHandler{AuthService: r.AuthService}
	resendHandler := &ResendVerificationHandler{AuthService: r.AuthService}
	meHandler := &MeHandler{AuthService: r.AuthService}
	refreshHandler := &RefreshTokenHandler{AuthService: r.AuthService}

	// POST /auth/register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/verify-email - moderate rate limit by IP
	r.Mux.Handle("POST /v1/auth/verify-email",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /auth/resend-verification - strict by IP (outbound mail trigger)
	r.Mux.Handle("POST /v1/auth/resend-verification",
		httpx.Chain(resendHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - authenticated, lenient by user
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /auth/refresh-token - authenticated, moderate by user
	r.Mux.Handle("POST /v1/auth/refresh-token",
		httpx.Chain(refreshHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	detailsHandler := &InviteDetailsHandler{InviteService: r.InviteService}
	acceptHandler := &InviteAcceptHandler{InviteService: r.InviteService}
	declineHandler := &InviteDeclineHandler{InviteService: r.InviteService}
	pendingHandler := &PendingInvitesHandler{InviteService: r.InviteService}

	// GET /invites/{token} - public landing page lookup, moderate by IP
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(detailsHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /invites/accept - strict by IP (public signup path)
	r.Mux.Handle("POST /v1/invites/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invites/decline - moderate by IP (public, token+email gated)
	r.Mux.Handle("POST /v1/invites/decline",
		httpx.Chain(declineHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /invites/pending - authenticated, lenient by user
	r.Mux.Handle("GET /v1/invites/pending",
		httpx.Chain(pendingHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerWorkspaces() {
	wsHandler := &WorkspaceHandler{WorkspaceService: r.WorkspaceService}
	membersHandler := &MembersHandler{WorkspaceService: r.WorkspaceService}
	inviteMemberHandler := &InviteMemberHandler{InviteService: r.InviteService}
	sentHandler := &SentInvitesHandler{InviteService: r.InviteService}

	// POST /workspaces - moderate by user (plan-gated creation)
	r.Mux.Handle("POST /v1/workspaces",
		httpx.Chain(http.HandlerFunc(wsHandler.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /workspaces - lenient by user
	r.Mux.Handle("GET /v1/workspaces",
		httpx.Chain(http.HandlerFunc(wsHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /workspaces/default - lenient by user
	r.Mux.Handle("GET /v1/workspaces/default",
		httpx.Chain(http.HandlerFunc(wsHandler.HandleDefault),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /workspaces/{id}/members - lenient by user (member gated in service)
	r.Mux.Handle("GET /v1/workspaces/{id}/members",
		httpx.Chain(membersHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /workspaces/{id}/invites - moderate by user (owner/admin gated)
	r.Mux.Handle("POST /v1/workspaces/{id}/invites",
		httpx.Chain(inviteMemberHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /workspaces/{id}/invites - moderate by user (owner/admin gated)
	r.Mux.Handle("GET /v1/workspaces/{id}/invites",
		httpx.Chain(sentHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSubscription() {
	h := &SubscriptionHandler{SubscriptionService: r.SubscriptionService}

	// GET /subscription - lenient by user
	r.Mux.Handle("GET /v1/subscription",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
