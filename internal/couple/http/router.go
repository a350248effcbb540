package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/internal/couple/store"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/jwtx"
	"github.com/secondate/secondate/pkg/slogx"

	_ "github.com/secondate/secondate/api/couple" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Turkish user-facing messages for the authentication middleware.
var sessionMessages = httpx.AuthnMessages{
	Missing: "Oturum bulunamadı",
	Invalid: "Geçersiz oturum",
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      jwtx.Verifier
	sessionTTL    time.Duration
	secureCookies bool
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	AnswersService *service.AnswersService
	PairingService *service.PairingService
}

func NewRouter(
	verifier jwtx.Verifier,
	sessionTTL time.Duration,
	secureCookies bool,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAnswers()
	r.registerCouple()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Secondate Couple API
//	@version		0.1.0
//	@description	Backend pairing two people around a shared questionnaire result.
//	@description	One person opens an invite, a partner completes it anonymously or by
//	@description	linking an account, and the combined result becomes readable to anyone
//	@description	holding the invite key.
//
//	@contact.name	Secondate Team
//	@contact.url	https://github.com/secondate/secondate
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:4000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						jwt
//	@description				Session JWT issued by signup and login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, sessionMessages)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:   r.AuthService,
		SessionTTL:    r.sessionTTL,
		SecureCookies: r.secureCookies,
	}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAnswers() {
	h := &AnswersHandler{AnswersService: r.AnswersService}

	r.Mux.Handle("POST /api/answers/save-answers",
		httpx.Chain(http.HandlerFunc(h.HandleSave),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/answers/get-answers",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCouple() {
	createHandler := &InviteCreateHandler{PairingService: r.PairingService}
	getHandler := &InviteGetHandler{PairingService: r.PairingService}
	completeHandler := &InviteCompleteHandler{PairingService: r.PairingService}
	linkHandler := &InviteLinkHandler{PairingService: r.PairingService}
	resultHandler := &InviteResultHandler{PairingService: r.PairingService}
	listHandler := &InviteListHandler{PairingService: r.PairingService}

	r.Mux.Handle("POST /api/couple/invite",
		httpx.Chain(createHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/couple/link-account",
		httpx.Chain(linkHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/couple/myInvites",
		httpx.Chain(listHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Public endpoints: the invite key is the only credential.
	// Completion writes as an anonymous visitor, so it is limited strictly
	// by IP.
	r.Mux.Handle("POST /api/couple/{inviteKey}/complete",
		httpx.Chain(completeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /api/couple/{inviteKey}/result",
		httpx.Chain(resultHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/couple/{inviteKey}",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
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
