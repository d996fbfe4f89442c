package web

import (
	"fmt"
	"io/fs"
	"net/http"

	"go.uber.org/fx"

	"github.com/orgball2608/newsportal/internal/account"
	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/internal/rails"
	"github.com/orgball2608/newsportal/internal/story"
	"github.com/orgball2608/newsportal/pkg/config"
	"github.com/orgball2608/newsportal/pkg/logger"
	"github.com/orgball2608/newsportal/pkg/ratelimit"
)

type Opts struct {
	fx.In

	Config   *config.Config
	Logger   logger.Logger
	Content  content.Client
	Rails    *rails.Service
	Accounts *account.Service
	Registry *story.Registry
	Resolver media.Resolver
	Renderer *media.Renderer
	Limiter  ratelimit.Limiter
}

// Server renders the portal pages and drives story playback sessions.
type Server struct {
	cfg       *config.Config
	logger    logger.Logger
	content   content.Client
	rails     *rails.Service
	accounts  *account.Service
	registry  *story.Registry
	resolver  media.Resolver
	renderer  *media.Renderer
	limiter   ratelimit.Limiter
	templates *templates
	mux       *http.ServeMux
	handler   http.Handler
}

func New(opts Opts) (*Server, error) {
	s := &Server{
		cfg:      opts.Config,
		logger:   opts.Logger.WithComponent("Web"),
		content:  opts.Content,
		rails:    opts.Rails,
		accounts: opts.Accounts,
		registry: opts.Registry,
		resolver: opts.Resolver,
		renderer: opts.Renderer,
		limiter:  opts.Limiter,
		mux:      http.NewServeMux(),
	}

	tmpl, err := parseTemplates(s.funcs())
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = tmpl

	if err := s.routes(); err != nil {
		return nil, err
	}
	s.handler = withRecover(s.logger, withLogging(s.logger, withSecurityHeaders(withCompression(s.mux))))
	return s, nil
}

func (s *Server) routes() error {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /news/{slug}", s.handlePost)
	s.mux.HandleFunc("GET /category/{slug}", s.handleCategory)

	s.mux.HandleFunc("GET /signin", s.handleSignInForm)
	s.mux.HandleFunc("POST /signin", s.limited(s.handleSignIn))
	s.mux.HandleFunc("POST /signout", s.handleSignOut)
	s.mux.Handle("GET /register", http.RedirectHandler("/register/step-one", http.StatusMovedPermanently))
	s.mux.HandleFunc("GET /register/step-one", s.handleRegisterForm)
	s.mux.HandleFunc("POST /register/step-one", s.limited(s.handleRegister))
	s.mux.HandleFunc("GET /register/complete-profile", s.handleProfileForm)
	s.mux.HandleFunc("POST /register/complete-profile", s.limited(s.handleProfile))
	s.mux.HandleFunc("GET /my-news", s.handleMyNews)

	s.mux.HandleFunc("POST /stories/{id}/session", s.handleStoryOpen)
	s.mux.HandleFunc("GET /stories/sessions/{sid}", s.handleStoryState)
	s.mux.HandleFunc("GET /stories/sessions/{sid}/events", s.handleStoryEvents)
	s.mux.HandleFunc("POST /stories/sessions/{sid}/{action}", s.handleStoryAction)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to access embedded assets: %w", err)
	}
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	return nil
}

// Handler is the mux wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
