package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/config"
	"github.com/mauv0809/padwell/internal/importer"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/slack"
	"github.com/mauv0809/padwell/internal/standings"
)

// NewServer wires the HTTP routes. store, imp and slackClient may be nil; the routes
// that need them then answer 501.
func NewServer(svc *standings.Service, store club.MatchStore, imp *importer.Importer, slackClient *slack.SlackClient, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Standings:      svc,
		Store:          store,
		Importer:       imp,
		Slack:          slackClient,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Use(middleware.Recoverer)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/players", Chain(s.ListPlayersHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/players/{id}", Chain(s.PlayerProfileHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/results", Chain(s.ResultsHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/standings", Chain(s.StandingsHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/standings/players", Chain(s.PlayerStandingsHandler(), paramsMiddleware).ServeHTTP)
		r.Get("/standings/teams", Chain(s.TeamStandingsHandler(), paramsMiddleware).ServeHTTP)
	})

	verifySlack := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)
	s.Router.Post("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware, verifySlack).ServeHTTP)
	s.Router.Post("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware, verifySlack).ServeHTTP)
	s.Router.Post("/slack/publish", Chain(s.PublishLeaderboardHandler(), paramsMiddleware).ServeHTTP)

	s.Router.Post("/import", Chain(s.ImportHandler(), paramsMiddleware).ServeHTTP)
	s.Router.Post("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware).ServeHTTP)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
