package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/config"
	"github.com/mauv0809/padwell/internal/importer"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/slack"
	"github.com/mauv0809/padwell/internal/standings"
)

type Server struct {
	Standings      *standings.Service
	Store          club.MatchStore
	Importer       *importer.Importer
	Slack          *slack.SlackClient
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
}

type errorResponse struct {
	Error string `json:"error"`
}
