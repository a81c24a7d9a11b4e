package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/padwell/internal/padel"
	internalslack "github.com/mauv0809/padwell/internal/slack"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/slack-go/slack"
)

const recentMatchesInSlack = 5

// playerSlug is the URL identity of a player: the name without ". " and lower-cased,
// so "J. Kowalski" becomes "jkowalski".
func playerSlug(name string) string {
	return strings.ToLower(strings.Replace(name, ". ", "", 1))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondSourceError maps a failure to load matches to 503, anything else to 500.
func respondSourceError(w http.ResponseWriter, err error) {
	if errors.Is(err, standings.ErrSourceUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "match data is unavailable")
		return
	}
	log.Error("Unexpected error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	respondJSON(w, http.StatusOK, msg)
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Standings.Matches(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, padel.MatchData{Matches: matches})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Standings.Matches(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string][]string{"players": padel.PlayerNames(matches)})
	}
}

func (s *Server) ResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Standings.Matches(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string][]standings.MatchDay{"days": standings.GroupByDate(matches)})
	}
}

func (s *Server) PlayerProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		matches, err := s.Standings.Matches(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}

		name := ""
		for _, candidate := range padel.PlayerNames(matches) {
			if playerSlug(candidate) == strings.ToLower(id) {
				name = candidate
				break
			}
		}
		if name == "" {
			respondError(w, http.StatusNotFound, fmt.Sprintf("player %q not found", id))
			return
		}

		profile, err := standings.PlayerProfile(matches, name)
		if errors.Is(err, standings.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("player %q has no valid matches", id))
			return
		}
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Standings.Standings(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

func (s *Server) PlayerStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Standings.Standings(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"players":          report.Players,
			"historyAvailable": report.HistoryAvailable,
			"updatedAt":        report.UpdatedAt,
		})
	}
}

func (s *Server) TeamStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Standings.Standings(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"teams": report.Teams})
	}
}

// LeaderboardCommandHandler answers the /leaderboard slash command. The text "teams"
// switches to the team leaderboard.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		report, err := s.Standings.Standings(r.Context())
		if err != nil {
			log.Error("Failed to compute standings for Slack", "error", err)
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			return
		}

		if strings.EqualFold(strings.TrimSpace(r.FormValue("text")), "teams") {
			respondWithSlackMsg(w, internalslack.FormatTeamLeaderboard(report.Teams, internalslack.DefaultLeaderboardSize))
			return
		}
		respondWithSlackMsg(w, internalslack.FormatLeaderboard(report, internalslack.DefaultLeaderboardSize))
	}
}

func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		playerName := strings.Join(strings.Fields(r.FormValue("text")), " ")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", playerName)
		matches, err := s.Standings.Matches(r.Context())
		if err != nil {
			log.Error("Failed to load matches for Slack", "error", err)
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			return
		}

		profile, err := standings.PlayerProfile(matches, playerName)
		if err != nil {
			log.Warn("Could not find player stats", "player", playerName, "error", err)
			respondWithSlackMsg(w, internalslack.FormatPlayerNotFound(playerName))
			return
		}
		respondWithSlackMsg(w, internalslack.FormatPlayerStats(profile, recentMatchesInSlack))
	}
}

// PublishLeaderboardHandler posts the current leaderboard to the configured channel.
func (s *Server) PublishLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Slack.Configured() {
			respondError(w, http.StatusNotImplemented, "slack publishing is not configured")
			return
		}
		report, err := s.Standings.Standings(r.Context())
		if err != nil {
			respondSourceError(w, err)
			return
		}

		msg := internalslack.FormatLeaderboard(report, internalslack.DefaultLeaderboardSize)
		channel, ts, err := s.Slack.SendMessage(r.Context(), msg, isDryRunFromContext(r))
		if err != nil {
			respondError(w, http.StatusBadGateway, "failed to post to slack")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"channel": channel, "ts": ts})
	}
}

// ImportHandler pulls matches played in the last ?days=N days (default 1) from
// Playtomic into the match store.
func (s *Server) ImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Importer == nil {
			respondError(w, http.StatusNotImplemented, "match import is not configured")
			return
		}

		days := 1
		if daysStr := r.URL.Query().Get("days"); daysStr != "" {
			parsedDays, err := strconv.Atoi(daysStr)
			if err != nil || parsedDays <= 0 {
				respondError(w, http.StatusBadRequest, "days must be a positive integer")
				return
			}
			days = parsedDays
		}

		since := time.Now().AddDate(0, 0, -days)
		log.Info("Importing matches from Playtomic", "since", since.Format("2006-01-02"))
		result, err := s.Importer.Run(r.Context(), since)
		if err != nil {
			log.Error("Match import failed", "error", err)
			respondError(w, http.StatusBadGateway, "match import failed")
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// ClearStoreHandler removes one match (?matchID=) or every match from the store.
func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Store == nil {
			respondError(w, http.StatusNotImplemented, "match store is not configured")
			return
		}
		if isDryRunFromContext(r) {
			log.Info("Dry run mode: store not cleared.")
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Dry run, nothing cleared.")
			return
		}

		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			if err := s.Store.ClearMatch(r.Context(), matchID); err != nil {
				log.Error("Failed to clear match", "matchID", matchID, "error", err)
				respondError(w, http.StatusInternalServerError, "failed to clear match")
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			return
		}

		log.Info("Received request to clear entire store")
		if err := s.Store.Clear(r.Context()); err != nil {
			log.Error("Failed to clear store", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to clear store")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}
