// internal/httpserver/routes_daily.go
//
// The "Daily Challenge": every player gets the same secret for a UTC date,
// chosen by daily.Picker from the answer list. A daily round is an ordinary
// round afterwards, played through /game/guess.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// mountDaily registers /daily routes on r.
func (s *Server) mountDaily(r chi.Router) {
	r.Post("/daily/new", s.handleDailyNew)
}

// handleDailyNew starts a round on today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, secret, ok := s.picker.Pick(s.dict.Answers())
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no_answers")
		return
	}
	g := s.newGame(r, secret)
	if err := s.games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save daily game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:     g.ID,
		Length:     g.Length,
		MaxGuesses: g.MaxGuesses,
		Remaining:  g.Remaining(),
		Date:       date,
	})
}
