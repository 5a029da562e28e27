package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// ------------------------------ ENGINE -------------------------------------

type scoreReq struct {
	Secret string `json:"secret"`
	Guess  string `json:"guess"`
}
type scoreRes struct {
	Mask   wordle.Mask `json:"mask"`
	Glyphs string      `json:"glyphs"`
	Solved bool        `json:"solved"`
}

// handleScore scores one guess against a caller-supplied secret.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	m, err := wordle.Compute(strings.ToLower(req.Secret), strings.ToLower(req.Guess))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreRes{Mask: m, Glyphs: m.String(), Solved: m.Solved()})
}

// filterReq carries one piece of evidence. Words defaults to the answer list.
type filterReq struct {
	Guess string      `json:"guess"`
	Mask  wordle.Mask `json:"mask"`
	Words []string    `json:"words"`
}
type filterRes struct {
	Candidates []string `json:"candidates"`
	Count      int      `json:"count"`
}

// handleFilter narrows a dictionary by one guess/mask pair.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	dict := s.dict.Answers()
	if req.Words != nil {
		// Normalised like the guess.
		dict = make([]string, len(req.Words))
		for i, w := range req.Words {
			dict[i] = strings.ToLower(strings.TrimSpace(w))
		}
	}
	out, err := wordle.FilterParallel(r.Context(), strings.ToLower(req.Guess), req.Mask, dict, s.cfg.Game.FilterWorkers)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterRes{Candidates: out, Count: len(out)})
}

// ------------------------------- GAME --------------------------------------

// mountGame registers /game routes on r.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/{id}", s.handleGetGame)
	r.Get("/game/{id}/candidates", s.handleCandidates)
}

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID     string `json:"gameId"`
	Length     int    `json:"length"`
	MaxGuesses int    `json:"maxGuesses"`
	Remaining  int    `json:"remaining"`
	Date       string `json:"date,omitempty"`
}

// newGame builds a round over the answer list for the requesting player.
func (s *Server) newGame(r *http.Request, secret string) *game.Game {
	opts := []game.Option{
		game.WithMaxGuesses(s.cfg.Game.MaxGuesses),
		game.WithAllowed(s.dict.IsAllowed),
		game.WithCandidates(s.dict.Answers()),
		game.WithWorkers(s.cfg.Game.FilterWorkers),
	}
	if me := currentPlayer(r); me != nil {
		opts = append(opts, game.WithOwner(me.ID))
	}
	return game.New(secret, opts...)
}

// handleNewGame creates a round with a random (or fixed) answer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	secret := strings.ToLower(strings.TrimSpace(req.Answer))
	if secret == "" {
		secret = s.dict.RandomAnswer()
	} else if !words.Valid(secret) {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	g := s.newGame(r, secret)
	if err := s.games.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Bool("owned", g.Owner != "").Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Length: g.Length, MaxGuesses: g.MaxGuesses, Remaining: g.Remaining()})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Guess     wordle.Guess      `json:"guess"`
	State     game.State        `json:"state"`
	Guesses   int               `json:"guesses"`
	Remaining int               `json:"remaining"`
	Answer    string            `json:"answer,omitempty"` // revealed on loss
	Score     *game.ScoreRecord `json:"score,omitempty"`  // owner's record once the round ends
}

// handleGuess applies a guess and, when the round ends, updates the owner's record.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, ok := s.loadOwned(w, r, req.GameID)
	if !ok {
		return
	}
	guess, state, err := g.ApplyGuess(r.Context(), req.Guess)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.games.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	res := guessRes{Guess: guess, State: state, Guesses: len(g.Guesses()), Remaining: g.Remaining()}
	if state == game.StateLost {
		res.Answer = g.Secret
	}
	if state.Done() && g.Owner != "" && s.players != nil {
		rec, err := s.players.RecordResult(r.Context(), g.Owner, state == game.StateWon)
		if err != nil {
			log.Warn().Err(err).Str("player", g.Owner).Msg("record result")
		} else {
			res.Score = &rec
		}
	}
	if state.Done() {
		log.Info().Str("gameId", g.ID).Str("state", string(state)).Int("guesses", res.Guesses).Msg("game finished")
	}
	writeJSON(w, http.StatusOK, res)
}

type gameView struct {
	GameID     string         `json:"gameId"`
	State      game.State     `json:"state"`
	Length     int            `json:"length"`
	MaxGuesses int            `json:"maxGuesses"`
	Guesses    []wordle.Guess `json:"guesses"`
	Remaining  int            `json:"remaining"`
}

// handleGetGame returns the round's history without revealing the secret.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadOwned(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, gameView{
		GameID:     g.ID,
		State:      g.State(),
		Length:     g.Length,
		MaxGuesses: g.MaxGuesses,
		Guesses:    g.Guesses(),
		Remaining:  g.Remaining(),
	})
}

// handleCandidates lists the answers still consistent with every guess.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadOwned(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	c := g.Candidates()
	writeJSON(w, http.StatusOK, filterRes{Candidates: c, Count: len(c)})
}

// loadOwned fetches a round; rounds owned by a player are private to them.
func (s *Server) loadOwned(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	g, err := s.games.Get(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return nil, false
	}
	if g.Owner != "" {
		if me := currentPlayer(r); me == nil || me.ID != g.Owner {
			writeError(w, http.StatusForbidden, "forbidden")
			return nil, false
		}
	}
	return g, true
}
