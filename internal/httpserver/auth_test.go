package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

type authRes struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func signup(t *testing.T, s *Server, name string) authRes {
	t.Helper()
	var res authRes
	rec := do(t, s, http.MethodPost, "/auth/signup", "", credentials{Username: name, Password: "correct horse"}, &res)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, res.Token)
	assert.NotEmpty(t, rec.Result().Cookies())
	return res
}

func TestSignupLoginMe(t *testing.T) {
	s := newTestServer(t)
	me := signup(t, s, "robin")

	var e map[string]string
	rec := do(t, s, http.MethodPost, "/auth/signup", "", credentials{Username: "ROBIN", Password: "whatever1"}, &e)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/signup", "", credentials{Username: "x", Password: "whatever1"}, &e)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/login", "", credentials{Username: "robin", Password: "wrong password"}, &e)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var login authRes
	rec = do(t, s, http.MethodPost, "/auth/login", "", credentials{Username: "robin", Password: "correct horse"}, &login)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, me.ID, login.ID)

	var who authUser
	rec = do(t, s, http.MethodGet, "/auth/me", login.Token, nil, &who)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "robin", who.Username)

	rec = do(t, s, http.MethodGet, "/auth/me", "", nil, &e)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = do(t, s, http.MethodGet, "/auth/me", "garbage", nil, &e)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/logout", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOwnedGameUpdatesScoreRecord(t *testing.T) {
	s := newTestServer(t)
	me := signup(t, s, "robin")
	other := signup(t, s, "alex")

	play := func(guesses ...string) {
		var ng newGameRes
		require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/game/new", me.Token, map[string]string{"answer": "worry"}, &ng).Code)

		var e map[string]string
		rec := do(t, s, http.MethodGet, "/game/"+ng.GameID, other.Token, nil, &e)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		rec = do(t, s, http.MethodGet, "/game/"+ng.GameID, "", nil, &e)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		for _, g := range guesses {
			require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/game/guess", me.Token, guessReq{GameID: ng.GameID, Guess: g}, nil).Code)
		}
	}
	play("words", "worry")
	play("crane", "slate", "toons", "barks", "words", "crane")

	var stats struct {
		Played int              `json:"played"`
		Score  game.ScoreRecord `json:"score"`
	}
	rec := do(t, s, http.MethodGet, "/stats/me", me.Token, nil, &stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stats.Played)
	assert.Equal(t, game.ScoreRecord{Wins: 1, Losses: 1, Streak: 0, BestStreak: 1}, stats.Score)
}
