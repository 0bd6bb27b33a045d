package mazeapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/labiri-api/api"
	api_i "github.com/beka-birhanu/labiri-api/api/i"
	"github.com/beka-birhanu/labiri-api/api/identity"
	mazeapi "github.com/beka-birhanu/labiri-api/api/maze"
	"github.com/beka-birhanu/labiri-api/config"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/service"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
func (nopLogger) Debug(string)   {}

type nopLeaderboard struct{}

func (nopLeaderboard) Submit(context.Context, uuid.UUID, int) error { return nil }
func (nopLeaderboard) Top(context.Context, int64) ([]i.LeaderboardEntry, error) {
	return nil, nil
}
func (nopLeaderboard) Standing(context.Context, uuid.UUID) (i.LeaderboardEntry, error) {
	return i.LeaderboardEntry{}, i.ErrNotRanked
}

// staticTokenizer accepts one token and maps it to one user.
type staticTokenizer struct {
	userID uuid.UUID
}

func (s staticTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "good", nil
}

func (s staticTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return map[string]interface{}{"userID": s.userID.String()}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions, err := service.NewMazeSessionManager(service.MazeSessionConfig{
		Maze:        config.MazeConfig{InitialCols: 2, InitialRows: 4, RandomSeed: 5},
		Leaderboard: nopLeaderboard{},
		Logger:      nopLogger{},
	})
	require.NoError(t, err)

	controller, err := mazeapi.NewMazeController(sessions)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(staticTokenizer{userID: uuid.New()}),
	})
	return router.Engine()
}

func do(engine *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) maze.Snapshot {
	t.Helper()
	var s maze.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func TestMazeController(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("requires a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/maze", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no session yet", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/api/v1/maze", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("start", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/maze", nil, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		s := decodeSnapshot(t, w)
		assert.Equal(t, 2, s.Cols)
		assert.Equal(t, 4, s.Rows)
		assert.Len(t, s.Cells, 8)
		assert.Equal(t, maze.Position{Col: 1, Row: 3}, s.Exit)
	})

	t.Run("blocked move", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/maze/move", mazeapi.MoveRequest{Direction: "up"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res mazeapi.MoveResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "blocked", res.Outcome)
		assert.Equal(t, maze.Position{}, res.State.Player)
	})

	t.Run("unknown direction", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/maze/move", mazeapi.MoveRequest{Direction: "sideways"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing direction", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/maze/move", map[string]string{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("return and reset", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/v1/maze/return", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, maze.Position{}, decodeSnapshot(t, w).Player)

		w = do(engine, http.MethodPost, "/api/v1/maze/reset", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		s := decodeSnapshot(t, w)
		assert.Equal(t, 2, s.Cols)
		assert.Equal(t, 0, s.Score)
	})

	t.Run("protobuf snapshot", func(t *testing.T) {
		w := do(engine, http.MethodGet, "/api/v1/maze", nil, map[string]string{"Accept": "application/x-protobuf"})
		require.Equal(t, http.StatusOK, w.Code)

		var msg structpb.Struct
		require.NoError(t, proto.Unmarshal(w.Body.Bytes(), &msg))
		fields := msg.AsMap()
		assert.Equal(t, float64(2), fields["cols"])
		assert.Equal(t, float64(4), fields["rows"])
		assert.Len(t, fields["cells"], 8)
	})

	t.Run("end", func(t *testing.T) {
		w := do(engine, http.MethodDelete, "/api/v1/maze", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(engine, http.MethodGet, "/api/v1/maze", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
