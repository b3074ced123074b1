package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkorhonen/rinkroster/internal/api"
	"github.com/jkorhonen/rinkroster/internal/api/apierr"
	"github.com/jkorhonen/rinkroster/internal/api/response"
	"github.com/jkorhonen/rinkroster/internal/factory"
	"github.com/jkorhonen/rinkroster/internal/services/backup"
)

// testServer wires the router against an in-memory app with a fixed clock
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		RosterService:       app.RosterService,
		GamesController:     app.GamesController,
		AvailabilityService: app.AvailabilityService,
		LineupService:       app.LineupService,
		BackupService:       app.BackupService,
		SheetService:        app.SheetService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func addPlayer(t *testing.T, ts *testServer, name string, number int, position string) response.Player {
	t.Helper()

	body := map[string]any{"name": name, "number": number, "position": position}
	rr := ts.request(http.MethodPost, "/api/v1/team", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func createGame(t *testing.T, ts *testServer) response.Game {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games", nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

func setStatus(t *testing.T, ts *testServer, gameID, playerID, status string) *httptest.ResponseRecorder {
	t.Helper()

	path := fmt.Sprintf("/api/v1/games/%s/status/%s", gameID, playerID)
	return ts.request(http.MethodPut, path, map[string]string{"status": status})
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

// Roster endpoints

func TestAddAndListPlayers(t *testing.T) {
	ts := newTestServer(t)

	player := addPlayer(t, ts, "Mikko Aaltonen", 7, "forward")
	assert.Equal(t, "Mikko Aaltonen", player.Name)
	assert.Equal(t, 7, player.Number)
	assert.Equal(t, "forward", player.Position)
	assert.NotEmpty(t, player.ID)

	addPlayer(t, ts, "Antti Korpela", 1, "goalie")

	rr := ts.request(http.MethodGet, "/api/v1/team", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 2)
	assert.Equal(t, "Mikko Aaltonen", players[0].Name)
	assert.Equal(t, "Antti Korpela", players[1].Name)
}

func TestAddPlayerValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/team", map[string]any{"name": "  ", "number": 7, "position": "forward"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeNameRequired, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/team", map[string]any{"name": "Mikko", "number": -1, "position": "forward"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidNumber, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/team", map[string]any{"name": "Mikko", "number": 7, "position": "winger"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPosition, errorCode(t, rr))
}

func TestEditPlayer(t *testing.T) {
	ts := newTestServer(t)
	player := addPlayer(t, ts, "Mikko", 7, "forward")

	body := map[string]any{"name": "Mikko Aaltonen", "number": 17, "position": "defender"}
	rr := ts.request(http.MethodPatch, "/api/v1/team/"+player.ID, body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var edited response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &edited))
	assert.Equal(t, "Mikko Aaltonen", edited.Name)
	assert.Equal(t, 17, edited.Number)
	assert.Equal(t, "defender", edited.Position)
}

func TestEditPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"name": "Ghost", "number": 99, "position": "forward"}
	rr := ts.request(http.MethodPatch, "/api/v1/team/nonexistent", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestRemovePlayer(t *testing.T) {
	ts := newTestServer(t)
	player := addPlayer(t, ts, "Mikko", 7, "forward")

	rr := ts.request(http.MethodDelete, "/api/v1/team/"+player.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/team/"+player.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestSeedRoster(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/team/seed", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Len(t, players, 22)

	// Seeding again leaves the roster alone
	rr = ts.request(http.MethodPost, "/api/v1/team/seed", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Len(t, players, 22)
}

// Game record endpoints

func TestCreateGameDefaults(t *testing.T) {
	ts := newTestServer(t)

	game := createGame(t, ts)
	assert.Equal(t, "Game 1", game.Title)
	assert.Equal(t, "2025-09-01", game.Date)
	assert.Equal(t, "Monday", game.Weekday)
	assert.Len(t, game.Ready, 16)
	assert.Len(t, game.Lineup, 16)
	for _, slot := range game.Ready {
		assert.Nil(t, slot)
	}

	second := createGame(t, ts)
	assert.Equal(t, "Game 2", second.Title)
}

func TestUpdateGame(t *testing.T) {
	ts := newTestServer(t)
	game := createGame(t, ts)

	body := map[string]string{"title": "HIFK away", "stadium": "Helsinki Ice Hall", "score": "3-2"}
	rr := ts.request(http.MethodPatch, "/api/v1/games/"+game.ID, body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "HIFK away", updated.Title)
	assert.Equal(t, "Helsinki Ice Hall", updated.Stadium)
	assert.Equal(t, "3-2", updated.Score)
	// Untouched fields survive a partial update
	assert.Equal(t, "2025-09-01", updated.Date)
}

func TestUpdateGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/games/nonexistent", map[string]string{"title": "X"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	game := createGame(t, ts)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

// Availability endpoints

func TestSetStatusReadySeatsPlayers(t *testing.T) {
	ts := newTestServer(t)
	goalie := addPlayer(t, ts, "Antti", 1, "goalie")
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)

	rr := setStatus(t, ts, game.ID, goalie.ID, "ready")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = setStatus(t, ts, game.ID, forward.ID, "ready")
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.NotNil(t, updated.Ready[0])
	assert.Equal(t, goalie.ID, updated.Ready[0].ID)
	require.NotNil(t, updated.Ready[1])
	assert.Equal(t, forward.ID, updated.Ready[1].ID)
	assert.Equal(t, "ready", updated.PlayerStatuses[goalie.ID])
	assert.Equal(t, "ready", updated.PlayerStatuses[forward.ID])
}

func TestSetStatusNotReadyUnseats(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)

	setStatus(t, ts, game.ID, forward.ID, "ready")

	rr := setStatus(t, ts, game.ID, forward.ID, "not_ready")
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Nil(t, updated.Ready[1])
	assert.Equal(t, "not_ready", updated.PlayerStatuses[forward.ID])
}

func TestSetStatusNoneClearsEntry(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)

	setStatus(t, ts, game.ID, forward.ID, "doubtful")

	rr := setStatus(t, ts, game.ID, forward.ID, "none")
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.NotContains(t, updated.PlayerStatuses, forward.ID)
}

func TestSetStatusInvalid(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)

	rr := setStatus(t, ts, game.ID, forward.ID, "maybe")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidStatus, errorCode(t, rr))
}

func TestSetStatusReadyListFull(t *testing.T) {
	ts := newTestServer(t)
	game := createGame(t, ts)

	for i := 0; i < 15; i++ {
		p := addPlayer(t, ts, fmt.Sprintf("Player %d", i+1), i+2, "forward")
		rr := setStatus(t, ts, game.ID, p.ID, "ready")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	extra := addPlayer(t, ts, "Sixteenth", 99, "forward")
	rr := setStatus(t, ts, game.ID, extra.ID, "ready")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeReadyListFull, errorCode(t, rr))
}

// Lineup endpoints

func TestAssignAndClearLineupSlot(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)
	setStatus(t, ts, game.ID, forward.ID, "ready")

	body := map[string]string{"player_id": forward.ID}
	rr := ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/3", body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.NotNil(t, updated.Lineup[3])
	assert.Equal(t, forward.ID, updated.Lineup[3].ID)
	// Still seated in the ready list
	require.NotNil(t, updated.Ready[1])
	assert.Equal(t, forward.ID, updated.Ready[1].ID)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+game.ID+"/lineup/3", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Nil(t, updated.Lineup[3])
	assert.Equal(t, forward.ID, updated.Ready[1].ID)
}

func TestAssignLineupErrors(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	outsider := addPlayer(t, ts, "Jari", 8, "forward")
	game := createGame(t, ts)
	setStatus(t, ts, game.ID, forward.ID, "ready")

	// Field player in the goalie slot
	body := map[string]string{"player_id": forward.ID}
	rr := ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/0", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodePositionMismatch, errorCode(t, rr))

	// Player not in the ready list
	rr = ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/2", map[string]string{"player_id": outsider.ID})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNotInReadyList, errorCode(t, rr))

	// Out-of-range and unparsable slots
	rr = ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/16", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidSlot, errorCode(t, rr))

	rr = ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/abc", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidSlot, errorCode(t, rr))

	// Second slot for a player already placed
	rr = ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/2", body)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/4", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeAlreadyInLineup, errorCode(t, rr))
}

func TestMoveReady(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)
	setStatus(t, ts, game.ID, forward.ID, "ready")

	body := map[string]int{"from": 1, "to": 6}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/ready/move", body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Nil(t, updated.Ready[1])
	require.NotNil(t, updated.Ready[6])
	assert.Equal(t, forward.ID, updated.Ready[6].ID)
}

func TestMoveReadyEmptySource(t *testing.T) {
	ts := newTestServer(t)
	game := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+game.ID+"/ready/move", map[string]int{"from": 1, "to": 2})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeSlotEmpty, errorCode(t, rr))
}

func TestRemoveReadyCascades(t *testing.T) {
	ts := newTestServer(t)
	forward := addPlayer(t, ts, "Mikko", 7, "forward")
	game := createGame(t, ts)
	setStatus(t, ts, game.ID, forward.ID, "ready")
	ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/2", map[string]string{"player_id": forward.ID})

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+game.ID+"/ready/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Nil(t, updated.Ready[1])
	assert.Nil(t, updated.Lineup[2])
	assert.NotContains(t, updated.PlayerStatuses, forward.ID)
}

// Sheet endpoint

func TestGameSheet(t *testing.T) {
	ts := newTestServer(t)
	goalie := addPlayer(t, ts, "Antti Korpela", 1, "goalie")
	forward := addPlayer(t, ts, "Mikko Aaltonen", 7, "forward")
	game := createGame(t, ts)
	ts.request(http.MethodPatch, "/api/v1/games/"+game.ID, map[string]string{"title": "HIFK away"})
	setStatus(t, ts, game.ID, goalie.ID, "ready")
	setStatus(t, ts, game.ID, forward.ID, "ready")
	ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/0", map[string]string{"player_id": goalie.ID})
	ts.request(http.MethodPut, "/api/v1/games/"+game.ID+"/lineup/1", map[string]string{"player_id": forward.ID})

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID+"/sheet", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))

	sheet := rr.Body.String()
	assert.Contains(t, sheet, "=== HIFK away ===")
	assert.Contains(t, sheet, "Goalie: #1 Antti Korpela")
	assert.Contains(t, sheet, "#7 Mikko Aaltonen")
}

func TestGameSheetNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/nonexistent/sheet", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))
}

// Backup endpoints

func TestBackupExportAndRestore(t *testing.T) {
	ts := newTestServer(t)
	addPlayer(t, ts, "Mikko", 7, "forward")
	createGame(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/backup", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "rinkroster-backup.json")

	var file backup.File
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &file))
	assert.Equal(t, backup.Version, file.Version)
	assert.Len(t, file.Team, 1)
	assert.Len(t, file.Games, 1)
	exported := rr.Body.Bytes()

	// Mutate state, then restore the export
	addPlayer(t, ts, "Extra", 42, "defender")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/backup/restore", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	restoreRR := httptest.NewRecorder()
	ts.handler.ServeHTTP(restoreRR, req)
	assert.Equal(t, http.StatusNoContent, restoreRR.Code)

	rr = ts.request(http.MethodGet, "/api/v1/team", nil)
	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Mikko", players[0].Name)
}

func TestBackupRestoreRejectsMalformedFile(t *testing.T) {
	ts := newTestServer(t)
	addPlayer(t, ts, "Mikko", 7, "forward")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/backup/restore", strings.NewReader(`{"team": []}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidBackup, errorCode(t, rr))

	// Existing data is untouched after a rejected restore
	listRR := ts.request(http.MethodGet, "/api/v1/team", nil)
	var players []response.Player
	require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &players))
	assert.Len(t, players, 1)
}
