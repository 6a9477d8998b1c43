package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"anvilchess/internal/anvilchess"
	"anvilchess/internal/game"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Manager) {
	t.Helper()
	mgr := game.NewManager()
	srv := httptest.NewServer(NewServer(mgr, anvilchess.NewRand(1), nil))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func post(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	resp, err := http.Post(srv.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestNewGameAndState(t *testing.T) {
	srv, _ := newTestServer(t)

	var created StateResponse
	if code := post(t, srv, "/api/new_game", nil, &created); code != http.StatusOK {
		t.Fatalf("new_game: %d", code)
	}
	if created.GameID == "" || created.ToMove != "white" || len(created.LegalMoves) != 20 {
		t.Fatalf("new game: %+v", created)
	}
	if created.Status != "ongoing" || created.Outcome != "ongoing" {
		t.Fatalf("status %q outcome %q", created.Status, created.Outcome)
	}

	var state StateResponse
	if code := post(t, srv, "/api/state", StateRequest{GameID: created.GameID}, &state); code != http.StatusOK {
		t.Fatalf("state: %d", code)
	}
	if state.Position != created.Position {
		t.Fatalf("state %q, created %q", state.Position, created.Position)
	}
	if code := post(t, srv, "/api/state", StateRequest{GameID: "nope"}, nil); code != http.StatusNotFound {
		t.Fatalf("unknown game: %d", code)
	}
}

func TestNewGameFromPosition(t *testing.T) {
	srv, _ := newTestServer(t)
	var created StateResponse
	code := post(t, srv, "/api/new_game", NewGameRequest{Position: "6k1/5ppp/8/8/8/8/8/R5K1 w -"}, &created)
	if code != http.StatusOK {
		t.Fatalf("new_game: %d", code)
	}
	var played PlayResponse
	req := PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "a1", To: "a8"}}
	if code := post(t, srv, "/api/play", req, &played); code != http.StatusOK {
		t.Fatalf("play: %d", code)
	}
	if played.Status != "checkmate" || played.Outcome != "white" || len(played.LegalMoves) != 0 {
		t.Fatalf("after mate: %+v", played.StateResponse)
	}
	req.Move = MoveDTO{From: "g8", To: "h8"}
	if code := post(t, srv, "/api/play", req, nil); code != http.StatusConflict {
		t.Fatalf("move after mate: %d", code)
	}

	if code := post(t, srv, "/api/new_game", NewGameRequest{Position: "bad"}, nil); code != http.StatusBadRequest {
		t.Fatalf("bad position: %d", code)
	}
}

func TestPlayAndLegal(t *testing.T) {
	srv, _ := newTestServer(t)
	var created StateResponse
	post(t, srv, "/api/new_game", nil, &created)

	var legal LegalResponse
	if code := post(t, srv, "/api/legal", LegalRequest{GameID: created.GameID, From: "g1"}, &legal); code != http.StatusOK {
		t.Fatalf("legal: %d", code)
	}
	if strings.Join(legal.Destinations, " ") != "f3 h3" && strings.Join(legal.Destinations, " ") != "h3 f3" {
		t.Fatalf("g1 destinations: %v", legal.Destinations)
	}

	var played PlayResponse
	req := PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "e2", To: "e4"}}
	if code := post(t, srv, "/api/play", req, &played); code != http.StatusOK {
		t.Fatalf("play: %d", code)
	}
	if played.ToMove != "black" || played.Ply != 1 {
		t.Fatalf("after e2e4: %+v", played.StateResponse)
	}

	for _, tc := range []struct {
		name string
		req  PlayRequest
		want int
	}{
		{"illegal", PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "e7", To: "e4"}}, http.StatusBadRequest},
		{"bad square", PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "z9", To: "e4"}}, http.StatusBadRequest},
		{"missing square", PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "e7"}}, http.StatusBadRequest},
		{"unknown game", PlayRequest{GameID: "nope", Move: MoveDTO{From: "e7", To: "e5"}}, http.StatusNotFound},
	} {
		if code := post(t, srv, "/api/play", tc.req, nil); code != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, code, tc.want)
		}
	}
}

func TestMethodAndRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/play")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /api/play: %d", resp.StatusCode)
	}
	if code := post(t, srv, "/api/nothing", nil, nil); code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", code)
	}
	resp, err = http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: %d", resp.StatusCode)
	}
}

func TestWatchStreamsMoves(t *testing.T) {
	srv, mgr := newTestServer(t)
	var created StateResponse
	post(t, srv, "/api/new_game", nil, &created)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/watch?game_id=" + created.GameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The subscription is registered before the upgrade completes.
	req := PlayRequest{GameID: created.GameID, Move: MoveDTO{From: "e2", To: "e4"}}
	if code := post(t, srv, "/api/play", req, nil); code != http.StatusOK {
		t.Fatalf("play: %d", code)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var u game.Update
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if u.GameID != created.GameID || u.Move != "e2e4" || u.Ply != 1 || u.ToMove != "black" {
		t.Fatalf("update: %+v", u)
	}

	mgr.Delete(created.GameID)
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("after delete: %v", err)
	}
}

func TestWatchUnknownGame(t *testing.T) {
	srv, _ := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/watch?game_id=nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial succeeded for an unknown game")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("response: %v", resp)
	}
}
