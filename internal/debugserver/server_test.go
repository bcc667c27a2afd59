package debugserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-maze-defense/internal/event"
	"go-maze-defense/internal/log"
	"go-maze-defense/internal/snapshot"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *snapshot.Store, *snapshot.EventLog) {
	t.Helper()
	store := snapshot.NewStore()
	events := snapshot.NewEventLog(100)
	srv := New(":0", store, events, log.Discard())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, store, events
}

func getJSON(t *testing.T, url string, v interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts, _, _ := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSnapshot(t *testing.T) {
	ts, store, _ := newTestServer(t)

	var apiErr apiError
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, ts.URL+"/snapshot", &apiErr))
	assert.NotEmpty(t, apiErr.Error)

	store.Publish(snapshot.Snapshot{SessionID: "abc", Phase: "build"})
	var snap snapshot.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/snapshot", &snap))
	assert.Equal(t, "abc", snap.SessionID)
	assert.Equal(t, "build", snap.Phase)
}

func TestEvents(t *testing.T) {
	ts, _, events := newTestServer(t)
	events.Record(1.5, []event.Event{
		{Type: event.WaveStarted, Data: event.WaveData{Number: 1, Total: 5}},
		{Type: event.EnemySpawned},
		{Type: event.EnemyKilled},
	})

	var all eventsResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/events", &all))
	assert.Equal(t, uint64(3), all.Seq)
	require.Len(t, all.Events, 3)
	assert.Equal(t, event.WaveStarted, all.Events[0].Type)

	var tail eventsResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/events?since=2", &tail))
	require.Len(t, tail.Events, 1)
	assert.Equal(t, event.EnemyKilled, tail.Events[0].Type)

	var none eventsResponse
	getJSON(t, ts.URL+"/events?since=3", &none)
	assert.NotNil(t, none.Events)
	assert.Empty(t, none.Events)

	var apiErr apiError
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/events?since=-1", &apiErr))
}

func TestCORS(t *testing.T) {
	ts, _, _ := newTestServer(t)
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocketStream(t *testing.T) {
	ts, store, _ := newTestServer(t)
	store.Publish(snapshot.Snapshot{SessionID: "first"})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() snapshot.Snapshot {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var s snapshot.Snapshot
		require.NoError(t, json.Unmarshal(data, &s))
		return s
	}

	assert.Equal(t, "first", read().SessionID)
	store.Publish(snapshot.Snapshot{SessionID: "second"})
	assert.Equal(t, "second", read().SessionID)
}
