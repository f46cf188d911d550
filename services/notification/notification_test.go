package notification

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMelodyServiceBroadcasts(t *testing.T) {
	m := melody.New()
	connected := make(chan struct{}, 1)
	m.HandleConnect(func(*melody.Session) { connected <- struct{}{} })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = m.HandleRequest(w, r)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _ = m.Close() })

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("websocket session never connected")
	}

	svc := NewMelodyService(m)
	require.NoError(t, svc.Publish(NewEvent("attendance.saved", map[string]int{"sessionId": 7, "count": 2})))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
		SentAt  time.Time      `json:"sentAt"`
	}
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "attendance.saved", got.Type)
	assert.Equal(t, map[string]int{"sessionId": 7, "count": 2}, got.Payload)
	assert.False(t, got.SentAt.IsZero())
}

func TestMelodyServiceErrors(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).Publish(NewEvent("x", nil)))

	m := melody.New()
	require.NoError(t, m.Close())
	assert.Error(t, NewMelodyService(m).Publish(NewEvent("x", nil)))
}

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	var svc Service = &r
	require.NoError(t, svc.Publish(NewEvent("a", 1)))
	require.NoError(t, svc.Publish(NewEvent("b", 2)))
	require.Len(t, r.Events, 2)
	assert.Equal(t, "a", r.Events[0].Type)
	assert.Equal(t, "b", r.Events[1].Type)
	assert.NoError(t, Nop{}.Publish(NewEvent("c", 3)))
}
