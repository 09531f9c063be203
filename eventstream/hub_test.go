package eventstream_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidforge/pidgraph/editor"
	"github.com/pidforge/pidgraph/eventstream"
)

func TestHub_BroadcastsEditorEvents(t *testing.T) {
	hub := eventstream.NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	events := make(chan editor.Event, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx, events)

	events <- editor.Event{Kind: editor.EventCommandApplied, Command: "AddEdge", NodeIDs: []string{"a", "b"}}

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg eventstream.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "command_applied", msg.Kind)
	assert.Equal(t, "AddEdge", msg.Command)
	assert.Equal(t, []string{"a", "b"}, msg.NodeIDs)
}

func TestHub_DisconnectRemovesClient(t *testing.T) {
	hub := eventstream.NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}
