package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	handler := NewHandler(hub)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))

	server := httptest.NewServer(router)
	defer server.Close()
	defer hub.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	hub.Broadcast(Changed(ScopeCatalog))

	var event ChangeEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "catalog.changed", event.Type)
	assert.Equal(t, ScopeCatalog, event.Scope)
}

func TestHub_ConcurrentBroadcastsToOneViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	handler := NewHandler(hub)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))

	server := httptest.NewServer(router)
	defer server.Close()
	defer hub.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	const writers = 4
	const perWriter = 50

	received := make(chan ChangeEvent, writers*perWriter)
	go func() {
		defer close(received)
		for {
			var event ChangeEvent
			if err := conn.ReadJSON(&event); err != nil {
				return
			}
			received <- event
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.Broadcast(Changed(ScopeListings))
			}
		}()
	}
	wg.Wait()

	// Every frame arrives intact; a concurrent-writer panic would have
	// dropped the connection and closed the channel early.
	timeout := time.After(5 * time.Second)
	for i := 0; i < writers*perWriter; i++ {
		select {
		case event, ok := <-received:
			require.True(t, ok, "connection dropped after %d of %d events", i, writers*perWriter)
			assert.Equal(t, "listings.changed", event.Type)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", i, writers*perWriter)
		}
	}
	assert.Equal(t, 1, hub.ConnectionCount())
}

func TestHub_UnregisterClosesConnection(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.ConnectionCount())

	// Broadcasting to nobody is a no-op.
	hub.Broadcast(Changed(ScopeListings))
}
