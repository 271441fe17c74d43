package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamResponses_BatchesEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bus := events.NewMemoryBus()
	defer bus.Close()

	r := gin.New()
	r.GET("/ws", NewStreamHandler(bus, logger.Nop()).StreamResponses)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler subscribes right after the upgrade; keep publishing until
	// the first batch arrives.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = bus.Publish(context.Background(), events.Event{
					Type:       events.TypeResponseSaved,
					ResponseID: "coder@x.io_J1",
					Version:    1,
				})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var batch []events.Event
	require.NoError(t, json.Unmarshal(data, &batch))
	require.NotEmpty(t, batch)
	assert.Equal(t, events.TypeResponseSaved, batch[0].Type)
	assert.Equal(t, "coder@x.io_J1", batch[0].ResponseID)
}
