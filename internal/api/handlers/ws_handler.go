package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/linskybing/datadesk/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum number of events to buffer before forcing a send
	batchSize = 50

	// Maximum time to wait before sending buffered events
	flushFrequency = 250 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type StreamHandler struct {
	bus events.Bus
	log *logger.Logger
}

func NewStreamHandler(bus events.Bus, log *logger.Logger) *StreamHandler {
	return &StreamHandler{bus: bus, log: log}
}

// StreamResponses godoc
// @Summary Live response lifecycle events
// @Description Upgrades to a websocket that receives JSON arrays of lifecycle events.
// @Tags responses
// @Security BearerAuth
// @Router /ws/responses [get]
func (h *StreamHandler) StreamResponses(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	evts, release := h.bus.Subscribe()
	defer release()

	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The reader only drains control frames and notices the peer leaving.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.writeLoop(conn, evts, done)
}

func (h *StreamHandler) writeLoop(conn *websocket.Conn, evts <-chan events.Event, done <-chan struct{}) {
	defer func() { _ = conn.Close() }()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	flushTicker := time.NewTicker(flushFrequency)
	defer flushTicker.Stop()

	buffer := make([]events.Event, 0, batchSize)
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		data, err := json.Marshal(buffer)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return err
		}
		buffer = buffer[:0]
		return nil
	}

	for {
		select {
		case evt, ok := <-evts:
			if !ok {
				_ = flush()
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			buffer = append(buffer, evt)
			if len(buffer) >= batchSize {
				if err := flush(); err != nil {
					h.log.Debug("stream write failed", "error", err)
					return
				}
			}

		case <-flushTicker.C:
			if err := flush(); err != nil {
				h.log.Debug("stream write failed", "error", err)
				return
			}

		case <-pingTicker.C:
			if err := flush(); err != nil {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
