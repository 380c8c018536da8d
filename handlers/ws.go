package handlers

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/expensex/expensex-api/store"
	"github.com/expensex/expensex-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const ledgerChannel = "ledger"

// WSHandler pushes ledger and session events to connected dashboards.
type WSHandler struct {
	M *melody.Melody

	mu     sync.RWMutex
	closed bool
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive for proxies that drop idle connections
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		channel, _ := s.Get("channel")
		utils.LogWebSocket("connected", channelName(channel))
	})

	m.HandleDisconnect(func(s *melody.Session) {
		channel, _ := s.Get("channel")
		utils.LogWebSocket("disconnected", channelName(channel))
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeWarn("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

func channelName(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "unknown"
}

// HandleLedgerWS upgrades the request and subscribes it to ledger events.
func (h *WSHandler) HandleLedgerWS(c *gin.Context) {
	keys := map[string]interface{}{"channel": ledgerChannel}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		utils.SafeWarn("❌ Failed to upgrade websocket: %v", err)
	}
}

// Notify implements store.Notifier. Events sent after Close are dropped.
func (h *WSHandler) Notify(e store.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	msg, err := json.Marshal(e)
	if err != nil {
		utils.SafeError("Failed to encode event %s: %v", e.Type, err)
		return
	}

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		channel, exists := q.Get("channel")
		return exists && channel == ledgerChannel
	})
	if err != nil && !errors.Is(err, melody.ErrClosed) {
		utils.SafeWarn("⚠️ Error broadcasting %s: %v", e.Type, err)
	}
}

// Close waits for in-flight broadcasts, disconnects every client and turns
// later Notify calls into no-ops.
func (h *WSHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.M.Close()
}
