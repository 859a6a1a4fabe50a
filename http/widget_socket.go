package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/widget"
)

const (
	writeWait       = 10 * time.Second
	defaultPongWait = 60 * time.Second
)

// Frame is what the server sends over the widget socket.
type Frame struct {
	Type  string       `json:"type"` // "view" or "error"
	View  *widget.View `json:"view,omitempty"`
	Error string       `json:"error,omitempty"`
}

// Stream upgrades to a WebSocket. The client sends edits as JSON objects,
// the server answers each with a frame. A bad edit gets an error frame and
// the connection stays open.
func (h *WidgetHandler) Stream(w http.ResponseWriter, r *http.Request) {
	wg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		h.logger.WithError(err).Debug("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := h.logger.WithField("widget", wg.ID())
	log.Debug("widget socket opened")
	defer log.Debug("widget socket closed")

	pongWait := h.pongWait
	conn.SetReadLimit(maxEditBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(conn, pongWait*9/10, done, log)

	initial := wg.Render()
	if err := writeFrame(conn, Frame{Type: "view", View: &initial}); err != nil {
		log.WithError(err).Debug("write initial frame failed")
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("widget socket read failed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if err := writeFrame(conn, h.handleMessage(wg, msg, log)); err != nil {
			log.WithError(err).Debug("write frame failed")
			return
		}
	}
}

func (h *WidgetHandler) handleMessage(wg *widget.Widget, msg []byte, log *logrus.Entry) Frame {
	var edit domain.Edit
	if err := json.Unmarshal(msg, &edit); err != nil {
		return Frame{Type: "error", Error: "invalid edit: " + err.Error()}
	}

	view, err := wg.Apply(edit)
	if err != nil {
		return Frame{Type: "error", Error: err.Error()}
	}
	log.WithField("field", edit.Field).Debug("socket edit applied")
	return Frame{Type: "view", View: &view}
}

// keepAlive pings an idle client so its pongs keep the read deadline moving.
func (h *WidgetHandler) keepAlive(conn *websocket.Conn, period time.Duration, done <-chan struct{}, log *logrus.Entry) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Debug("widget socket ping failed")
				return
			}
		case <-done:
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, frame Frame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}
