package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/widget"
)

const maxEditBytes = 4096

type WidgetHandler struct {
	store    *widget.Store
	logger   *logrus.Logger
	upgrader websocket.Upgrader
	pongWait time.Duration // socket is dropped if no pong arrives within this
}

func NewWidgetHandler(store *widget.Store, logger *logrus.Logger) *WidgetHandler {
	return &WidgetHandler{
		store:    store,
		logger:   logger,
		pongWait: defaultPongWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

func (h *WidgetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateWidget).Methods(http.MethodPost)
	router.HandleFunc("/{id}", h.GetWidget).Methods(http.MethodGet)
	router.HandleFunc("/{id}", h.DeleteWidget).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/edits", h.ApplyEdit).Methods(http.MethodPost)
	router.HandleFunc("/{id}/chart.svg", h.ChartSVG).Methods(http.MethodGet)
	router.HandleFunc("/{id}/ws", h.Stream).Methods(http.MethodGet)
}

func (h *WidgetHandler) CreateWidget(w http.ResponseWriter, r *http.Request) {
	wg, err := h.store.Create()
	if err != nil {
		writeCreateError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, wg.Render())
}

func (h *WidgetHandler) GetWidget(w http.ResponseWriter, r *http.Request) {
	wg, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, wg.Render())
}

func (h *WidgetHandler) DeleteWidget(w http.ResponseWriter, r *http.Request) {
	if !h.store.Delete(mux.Vars(r)["id"]) {
		http.Error(w, "widget not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WidgetHandler) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	wg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var edit domain.Edit
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEditBytes)).Decode(&edit); err != nil {
		h.logger.WithError(err).Debug("invalid edit body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := wg.Apply(edit)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *WidgetHandler) ChartSVG(w http.ResponseWriter, r *http.Request) {
	wg, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(wg.ChartSVG())); err != nil {
		h.logger.WithError(err).Warn("failed to write chart")
	}
}

func (h *WidgetHandler) lookup(w http.ResponseWriter, r *http.Request) (*widget.Widget, bool) {
	id := mux.Vars(r)["id"]
	wg, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "widget not found", http.StatusNotFound)
		return nil, false
	}
	return wg, true
}

// writeCreateError answers a failed session start. A full store is the
// client's cue to retry later, anything else is ours.
func writeCreateError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	if errors.Is(err, widget.ErrStoreFull) {
		w.Header().Set("Retry-After", "60")
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	logger.WithError(err).Error("failed to create widget")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
