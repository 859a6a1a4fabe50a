package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-calculator/widget"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	View        widget.View
	ChartWidth  int
	ChartHeight int
}

// PageHandler serves the calculator page. Every load starts a fresh session.
type PageHandler struct {
	store  *widget.Store
	layout widget.Layout
	logger *logrus.Logger
}

func NewPageHandler(store *widget.Store, layout widget.Layout, logger *logrus.Logger) *PageHandler {
	return &PageHandler{store: store, layout: layout.WithDefaults(), logger: logger}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	wg, err := h.store.Create()
	if err != nil {
		writeCreateError(w, h.logger, err)
		return
	}

	var buf bytes.Buffer
	data := pageData{
		View:        wg.Render(),
		ChartWidth:  h.layout.ChartWidth,
		ChartHeight: h.layout.ChartHeight,
	}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.WithError(err).Error("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WithError(err).Warn("failed to write page")
	}
}
