package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/service"
)

type TenureHandler struct {
	service *service.TenureQuoteService
	logger  *logrus.Logger
}

func NewTenureHandler(service *service.TenureQuoteService, logger *logrus.Logger) *TenureHandler {
	return &TenureHandler{service: service, logger: logger}
}

func (h *TenureHandler) QuoteTenures(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var input domain.TenureQuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Debug("invalid tenure request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.QuoteTenures(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
