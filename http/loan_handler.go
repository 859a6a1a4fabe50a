package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, logger *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Debug("invalid loan request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.service.History())
}
