package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Page   *PageHandler
	Widget *WidgetHandler
	Loan   *LoanHandler
	Tenure *TenureHandler
}

// NewRouter wires every route. All of them, the page included, share one
// rate limiter since each page load starts a session.
func NewRouter(h Handlers, limiter *RateLimiter, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware(logger))

	api := router.NewRoute().Subrouter()
	api.Use(RateLimitMiddleware(limiter, logger))

	api.HandleFunc("/", h.Page.Index).Methods(http.MethodGet)

	h.Widget.RegisterRoutes(api.PathPrefix("/widgets").Subrouter())

	loanRouter := api.PathPrefix("/loan").Subrouter()
	loanRouter.HandleFunc("/calculate", h.Loan.CalculateLoan).Methods(http.MethodPost)
	loanRouter.HandleFunc("/history", h.Loan.History).Methods(http.MethodGet)
	loanRouter.HandleFunc("/tenures", h.Tenure.QuoteTenures).Methods(http.MethodPost)

	return router
}
