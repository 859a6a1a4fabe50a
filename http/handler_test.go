package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/repository"
	"loan-calculator/service"
	"loan-calculator/widget"
)

type testServer struct {
	router *mux.Router
	store  *widget.Store
	widget *WidgetHandler
}

func newTestServer(t *testing.T, capacity int) *testServer {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	loanService := service.NewLoanService(
		repository.NewLoanRepositoryMemory(10),
		repository.NewMockCache(),
		logger,
	)
	store := widget.NewStore(widget.DefaultLayout(), 0, logger)
	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	widgets := NewWidgetHandler(store, logger)
	router := NewRouter(Handlers{
		Page:   NewPageHandler(store, widget.DefaultLayout(), logger),
		Widget: widgets,
		Loan:   NewLoanHandler(loanService, logger),
		Tenure: NewTenureHandler(service.NewTenureQuoteService(loanService, logger), logger),
	}, limiter, logger)

	return &testServer{router: router, store: store, widget: widgets}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) widget.View {
	t.Helper()
	var view widget.View
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return view
}

func TestCalculateLoanHandler_OK(t *testing.T) {

	s := newTestServer(t, 0)

	w := s.do(http.MethodPost, "/loan/calculate", `{
		"principal": 5000,
		"annual_rate": 0.01,
		"term_months": 6
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.LoanResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MonthlyPayment != 835.77 || result.TotalInterest != 14.59 {
		t.Errorf("unexpected result %+v", result)
	}

	h := s.do(http.MethodGet, "/loan/history", "")
	if h.Code != http.StatusOK || !strings.Contains(h.Body.String(), `"term_months":6`) {
		t.Errorf("expected calculation in history, got %d: %s", h.Code, h.Body.String())
	}
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {

	s := newTestServer(t, 0)

	for _, path := range []string{"/loan/calculate", "/loan/tenures", "/widgets"} {
		if w := s.do(http.MethodGet, path, ""); w.Code != http.StatusMethodNotAllowed {
			t.Errorf("GET %s: expected 405, got %d", path, w.Code)
		}
	}
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {

	s := newTestServer(t, 0)

	if w := s.do(http.MethodPost, "/loan/calculate", `{invalid-json}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if w := s.do(http.MethodPost, "/loan/calculate", `{"principal":1000,"annual_rate":0.01,"term_months":0}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero term, got %d", w.Code)
	}
}

func TestQuoteTenuresHandler(t *testing.T) {

	s := newTestServer(t, 0)

	w := s.do(http.MethodPost, "/loan/tenures", `{"principal":5000,"annual_rate":0.01}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.TenureQuoteResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Quotes) != len(service.TenureOptions) || result.LightestTenure != 36 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestJSONEndpoints_RequireJSON(t *testing.T) {

	s := newTestServer(t, 0)
	view := decodeView(t, s.do(http.MethodPost, "/widgets", ""))

	cases := []struct {
		path        string
		contentType string
		want        int
	}{
		{"/loan/calculate", "text/plain", http.StatusUnsupportedMediaType},
		{"/loan/calculate", "", http.StatusUnsupportedMediaType},
		{"/loan/tenures", "text/plain", http.StatusUnsupportedMediaType},
		{"/widgets/" + view.ID + "/edits", "text/plain", http.StatusUnsupportedMediaType},
		{"/widgets/" + view.ID + "/edits", "application/json; charset=utf-8", http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.path+" "+c.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, c.path, bytes.NewBufferString(`{"field":"rate","value":0.02}`))
			if c.contentType != "" {
				req.Header.Set("Content-Type", c.contentType)
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			if w.Code != c.want {
				t.Errorf("expected %d, got %d: %s", c.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestWidgetLifecycle(t *testing.T) {

	s := newTestServer(t, 0)

	created := s.do(http.MethodPost, "/widgets", "")
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", created.Code)
	}
	view := decodeView(t, created)
	if view.State.LoanAmount != 5000 || view.Readouts[0].Text != "$835.77" {
		t.Fatalf("unexpected initial view %+v", view)
	}

	edited := s.do(http.MethodPost, "/widgets/"+view.ID+"/edits", `{"field":"total","value":4000}`)
	if edited.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", edited.Code, edited.Body.String())
	}
	next := decodeView(t, edited)
	if next.State.LoanAmount != 2000 || next.State.DownPayment != 2000 {
		t.Errorf("expected 2000/2000 split, got %+v", next.State)
	}
	if next.Chart.ID != view.Chart.ID {
		t.Errorf("chart replaced on edit")
	}

	got := s.do(http.MethodGet, "/widgets/"+view.ID, "")
	if got.Code != http.StatusOK || decodeView(t, got).State.TotalAmount != 4000 {
		t.Errorf("expected stored state to follow the edit")
	}

	svg := s.do(http.MethodGet, "/widgets/"+view.ID+"/chart.svg", "")
	if svg.Code != http.StatusOK || svg.Header().Get("Content-Type") != "image/svg+xml" {
		t.Errorf("unexpected svg response %d %s", svg.Code, svg.Header().Get("Content-Type"))
	}

	if d := s.do(http.MethodDelete, "/widgets/"+view.ID, ""); d.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", d.Code)
	}
	if g := s.do(http.MethodGet, "/widgets/"+view.ID, ""); g.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", g.Code)
	}
}

func TestWidgetEdit_Errors(t *testing.T) {

	s := newTestServer(t, 0)
	view := decodeView(t, s.do(http.MethodPost, "/widgets", ""))

	cases := []struct {
		name string
		path string
		body string
		want int
	}{
		{"unknown widget", "/widgets/missing/edits", `{"field":"loan","value":1}`, http.StatusNotFound},
		{"bad json", "/widgets/" + view.ID + "/edits", `{`, http.StatusBadRequest},
		{"bad tenure", "/widgets/" + view.ID + "/edits", `{"field":"tenure","value":7}`, http.StatusBadRequest},
		{"unknown field", "/widgets/" + view.ID + "/edits", `{"field":"color","value":1}`, http.StatusBadRequest},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if w := s.do(http.MethodPost, c.path, c.body); w.Code != c.want {
				t.Errorf("expected %d, got %d", c.want, w.Code)
			}
		})
	}
}

func TestIndexPage(t *testing.T) {

	s := newTestServer(t, 0)

	w := s.do(http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{"Total Amount: $10000", "Loan Tenure: 6 months", `id="loanChart"`, "$835.77"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if s.store.Len() != 1 {
		t.Errorf("expected page load to start a session, got %d", s.store.Len())
	}
}

func TestRateLimit(t *testing.T) {

	s := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		if w := s.do(http.MethodPost, "/widgets", ""); w.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, w.Code)
		}
	}
	if w := s.do(http.MethodPost, "/widgets", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestIndexPage_RateLimited(t *testing.T) {

	s := newTestServer(t, 1)

	if w := s.do(http.MethodGet, "/", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/", ""); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if s.store.Len() != 1 {
		t.Errorf("expected one session, got %d", s.store.Len())
	}
}

func TestCreateWidget_StoreFull(t *testing.T) {

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := widget.NewStore(widget.DefaultLayout(), 1, logger)
	widgets := NewWidgetHandler(store, logger)
	page := NewPageHandler(store, widget.DefaultLayout(), logger)

	w := httptest.NewRecorder()
	widgets.CreateWidget(w, httptest.NewRequest(http.MethodPost, "/widgets", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	widgets.CreateWidget(w, httptest.NewRequest(http.MethodPost, "/widgets", nil))
	if w.Code != http.StatusServiceUnavailable || w.Header().Get("Retry-After") == "" {
		t.Errorf("expected 503 with Retry-After, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	page.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected page to answer 503, got %d", w.Code)
	}
}
