// Package widget ties the calculator state to its chart. A Widget is the
// unit a transport drives: apply an edit, get back the next frame.
package widget

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"loan-calculator/chart"
	"loan-calculator/domain"
	"loan-calculator/service"
)

type Widget struct {
	mu         sync.Mutex
	id         string
	layout     Layout
	state      domain.CalculatorState
	surface    *chart.Surface
	logger     *logrus.Logger
	lastActive time.Time
}

// New builds a widget in its default state and draws the first chart.
func New(layout Layout, logger *logrus.Logger) (*Widget, error) {
	w := &Widget{
		id:         uuid.NewString(),
		layout:     layout.WithDefaults(),
		state:      service.DefaultState(),
		surface:    chart.NewSurface(),
		logger:     logger,
		lastActive: time.Now(),
	}
	if _, err := w.draw(w.state); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Widget) ID() string { return w.id }

// Apply runs one edit through the linked input model and redraws the chart.
// A rejected edit leaves the widget untouched.
func (w *Widget) Apply(edit domain.Edit) (View, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastActive = time.Now()

	next, err := service.Recompute(w.state, edit)
	if err != nil {
		w.logger.WithFields(logrus.Fields{
			"widget": w.id,
			"field":  edit.Field,
			"value":  edit.Value,
		}).WithError(err).Debug("edit rejected")
		return View{}, err
	}

	pie, err := w.draw(next)
	if err != nil {
		return View{}, err
	}
	w.state = next

	w.logger.WithFields(logrus.Fields{
		"widget":      w.id,
		"field":       edit.Field,
		"installment": next.MonthlyInstallment,
		"interest":    next.TotalInterest,
	}).Debug("edit applied")

	return buildView(w.id, w.layout, w.state, pie), nil
}

// Render returns the current frame without changing anything.
func (w *Widget) Render() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	pie, _ := w.surface.Current()
	return buildView(w.id, w.layout, w.state, pie)
}

// ChartSVG renders the current chart at the layout size.
func (w *Widget) ChartSVG() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	pie, _ := w.surface.Current()
	return pie.SVG(w.layout.ChartWidth, w.layout.ChartHeight)
}

func (w *Widget) State() domain.CalculatorState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// ChartInstances reports how many charts the widget ever created.
func (w *Widget) ChartInstances() int {
	return w.surface.Created()
}

func (w *Widget) LastActive() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActive
}

// draw pushes state into the chart; the caller commits state only on success.
func (w *Widget) draw(state domain.CalculatorState) (chart.Pie, error) {
	pie, err := w.surface.Draw(ChartLabels, []float64{state.LoanAmount, state.TotalInterest})
	if err != nil {
		return chart.Pie{}, fmt.Errorf("draw chart: %w", err)
	}
	return pie, nil
}
