package chart

import "sync"

// Surface owns the single pie chart of a widget. The first Draw creates the
// chart; later draws mutate it so its ID stays stable for the client.
type Surface struct {
	mu      sync.Mutex
	pie     *Pie
	created int
}

func NewSurface() *Surface {
	return &Surface{}
}

// Draw creates the chart on first use and updates it afterwards. It returns
// a snapshot of the chart after the draw.
func (s *Surface) Draw(labels []string, data []float64) (Pie, error) {
	if err := validate(labels, data); err != nil {
		return Pie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pie == nil {
		s.pie = newPie(labels, data)
		s.created++
	} else {
		s.pie.update(labels, data)
	}
	return s.pie.clone(), nil
}

// Current returns a snapshot of the chart, or false if nothing was drawn yet.
func (s *Surface) Current() (Pie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pie == nil {
		return Pie{}, false
	}
	return s.pie.clone(), true
}

// Created reports how many chart instances this surface ever built.
func (s *Surface) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}
