package chart

import (
	"errors"
	"strings"
	"testing"
)

var labels = []string{"Loan Amount", "Total Interest"}

func TestSurface_DrawCreatesOnce(t *testing.T) {

	s := NewSurface()

	first, err := s.Draw(labels, []float64{5000, 14.59})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var last Pie
	for i := 0; i < 25; i++ {
		last, err = s.Draw(labels, []float64{float64(i * 100), float64(i)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if s.Created() != 1 {
		t.Errorf("expected exactly one chart instance, got %d", s.Created())
	}
	if last.ID != first.ID {
		t.Errorf("chart id changed from %s to %s", first.ID, last.ID)
	}
	if last.Revision != 25 {
		t.Errorf("expected revision 25, got %d", last.Revision)
	}
	if got := last.Values(); got[0] != 2400 || got[1] != 24 {
		t.Errorf("unexpected values %v", got)
	}
}

func TestSurface_ConfigShape(t *testing.T) {

	pie, err := NewSurface().Draw(labels, []float64{5000, 14.59})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pie.Config.Type != "pie" {
		t.Errorf("expected pie type, got %q", pie.Config.Type)
	}
	if pie.Config.Data.Datasets[0].Label != DatasetLabel {
		t.Errorf("unexpected dataset label %q", pie.Config.Data.Datasets[0].Label)
	}
	colors := pie.Colors()
	if len(colors) != 2 || colors[0] != LoanColor || colors[1] != InterestColor {
		t.Errorf("unexpected colors %v", colors)
	}
}

func TestSurface_SnapshotIsDetached(t *testing.T) {

	s := NewSurface()
	snap, _ := s.Draw(labels, []float64{1, 2})
	snap.Values()[0] = 99

	current, ok := s.Current()
	if !ok {
		t.Fatalf("expected a chart")
	}
	if current.Values()[0] != 1 {
		t.Errorf("snapshot mutation leaked into surface")
	}
}

func TestSurface_CurrentBeforeDraw(t *testing.T) {

	if _, ok := NewSurface().Current(); ok {
		t.Errorf("expected no chart before first draw")
	}
}

func TestSurface_RejectsBadSeries(t *testing.T) {

	s := NewSurface()

	if _, err := s.Draw(labels, []float64{1}); !errors.Is(err, ErrSeriesMismatch) {
		t.Errorf("expected ErrSeriesMismatch, got %v", err)
	}
	if _, err := s.Draw(labels, []float64{1, -1}); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("expected ErrNegativeValue, got %v", err)
	}
	if s.Created() != 0 {
		t.Errorf("invalid draws must not create a chart")
	}
}

func TestPieSVG(t *testing.T) {

	s := NewSurface()

	split, _ := s.Draw(labels, []float64{5000, 14.59})
	svg := split.SVG(400, 200)
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 slices, got %d in %s", n, svg)
	}
	if !strings.Contains(svg, LoanColor) || !strings.Contains(svg, InterestColor) {
		t.Errorf("expected both colors in %s", svg)
	}
	if !strings.Contains(svg, "Total Interest") {
		t.Errorf("expected legend in %s", svg)
	}

	whole, _ := s.Draw(labels, []float64{5000, 0})
	svg = whole.SVG(400, 200)
	if strings.Contains(svg, "<path") || !strings.Contains(svg, `fill="`+LoanColor+`"/>`) {
		t.Errorf("expected a single full circle, got %s", svg)
	}

	empty, _ := s.Draw(labels, []float64{0, 0})
	if svg = empty.SVG(400, 200); !strings.Contains(svg, emptyColor) {
		t.Errorf("expected empty placeholder, got %s", svg)
	}
}

func TestPieSVG_EscapesLabels(t *testing.T) {

	pie, _ := NewSurface().Draw([]string{"<b>", "a&b"}, []float64{1, 1})
	svg := pie.SVG(400, 200)

	if strings.Contains(svg, "<b>") || !strings.Contains(svg, "&lt;b&gt;") || !strings.Contains(svg, "a&amp;b") {
		t.Errorf("labels not escaped: %s", svg)
	}
}
