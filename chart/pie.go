// Package chart holds the pie chart a calculator widget draws into. The
// config it produces has the shape Chart.js expects, so a browser can hand
// it straight to the library; SVG renders the same chart server-side.
package chart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	LoanColor     = "#3498db"
	InterestColor = "#e74c3c"
	DatasetLabel  = "Amount in $"
)

var (
	ErrSeriesMismatch = errors.New("labels and data differ in length")
	ErrNegativeValue  = errors.New("pie slices must not be negative")
)

var sliceColors = []string{LoanColor, InterestColor}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Config struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Pie is one chart instance. Revision counts the updates applied after
// creation.
type Pie struct {
	ID       string `json:"id"`
	Revision int    `json:"revision"`
	Config   Config `json:"config"`
}

func newPie(labels []string, data []float64) *Pie {
	colors := make([]string, len(data))
	for i := range colors {
		colors[i] = sliceColors[i%len(sliceColors)]
	}

	return &Pie{
		ID: uuid.NewString(),
		Config: Config{
			Type: "pie",
			Data: Data{
				Labels: cloneStrings(labels),
				Datasets: []Dataset{{
					Label:           DatasetLabel,
					Data:            cloneFloats(data),
					BackgroundColor: colors,
				}},
			},
		},
	}
}

// update swaps labels and data in place; colors stay as created.
func (p *Pie) update(labels []string, data []float64) {
	p.Config.Data.Labels = cloneStrings(labels)
	p.Config.Data.Datasets[0].Data = cloneFloats(data)
	p.Revision++
}

// Labels returns the slice labels.
func (p Pie) Labels() []string { return p.Config.Data.Labels }

// Values returns the slice values.
func (p Pie) Values() []float64 { return p.Config.Data.Datasets[0].Data }

// Colors returns the slice colors.
func (p Pie) Colors() []string { return p.Config.Data.Datasets[0].BackgroundColor }

func (p *Pie) clone() Pie {
	out := *p
	out.Config.Data.Labels = cloneStrings(p.Config.Data.Labels)
	out.Config.Data.Datasets = []Dataset{{
		Label:           p.Config.Data.Datasets[0].Label,
		Data:            cloneFloats(p.Config.Data.Datasets[0].Data),
		BackgroundColor: cloneStrings(p.Config.Data.Datasets[0].BackgroundColor),
	}}
	return out
}

func validate(labels []string, data []float64) error {
	if len(labels) != len(data) {
		return fmt.Errorf("%w: %d labels, %d values", ErrSeriesMismatch, len(labels), len(data))
	}
	for i, v := range data {
		if v < 0 {
			return fmt.Errorf("%w: %s is %v", ErrNegativeValue, labels[i], v)
		}
	}
	return nil
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
