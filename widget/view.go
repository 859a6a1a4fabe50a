package widget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-calculator/chart"
	"loan-calculator/domain"
	"loan-calculator/service"
)

// ChartLabels are the fixed pie categories.
var ChartLabels = []string{"Loan Amount", "Total Interest"}

type ControlKind string

const (
	KindSlider ControlKind = "slider"
	KindSelect ControlKind = "select"
)

// Option is one tenure choice. The quote fields price the current loan
// and rate at that tenure; Hint is the same quote as text.
type Option struct {
	Value          int     `json:"value"`
	Label          string  `json:"label"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Hint           string  `json:"hint,omitempty"`
}

// Control describes one input as the page should draw it.
type Control struct {
	Field   domain.Field `json:"field"`
	Label   string       `json:"label"`
	Kind    ControlKind  `json:"kind"`
	Min     float64      `json:"min,omitempty"`
	Max     float64      `json:"max,omitempty"`
	Step    float64      `json:"step,omitempty"`
	Value   float64      `json:"value"`
	Options []Option     `json:"options,omitempty"`
}

type Readout struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// View is everything a renderer needs for one frame of the widget.
type View struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	State    domain.CalculatorState `json:"state"`
	Controls []Control              `json:"controls"`
	Readouts []Readout              `json:"readouts"`
	Chart    chart.Pie              `json:"chart"`
}

func buildView(id string, layout Layout, s domain.CalculatorState, pie chart.Pie) View {
	money := func(v float64) string {
		return layout.Currency + decimal.NewFromFloat(v).String()
	}
	fixed := func(v float64) string {
		return layout.Currency + decimal.NewFromFloat(v).StringFixed(2)
	}

	options := tenureOptions(s, fixed)

	return View{
		ID:    id,
		Title: layout.Title,
		State: s,
		Controls: []Control{
			{
				Field: domain.FieldTotal,
				Label: "Total Amount: " + money(s.TotalAmount),
				Kind:  KindSlider,
				Min:   service.MinTotalAmount,
				Max:   service.MaxTotalAmount,
				Step:  service.TotalAmountStep,
				Value: s.TotalAmount,
			},
			{
				Field: domain.FieldLoan,
				Label: "Loan Amount: " + money(s.LoanAmount),
				Kind:  KindSlider,
				Max:   s.TotalAmount,
				Step:  service.LoanAmountStep,
				Value: s.LoanAmount,
			},
			{
				Field: domain.FieldDown,
				Label: "Down Payment: " + money(s.DownPayment),
				Kind:  KindSlider,
				Max:   s.TotalAmount,
				Step:  service.DownPaymentStep,
				Value: s.DownPayment,
			},
			{
				Field: domain.FieldRate,
				Label: "Interest Rate: " + decimal.NewFromFloat(s.InterestRate).Mul(decimal.NewFromInt(100)).String() + "%",
				Kind:  KindSlider,
				Min:   service.MinWidgetRate,
				Max:   service.MaxWidgetRate,
				Step:  service.InterestRateStep,
				Value: s.InterestRate,
			},
			{
				Field:   domain.FieldTenure,
				Label:   fmt.Sprintf("Loan Tenure: %d months", s.TenureMonths),
				Kind:    KindSelect,
				Value:   float64(s.TenureMonths),
				Options: options,
			},
		},
		Readouts: []Readout{
			{Label: "Monthly Installment", Value: s.MonthlyInstallment, Text: fixed(s.MonthlyInstallment)},
			{Label: "Total Interest", Value: s.TotalInterest, Text: fixed(s.TotalInterest)},
		},
		Chart: pie,
	}
}

// tenureOptions lists the tenure choices with a quote for the current loan
// and rate on each. The quotes are left out if the engine rejects the state.
func tenureOptions(s domain.CalculatorState, fixed func(float64) string) []Option {
	result, err := service.QuoteTenures(domain.TenureQuoteInput{
		Principal:  s.LoanAmount,
		AnnualRate: s.InterestRate,
	}, service.AmortizeInput)

	options := make([]Option, 0, len(service.TenureOptions))
	for i, months := range service.TenureOptions {
		opt := Option{Value: months, Label: fmt.Sprintf("%d months", months)}
		if err == nil {
			q := result.Quotes[i]
			opt.MonthlyPayment = q.MonthlyPayment
			opt.TotalInterest = q.TotalInterest
			opt.Hint = fmt.Sprintf("%s/mo, %s interest", fixed(q.MonthlyPayment), fixed(q.TotalInterest))
			switch months {
			case result.CheapestTenure:
				opt.Hint += ", least interest"
			case result.LightestTenure:
				opt.Hint += ", lowest payment"
			}
		}
		options = append(options, opt)
	}
	return options
}
