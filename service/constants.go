package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 10.0 // 1000% annual, as a fraction
	MaxTermMonths   = 600
	MinTermMonths   = 1

	// Slider bounds of the calculator widget.
	MinTotalAmount   = 1000.0
	MaxTotalAmount   = 10000.0
	TotalAmountStep  = 1000.0
	LoanAmountStep   = 100.0
	DownPaymentStep  = 1000.0
	MinWidgetRate    = 0.01
	MaxWidgetRate    = 0.05
	InterestRateStep = 0.01

	DefaultTotalAmount  = 10000.0
	DefaultInterestRate = 0.01
	DefaultTenureMonths = 6
)

// TenureOptions are the choices offered by the tenure select.
var TenureOptions = []int{6, 12, 18, 24, 30, 36}

func isTenureOption(months int) bool {
	for _, o := range TenureOptions {
		if o == months {
			return true
		}
	}
	return false
}
