package service

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"loan-calculator/domain"
)

var (
	ErrNegativePrincipal = errors.New("principal must not be negative")
	ErrNegativeRate      = errors.New("interest rate must not be negative")
	ErrNonPositiveTerm   = errors.New("term must be at least one month")
	ErrNotFinite         = errors.New("value must be a finite number")
)

// roundTo2Decimals rounds half away from zero on the decimal representation,
// so 1.005 becomes 1.01.
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Amortize computes the fixed monthly installment of a fully amortizing loan
// and the interest paid over its life. annualRate is a fraction (0.05 = 5%).
func Amortize(principal, annualRate float64, termMonths int) (domain.LoanResult, error) {
	if !isFinite(principal) || !isFinite(annualRate) {
		return domain.LoanResult{}, ErrNotFinite
	}
	if principal < 0 {
		return domain.LoanResult{}, ErrNegativePrincipal
	}
	if annualRate < 0 {
		return domain.LoanResult{}, ErrNegativeRate
	}
	if termMonths <= 0 {
		return domain.LoanResult{}, ErrNonPositiveTerm
	}

	n := float64(termMonths)
	monthlyRate := annualRate / 12
	growth := math.Pow(1+monthlyRate, n)

	var payment float64
	if monthlyRate == 0 || growth == 1 {
		// the annuity formula is 0/0 here
		payment = principal / n
	} else {
		payment = principal * monthlyRate * growth / (growth - 1)
	}

	total := payment * n
	interest := total - principal

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(interest),
	}, nil
}
