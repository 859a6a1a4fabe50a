package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"loan-calculator/domain"
)

var (
	ErrUnknownField  = errors.New("unknown calculator field")
	ErrInvalidTenure = errors.New("tenure is not one of the offered options")
)

// DefaultState is the record a fresh widget starts from.
func DefaultState() domain.CalculatorState {
	half := DefaultTotalAmount / 2
	state := domain.CalculatorState{
		TotalAmount:  DefaultTotalAmount,
		LoanAmount:   half,
		DownPayment:  half,
		InterestRate: DefaultInterestRate,
		TenureMonths: DefaultTenureMonths,
	}
	derived, err := derive(state)
	if err != nil {
		// defaults are within every engine bound
		panic(err)
	}
	return derived
}

// Recompute applies one edit to state and returns the resulting state with
// the installment and interest refreshed. The input state is never modified;
// on error it is returned as is.
//
// Amounts stay coupled by loan + down == total:
//   - total resets loan and down payment to half of the new total each
//   - loan sets the down payment to total - loan
//   - down sets only the down payment; the derive step then recomputes
//     loan from it
//   - rate and tenure leave the amounts alone
func Recompute(state domain.CalculatorState, edit domain.Edit) (domain.CalculatorState, error) {
	if !isFinite(edit.Value) {
		return state, fmt.Errorf("%s: %w", edit.Field, ErrNotFinite)
	}

	next := state
	switch edit.Field {
	case domain.FieldTotal:
		total := snap(edit.Value, MinTotalAmount, MaxTotalAmount, TotalAmountStep)
		next.TotalAmount = total
		next.LoanAmount = total / 2
		next.DownPayment = total / 2
	case domain.FieldLoan:
		loan := snap(edit.Value, 0, state.TotalAmount, LoanAmountStep)
		next.LoanAmount = loan
		next.DownPayment = state.TotalAmount - loan
	case domain.FieldDown:
		next.DownPayment = snap(edit.Value, 0, state.TotalAmount, DownPaymentStep)
	case domain.FieldRate:
		next.InterestRate = snap(edit.Value, MinWidgetRate, MaxWidgetRate, InterestRateStep)
	case domain.FieldTenure:
		months := int(edit.Value)
		if float64(months) != edit.Value || !isTenureOption(months) {
			return state, fmt.Errorf("%v months: %w", edit.Value, ErrInvalidTenure)
		}
		next.TenureMonths = months
	default:
		return state, fmt.Errorf("%q: %w", edit.Field, ErrUnknownField)
	}

	derived, err := derive(next)
	if err != nil {
		return state, err
	}
	return derived, nil
}

func derive(state domain.CalculatorState) (domain.CalculatorState, error) {
	state.LoanAmount = state.TotalAmount - state.DownPayment

	result, err := Amortize(state.LoanAmount, state.InterestRate, state.TenureMonths)
	if err != nil {
		return state, fmt.Errorf("derive installment: %w", err)
	}
	state.MonthlyInstallment = result.MonthlyPayment
	state.TotalInterest = result.TotalInterest
	return state, nil
}

// snap clamps value into [lo, hi] and moves it to the nearest multiple of
// step counted from lo, the way a range input does.
func snap(value, lo, hi, step float64) float64 {
	v := decimal.NewFromFloat(value)
	low := decimal.NewFromFloat(lo)
	high := decimal.NewFromFloat(hi)
	st := decimal.NewFromFloat(step)

	if v.LessThan(low) {
		v = low
	}
	if v.GreaterThan(high) {
		v = high
	}

	v = low.Add(v.Sub(low).Div(st).Round(0).Mul(st))
	if v.GreaterThan(high) {
		v = v.Sub(st)
	}
	return v.InexactFloat64()
}
