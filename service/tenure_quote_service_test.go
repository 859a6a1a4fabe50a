package service

import (
	"errors"
	"testing"

	"loan-calculator/domain"
	"loan-calculator/repository"
)

func newTenureQuoteService() *TenureQuoteService {
	logger := quietLogger()
	loanService := NewLoanService(&MockLoanRepository{}, repository.NewMockCache(), logger)
	return NewTenureQuoteService(loanService, logger)
}

func TestQuoteTenures(t *testing.T) {

	result, err := newTenureQuoteService().QuoteTenures(domain.TenureQuoteInput{
		Principal:  5000,
		AnnualRate: 0.01,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Quotes) != len(TenureOptions) {
		t.Fatalf("expected %d quotes, got %d", len(TenureOptions), len(result.Quotes))
	}
	if result.Quotes[0].TenureMonths != 6 || result.Quotes[0].MonthlyPayment != 835.77 {
		t.Errorf("unexpected first quote: %+v", result.Quotes[0])
	}
	if result.CheapestTenure != 6 {
		t.Errorf("expected 6 months to be cheapest, got %d", result.CheapestTenure)
	}
	if result.LightestTenure != 36 {
		t.Errorf("expected 36 months to be lightest, got %d", result.LightestTenure)
	}
}

func TestQuoteTenures_ZeroRateTiesKeepShortest(t *testing.T) {

	result, err := newTenureQuoteService().QuoteTenures(domain.TenureQuoteInput{
		Principal:  3600,
		AnnualRate: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CheapestTenure != 6 {
		t.Errorf("expected tie to resolve to 6 months, got %d", result.CheapestTenure)
	}
}

func TestQuoteTenures_InvalidPrincipal(t *testing.T) {

	_, err := newTenureQuoteService().QuoteTenures(domain.TenureQuoteInput{
		Principal:  -10,
		AnnualRate: 0.01,
	})
	if !errors.Is(err, ErrNegativePrincipal) {
		t.Errorf("expected ErrNegativePrincipal, got %v", err)
	}
}

func TestQuoteTenures_PureEngine(t *testing.T) {

	result, err := QuoteTenures(domain.TenureQuoteInput{Principal: 5000, AnnualRate: 0.01}, AmortizeInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Quotes) != len(TenureOptions) {
		t.Fatalf("expected %d quotes, got %d", len(TenureOptions), len(result.Quotes))
	}
	if q := result.Quotes[0]; q.MonthlyPayment != 835.77 || q.TotalInterest != 14.59 {
		t.Errorf("unexpected 6 month quote %+v", q)
	}
}

func TestQuoteTenures_PropagatesCalculateError(t *testing.T) {

	boom := errors.New("boom")
	_, err := QuoteTenures(domain.TenureQuoteInput{Principal: 1000}, func(domain.LoanInput) (domain.LoanResult, error) {
		return domain.LoanResult{}, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected calculate error, got %v", err)
	}
}
