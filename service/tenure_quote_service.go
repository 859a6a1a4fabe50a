package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
)

// CalculateFunc prices one loan. LoanService.CalculateLoan and AmortizeInput
// both satisfy it.
type CalculateFunc func(domain.LoanInput) (domain.LoanResult, error)

// AmortizeInput runs the engine on a LoanInput without caching or history.
func AmortizeInput(input domain.LoanInput) (domain.LoanResult, error) {
	return Amortize(input.Principal, input.AnnualRate, input.TermMonths)
}

// QuoteTenures prices the loan for every tenure option with calculate and
// picks the cheapest (least interest) and lightest (lowest payment). Ties
// keep the shorter tenure.
func QuoteTenures(input domain.TenureQuoteInput, calculate CalculateFunc) (domain.TenureQuoteResult, error) {
	quotes := make([]domain.TenureQuote, 0, len(TenureOptions))

	for _, months := range TenureOptions {
		result, err := calculate(domain.LoanInput{
			Principal:  input.Principal,
			AnnualRate: input.AnnualRate,
			TermMonths: months,
		})
		if err != nil {
			// every option shares principal and rate, so one failure means all fail
			return domain.TenureQuoteResult{}, err
		}

		quotes = append(quotes, domain.TenureQuote{
			TenureMonths:   months,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
		})
	}

	if len(quotes) == 0 {
		return domain.TenureQuoteResult{}, errors.New("no tenure options configured")
	}

	cheapest, lightest := quotes[0], quotes[0]
	for _, q := range quotes[1:] {
		if q.TotalInterest < cheapest.TotalInterest {
			cheapest = q
		}
		if q.MonthlyPayment < lightest.MonthlyPayment {
			lightest = q
		}
	}

	return domain.TenureQuoteResult{
		Quotes:         quotes,
		CheapestTenure: cheapest.TenureMonths,
		LightestTenure: lightest.TenureMonths,
	}, nil
}

type TenureQuoteService struct {
	loanService *LoanService
	logger      *logrus.Logger
}

func NewTenureQuoteService(loanService *LoanService, logger *logrus.Logger) *TenureQuoteService {
	return &TenureQuoteService{
		loanService: loanService,
		logger:      logger,
	}
}

// QuoteTenures prices the loan for every tenure the widget offers, going
// through the cached loan service.
func (s *TenureQuoteService) QuoteTenures(
	input domain.TenureQuoteInput,
) (domain.TenureQuoteResult, error) {

	result, err := QuoteTenures(input, s.loanService.CalculateLoan)
	if err != nil {
		return domain.TenureQuoteResult{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"principal": input.Principal,
		"rate":      input.AnnualRate,
		"cheapest":  result.CheapestTenure,
		"lightest":  result.LightestTenure,
	}).Debug("tenure quotes computed")

	return result, nil
}
