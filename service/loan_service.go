package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loan-calculator/domain"
	"loan-calculator/repository"
)

var (
	ErrPrincipalTooLarge = errors.New("principal exceeds the allowed maximum")
	ErrRateTooLarge      = errors.New("interest rate exceeds the allowed maximum")
	ErrTermTooLong       = errors.New("term exceeds the allowed maximum")
)

type LoanService struct {
	repo   repository.LoanRepository
	cache  repository.CacheRepository
	logger *logrus.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(
	repo repository.LoanRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *LoanService {
	return &LoanService{repo: repo, cache: cache, logger: logger}
}

// CalculateLoan validates the input against the service limits and returns
// the amortization result, served from cache when the same input was seen.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if input.Principal > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("%w: %.2f", ErrPrincipalTooLarge, MaxLoanAmount)
	}
	if input.AnnualRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("%w: %.2f", ErrRateTooLarge, MaxInterestRate)
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("%w: %d months", ErrTermTooLong, MaxTermMonths)
	}

	key := cacheKey(input)
	result, hit := s.fromCache(key)
	if !hit {
		var err error
		result, err = Amortize(input.Principal, input.AnnualRate, input.TermMonths)
		if err != nil {
			return domain.LoanResult{}, err
		}
		s.toCache(key, result)
	}

	// history is best effort
	if err := s.repo.Save(input, result); err != nil {
		s.logger.WithError(err).Warn("failed to save loan calculation")
	}

	return result, nil
}

// History returns the calculations recorded so far.
func (s *LoanService) History() []domain.LoanRecord {
	return s.repo.List()
}

func (s *LoanService) fromCache(key string) (domain.LoanResult, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.LoanResult{}, false
	}
	var result domain.LoanResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("discarding unreadable cache entry")
		return domain.LoanResult{}, false
	}
	s.logger.WithField("key", key).Debug("loan cache hit")
	return result, true
}

func (s *LoanService) toCache(key string, result domain.LoanResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode loan result")
		return
	}
	if err := s.cache.Set(key, string(raw)); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to cache loan result")
	}
}

func cacheKey(input domain.LoanInput) string {
	return fmt.Sprintf("loan:%s:%s:%d",
		decimal.NewFromFloat(input.Principal).String(),
		decimal.NewFromFloat(input.AnnualRate).String(),
		input.TermMonths,
	)
}
