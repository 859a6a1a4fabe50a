package repository

import (
	"sync"
	"time"

	"loan-calculator/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
// It keeps at most limit records, dropping the oldest first.
type LoanRepositoryMemory struct {
	mu    sync.RWMutex
	data  []domain.LoanRecord
	limit int
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory(limit int) *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data:  []domain.LoanRecord{},
		limit: limit,
	}
}

// Save stores the loan calculation in memory.
func (r *LoanRepositoryMemory) Save(
	input domain.LoanInput,
	result domain.LoanResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, domain.LoanRecord{
		Input:        input,
		Result:       result,
		CalculatedAt: time.Now().UTC(),
	})
	if r.limit > 0 && len(r.data) > r.limit {
		r.data = r.data[len(r.data)-r.limit:]
	}
	return nil
}

// List returns a copy of the stored records, oldest first.
func (r *LoanRepositoryMemory) List() []domain.LoanRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LoanRecord, len(r.data))
	copy(out, r.data)
	return out
}
