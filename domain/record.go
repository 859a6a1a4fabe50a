package domain

import "time"

// LoanRecord is one calculation kept in the history.
type LoanRecord struct {
	Input        LoanInput  `json:"input"`
	Result       LoanResult `json:"result"`
	CalculatedAt time.Time  `json:"calculated_at"`
}
