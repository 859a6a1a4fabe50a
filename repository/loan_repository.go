package repository

import "loan-calculator/domain"

type LoanRepository interface {
	Save(input domain.LoanInput, result domain.LoanResult) error
	List() []domain.LoanRecord
}
