package domain

type LoanInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"` // fraction, 0.05 = 5%
	TermMonths int     `json:"term_months"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}
