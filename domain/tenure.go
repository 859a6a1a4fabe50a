package domain

type TenureQuoteInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
}

type TenureQuote struct {
	TenureMonths   int     `json:"tenure_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type TenureQuoteResult struct {
	Quotes         []TenureQuote `json:"quotes"`
	CheapestTenure int           `json:"cheapest_tenure"` // least total interest
	LightestTenure int           `json:"lightest_tenure"` // lowest monthly payment
}
