package domain

import "fmt"

// Field identifies one input control of the calculator.
type Field string

const (
	FieldTotal  Field = "total"
	FieldLoan   Field = "loan"
	FieldDown   Field = "down"
	FieldRate   Field = "rate"
	FieldTenure Field = "tenure"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldTotal, FieldLoan, FieldDown, FieldRate, FieldTenure}

func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Edit is a single user change to one input.
type Edit struct {
	Field Field   `json:"field"`
	Value float64 `json:"value"`
}

// CalculatorState is the whole widget record. It lives for one session only.
type CalculatorState struct {
	TotalAmount  float64 `json:"total_amount"`
	LoanAmount   float64 `json:"loan_amount"`
	DownPayment  float64 `json:"down_payment"`
	InterestRate float64 `json:"interest_rate"`
	TenureMonths int     `json:"tenure_months"`

	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalInterest      float64 `json:"total_interest"`
}

// LoanInput returns the engine input for the current amounts.
func (s CalculatorState) LoanInput() LoanInput {
	return LoanInput{
		Principal:  s.LoanAmount,
		AnnualRate: s.InterestRate,
		TermMonths: s.TenureMonths,
	}
}
