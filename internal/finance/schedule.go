package finance

import "github.com/shopspring/decimal"

// Installment is one row of an amortization schedule. Amounts are decimal so
// that sixty-plus rounded rows still reconcile to the cent.
type Installment struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// AmortizationSchedule expands an EMI calculation into its month-by-month
// breakdown. Every row carries the interest accrued on the outstanding
// balance and the principal portion of the payment; the final installment
// absorbs the rounding residue so the balance lands on exactly zero.
func AmortizationSchedule(principal, annualRatePercent float64, tenureYears int) ([]Installment, error) {
	result, err := EMI(principal, annualRatePercent, tenureYears)
	if err != nil {
		return nil, err
	}

	months := tenureYears * 12
	payment := decimal.NewFromFloat(result.EMI)
	rate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(1200))
	balance := decimal.NewFromFloat(principal)

	schedule := make([]Installment, 0, months)
	for m := 1; m <= months; m++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		rowPayment := payment

		if m == months || principalPart.GreaterThanOrEqual(balance) {
			// Last row repays whatever is left, whatever the rounding drift.
			principalPart = balance
			rowPayment = balance.Add(interest)
		}

		balance = balance.Sub(principalPart)
		schedule = append(schedule, Installment{
			Month:     m,
			Payment:   rowPayment,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})

		if balance.IsZero() && m < months {
			break
		}
	}

	return schedule, nil
}
