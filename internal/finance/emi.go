package finance

import "math"

// EMIResult holds the outputs of a loan amortization calculation, each
// rounded to two decimal places.
type EMIResult struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

// EMI computes the equal monthly installment for a loan of principal repaid
// over tenureYears at annualRatePercent (percent, e.g. 10 for 10% p.a.).
//
// TotalPayment is derived from the already-rounded EMI, since that is the
// figure presented to the user. A zero rate is a valid input: the loan
// amortizes linearly, repays exactly the principal, and accrues no interest.
func EMI(principal, annualRatePercent float64, tenureYears int) (EMIResult, error) {
	if principal <= 0 {
		return EMIResult{}, ErrNonPositiveAmount
	}
	if tenureYears <= 0 {
		return EMIResult{}, ErrNonPositiveTenure
	}
	if annualRatePercent < 0 {
		return EMIResult{}, ErrNegativeRate
	}

	months := float64(tenureYears * 12)
	if annualRatePercent == 0 {
		return EMIResult{
			EMI:           round2(principal / months),
			TotalPayment:  round2(principal),
			TotalInterest: 0,
		}, nil
	}

	r := annualRatePercent / 1200
	growth := math.Pow(1+r, months)
	emi := round2(principal * r * growth / (growth - 1))
	total := round2(emi * months)

	return EMIResult{
		EMI:           emi,
		TotalPayment:  total,
		TotalInterest: round2(total - principal),
	}, nil
}
