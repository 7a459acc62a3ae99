// Package finance implements the closed-form calculators behind the
// assistant: SIP (systematic investment plan) future value and loan EMI
// (equal monthly installment) amortization.
package finance

import (
	"errors"
	"math"
)

// DefaultAnnualReturn is the assumed annual return when the user does not
// supply one, matching the 12% used in the chat shortcut.
const DefaultAnnualReturn = 0.12

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrNonPositiveTenure = errors.New("tenure must be a positive number of years")
	ErrNegativeRate      = errors.New("rate must not be negative")
)

// SIPFutureValue returns the future value of investing monthly at the start
// of every month for the given number of years, compounded monthly at
// annualRate (a fraction, e.g. 0.12 for 12%). The result is rounded to two
// decimal places.
//
// annualRate of zero degenerates the annuity-due formula into division by
// zero, so it is handled as the plain linear sum monthly × months.
func SIPFutureValue(monthly float64, years int, annualRate float64) (float64, error) {
	if monthly <= 0 {
		return 0, ErrNonPositiveAmount
	}
	if years <= 0 {
		return 0, ErrNonPositiveTenure
	}
	if annualRate < 0 {
		return 0, ErrNegativeRate
	}

	months := float64(years * 12)
	if annualRate == 0 {
		return round2(monthly * months), nil
	}

	r := annualRate / 12
	fv := monthly * (math.Pow(1+r, months) - 1) / r * (1 + r)
	return round2(fv), nil
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
