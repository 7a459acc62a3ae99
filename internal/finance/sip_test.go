package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIPFutureValueReference(t *testing.T) {
	// Annuity-due: 1000 × ((1.01^60 − 1)/0.01) × 1.01, rounded to 2dp.
	fv, err := SIPFutureValue(1000, 5, 0.12)
	require.NoError(t, err)
	assert.Equal(t, 82486.37, fv)
}

func TestSIPFutureValueFixtures(t *testing.T) {
	tests := []struct {
		name    string
		monthly float64
		years   int
		rate    float64
		want    float64
	}{
		{"ten year horizon", 5000, 10, 0.12, 1161695.38},
		{"small monthly", 100, 1, 0.12, 1280.93},
		{"long tenure", 1500, 20, 0.12, 1498721.88},
		{"higher rate", 1000, 5, 0.15, 89681.69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, err := SIPFutureValue(tt.monthly, tt.years, tt.rate)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fv, 0.011)
		})
	}
}

func TestSIPFutureValueZeroRateIsLinearSum(t *testing.T) {
	fv, err := SIPFutureValue(1000, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, fv)
}

func TestSIPFutureValueMonotonicity(t *testing.T) {
	base, err := SIPFutureValue(1000, 5, 0.12)
	require.NoError(t, err)

	moreMonthly, err := SIPFutureValue(1100, 5, 0.12)
	require.NoError(t, err)
	assert.Greater(t, moreMonthly, base)

	moreYears, err := SIPFutureValue(1000, 6, 0.12)
	require.NoError(t, err)
	assert.Greater(t, moreYears, base)

	higherRate, err := SIPFutureValue(1000, 5, 0.13)
	require.NoError(t, err)
	assert.Greater(t, higherRate, base)
}

func TestSIPFutureValueValidation(t *testing.T) {
	_, err := SIPFutureValue(0, 5, 0.12)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = SIPFutureValue(-100, 5, 0.12)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = SIPFutureValue(1000, 0, 0.12)
	assert.ErrorIs(t, err, ErrNonPositiveTenure)

	_, err = SIPFutureValue(1000, 5, -0.01)
	assert.ErrorIs(t, err, ErrNegativeRate)
}
