package financesim

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		conv  DayCountConv
		days  int64
		basis int64
	}{
		{"bond basis one month", date(2024, 1, 1), date(2024, 2, 1), BONDBASIS, 30, 360},
		{"bond basis month end", date(2024, 1, 31), date(2024, 3, 31), BONDBASIS, 60, 360},
		{"eurobond", date(2024, 1, 31), date(2024, 2, 29), EUROBOND, 29, 360},
		{"money market", date(2024, 2, 1), date(2024, 3, 1), MONEYMARKET, 29, 360},
		{"fixed", date(2023, 2, 1), date(2023, 3, 1), FIXED, 28, 365},
		{"isda leap year", date(2024, 2, 1), date(2024, 3, 1), ISDA, 29, 366},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearFraction(tt.start, tt.end, tt.conv)
			require.NoError(t, err)
			want := decimal.NewFromInt(tt.days).Div(decimal.NewFromInt(tt.basis))
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestYearFraction_UnknownConvention(t *testing.T) {
	_, err := YearFraction(date(2024, 1, 1), date(2024, 2, 1), "ACT/999")
	assert.ErrorIs(t, err, ErrUnSupportDayCount)
}

func TestMonthlyRate(t *testing.T) {
	r, err := MonthlyRate(d("0.01"), PeriodMonth, "", date(2024, 1, 1))
	require.NoError(t, err)
	assertDecimal(t, "0.01", r)

	// 月中起息也按整月计算
	r, err = MonthlyRate(d("0.12"), PeriodYear, BONDBASIS, date(2024, 1, 15))
	require.NoError(t, err)
	assert.InDelta(t, 0.01, r.InexactFloat64(), 1e-12)

	_, err = MonthlyRate(d("0.12"), "WEEK", BONDBASIS, date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrUnSupportPeriod)

	_, err = MonthlyRate(d("0.12"), PeriodYear, "ACT/999", date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrUnSupportDayCount)
}

func TestYearDays(t *testing.T) {
	assert.Equal(t, 366, YearDays(date(2024, 6, 1)))
	assert.Equal(t, 365, YearDays(date(2023, 6, 1)))
	assert.Equal(t, 365, YearDays(date(1900, 6, 1)))
	assert.Equal(t, 366, YearDays(date(2000, 6, 1)))
}
