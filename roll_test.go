package financesim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start time.Time
		n     int
		want  time.Time
	}{
		{date(2024, 1, 31), 1, date(2024, 2, 29)},
		{date(2023, 1, 31), 1, date(2023, 2, 28)},
		{date(2024, 1, 31), 2, date(2024, 3, 31)},
		{date(2024, 11, 15), 3, date(2025, 2, 15)},
		{date(2024, 3, 1), 0, date(2024, 3, 1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, addMonths(tt.start, tt.n), "%s + %d", tt.start.Format(time.DateOnly), tt.n)
	}
}

func TestSettlementDate_Roll(t *testing.T) {
	weekend := WeekendHolidayProvider{}.IsHoliday
	tests := []struct {
		name  string
		start time.Time
		month int
		roll  RollConvention
		want  time.Time
	}{
		// 2024-06-01 是周六
		{"unadjusted", date(2024, 1, 1), 5, Unadjusted, date(2024, 6, 1)},
		{"following", date(2024, 1, 1), 5, Following, date(2024, 6, 3)},
		{"preceding", date(2024, 1, 1), 5, Preceding, date(2024, 5, 31)},
		{"modified following stays in month", date(2024, 1, 1), 5, ModFollow, date(2024, 6, 3)},
		// 2024-08-31 是周六，向后挪会跨月
		{"modified following rolls back at month end", date(2024, 1, 31), 7, ModFollow, date(2024, 8, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settlementDate(tt.start, tt.month, tt.roll, weekend))
		})
	}
}

func TestSettlementDate_CalendarHolidays(t *testing.T) {
	holidays := CalendarHolidayProvider{"2024-07-01": true}
	got := settlementDate(date(2024, 1, 1), 6, Following, holidays.IsHoliday)
	assert.Equal(t, date(2024, 7, 2), got)
}

func TestSettlementDate_UsesRuntimeConfig(t *testing.T) {
	t.Cleanup(Reset)
	assert.Equal(t, date(2024, 6, 1), SettlementDate(date(2024, 1, 1), 5))

	assert.NoError(t, Start(Config{Roll: Following}))
	assert.Equal(t, date(2024, 6, 3), SettlementDate(date(2024, 1, 1), 5))
}
