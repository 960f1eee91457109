package financesim

import (
	"time"

	"github.com/shopspring/decimal"
)

type dayCounter func(start, end time.Time) (days int, basis decimal.Decimal)

var dayCounters = map[DayCountConv]dayCounter{
	BONDBASIS:   days360US,
	EUROBOND:    days360E,
	MONEYMARKET: daysActual(decimal.NewFromInt(360)),
	FIXED:       daysActual(decimal.NewFromInt(365)),
	ISDA:        daysActActISDA,
	AFB:         daysActual(decimal.NewFromFloat(365.25)),
}

// MonthlyRate converts a rate quoted per period into the rate applied to one
// simulated month. Monthly rates pass through untouched; yearly rates are
// scaled by the year fraction of the month starting at start.
func MonthlyRate(rate Decimal, pt PeriodType, conv DayCountConv, start time.Time) (Decimal, error) {
	switch pt {
	case PeriodMonth:
		return rate, nil
	case PeriodYear:
	default:
		return decimal.Zero, ErrUnSupportPeriod
	}
	// 以月初为基准，避免月末日期在 30/360 下多算天数
	y, m, _ := start.Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	frac, err := YearFraction(from, from.AddDate(0, 1, 0), conv)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(frac), nil
}

// YearFraction returns the fraction of a year between start and end under conv.
func YearFraction(start, end time.Time, conv DayCountConv) (Decimal, error) {
	counter, ok := dayCounters[conv]
	if !ok {
		return decimal.Zero, ErrUnSupportDayCount
	}
	days, basis := counter(start, end)
	return decimal.NewFromInt(int64(days)).Div(basis), nil
}

// -------------------- 30/360 U.S. (Bond Basis) --------------------

// days360US: if d1==31 → d1=30; if d2==31 && d1>=30 → d2=30
func days360US(start, end time.Time) (int, decimal.Decimal) {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return (y2-y1)*360 + int(m2-m1)*30 + (d2 - d1), decimal.NewFromInt(360)
}

// -------------------- 30E/360 (Eurobond) --------------------

func days360E(start, end time.Time) (int, decimal.Decimal) {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	d1 = min(d1, 30)
	d2 = min(d2, 30)
	return (y2-y1)*360 + int(m2-m1)*30 + (d2 - d1), decimal.NewFromInt(360)
}

func daysActual(basis decimal.Decimal) dayCounter {
	return func(start, end time.Time) (int, decimal.Decimal) {
		return actualDays(start, end), basis
	}
}

// daysActActISDA uses the year length of the year start falls in.
func daysActActISDA(start, end time.Time) (int, decimal.Decimal) {
	return actualDays(start, end), decimal.NewFromInt(int64(YearDays(start)))
}

func actualDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// YearDays returns 366 if t is in a leap year, else 365
func YearDays(t time.Time) int {
	yy := t.Year()
	if yy%4 != 0 {
		return 365
	}
	if yy%100 != 0 {
		return 366
	}
	if yy%400 == 0 {
		return 366
	}
	return 365
}
