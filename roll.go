package financesim

import (
	"time"
)

type HolidayFunc func(time.Time) bool

// SettlementDate 返回第 month 个模拟月（从 0 开始）的结算日。
// 每一期都从起始日按日历推算再跳期，跳期结果不会累积到下一期。
func SettlementDate(start time.Time, month int) time.Time {
	return settlementDate(start, month, cfg.Roll, cfg.Holiday.IsHoliday)
}

func settlementDate(start time.Time, month int, roll RollConvention, isHoliday HolidayFunc) time.Time {
	return applyRoll(addMonths(start, month), roll, isHoliday)
}

// addMonths 月末日期不溢出到下个月，1 月 31 日加一个月得到 2 月最后一天
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func applyRoll(t time.Time, roll RollConvention, isHoliday HolidayFunc) time.Time {
	switch roll {
	case Unadjusted:
		return t
	case Following:
		for isHoliday(t) {
			t = t.AddDate(0, 0, 1)
		}
		return t
	case Preceding:
		for isHoliday(t) {
			t = t.AddDate(0, 0, -1)
		}
		return t
	case ModFollow:
		origMonth := t.Month()
		t2 := t

		for isHoliday(t2) {
			t2 = t2.AddDate(0, 0, 1)
		}
		if t2.Month() != origMonth {
			t2 = t
			for isHoliday(t2) {
				t2 = t2.AddDate(0, 0, -1)
			}
		}
		return t2
	}
	return t
}
