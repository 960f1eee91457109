package financesim

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Curve 随模拟月份变化的参数（利润率、费用、再投资额、分红比例）
type Curve func(month int) Decimal

// At 返回第 month 月的取值，nil 视为 0
func (c Curve) At(month int) Decimal {
	if c == nil {
		return decimal.Zero
	}
	return c(month)
}

// Constant 不随时间变化的参数
func Constant(v Decimal) Curve {
	return func(int) Decimal { return v }
}

// Steps 从 base 开始，到 changes 中的月份切换为新值并保持
func Steps(base Decimal, changes map[int]Decimal) Curve {
	months := make([]int, 0, len(changes))
	values := make(map[int]Decimal, len(changes))
	for m, v := range changes {
		months = append(months, m)
		values[m] = v
	}
	sort.Ints(months)
	return func(month int) Decimal {
		v := base
		for _, m := range months {
			if m > month {
				break
			}
			v = values[m]
		}
		return v
	}
}
