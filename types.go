package financesim

import "github.com/shopspring/decimal"

type Decimal = decimal.Decimal

// RepayType 常规贷款的还款方式
type RepayType string

// PeriodType 贷款期限与利率的计量单位
type PeriodType string

type RoundStrategy = func(decimal decimal.Decimal) decimal.Decimal

type DayCountConv string

type RollConvention string

// Status 模拟终止状态
type Status string

const (
	StatusSuccess Status = "SUCCESS" // 贷款还清且经营有盈余
	StatusFail    Status = "FAIL"    // 宽限期后仍亏损：LOSS MODEL
	StatusTimeout Status = "TIMEOUT" // 模拟期或贷款期用尽仍未还清
)

// Code returns the numeric status used by the reporting notebooks: 1 success,
// 2 loss model, 3 time exhausted.
func (s Status) Code() int {
	switch s {
	case StatusSuccess:
		return 1
	case StatusFail:
		return 2
	case StatusTimeout:
		return 3
	}
	return 0
}

func (s Status) Reason() string {
	switch s {
	case StatusFail:
		return "Business is a LOSS MODEL"
	case StatusTimeout:
		return "Maximum time period reached"
	}
	return ""
}

const (
	Unadjusted RollConvention = "UNADJUSTED"         //严格按日历算时间
	Following  RollConvention = "FOLLOWING"          //如果是节假日，向后挪
	Preceding  RollConvention = "PRECEDING"          //如果是节假日，向前挪
	ModFollow  RollConvention = "MODIFIED_FOLLOWING" //如果是节假日，向后挪，但如果跨月就向前挪
)

const (
	BONDBASIS   DayCountConv = "BONDBASIS"
	EUROBOND    DayCountConv = "EUROBOND"
	MONEYMARKET DayCountConv = "MONEYMARKET"
	FIXED       DayCountConv = "FIXED"
	ISDA        DayCountConv = "ISDA"
	AFB         DayCountConv = "AFB"
)

const (
	RepayTypeFlatCompound     RepayType = "FLAT_COMPOUND"     // 复利总额按月平摊
	RepayTypeEqualInstallment RepayType = "EQUAL_INSTALLMENT" // 等额本息
	RepayTypeEqualPrincipal   RepayType = "EQUAL_PRINCIPAL"   // 等额本金
)

const (
	PeriodMonth PeriodType = "MONTH"
	PeriodYear  PeriodType = "YEAR"
)

// MonthsPer 返回一个期别包含的月数
func (p PeriodType) MonthsPer() int {
	switch p {
	case PeriodMonth:
		return 1
	case PeriodYear:
		return 12
	}
	return 0
}

var BankRound = func(d decimal.Decimal) decimal.Decimal { return d.RoundBank(2) }

// Money 金额输出辅助，使用运行时舍入策略
func Money(d decimal.Decimal) decimal.Decimal {
	return cfg.RoundStrategy(d)
}

// settlementTolerance 余额低于半分视为已结清
var settlementTolerance = decimal.New(5, -3)
