package financesim

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// CompoundOwed 复利到期总额 principal × (1+rate)^periods
func CompoundOwed(principal Decimal, periods int64, rate Decimal) Decimal {
	return principal.Mul(rate.Add(one).Pow(decimal.NewFromInt(periods)))
}

// FlatCompoundPayment 把复利到期总额平摊到 months 个月
func FlatCompoundPayment(principal Decimal, periods int64, rate Decimal, months int64) Decimal {
	return CompoundOwed(principal, periods, rate).Div(decimal.NewFromInt(months))
}

// AnnuityPayment 等额本息月供；零利率时退化为本金平摊
func AnnuityPayment(principal Decimal, periods int64, rate Decimal) Decimal {
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(periods))
	}
	base1r := rate.Add(one)
	base1rn := base1r.Pow(decimal.NewFromInt(periods))

	numerator := principal.Mul(base1rn).Mul(rate)
	denominator := base1rn.Sub(one)
	return numerator.Div(denominator)
}

// EqualPrincipalPayment 等额本金每期应还本金
func EqualPrincipalPayment(principal Decimal, periods int64) Decimal {
	return principal.Div(decimal.NewFromInt(periods))
}

// Plan 常规贷款放款时确定的还款计划
type Plan struct {
	RepayType   RepayType
	Owed        Decimal // 放款时的应还总额（FLAT_COMPOUND 含全部利息）
	Payment     Decimal // FLAT_COMPOUND/EQUAL_INSTALLMENT 为月供，EQUAL_PRINCIPAL 为每月本金
	MonthlyRate Decimal
	Months      int
}

// Instalment 按当前余额拆分本期的本金与利息
func (p Plan) Instalment(balance Decimal) (principal, interest Decimal) {
	switch p.RepayType {
	case RepayTypeEqualInstallment:
		interest = balance.Mul(p.MonthlyRate)
		principal = decimal.Max(decimal.Zero, p.Payment.Sub(interest))
	case RepayTypeEqualPrincipal:
		interest = balance.Mul(p.MonthlyRate)
		principal = p.Payment
	default:
		interest = decimal.Zero
		principal = p.Payment
	}
	return principal, interest
}
