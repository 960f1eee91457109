package financesim

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repayment 一笔实际发生的还款（按月记录）
type Repayment struct {
	Month     int
	RepayAt   time.Time
	Principal Decimal // 冲减贷款余额的部分
	Interest  Decimal
	Balance   Decimal // 还款后的余额
}

func (r Repayment) Total() Decimal {
	return r.Principal.Add(r.Interest)
}

// Repay 用 principal 冲减余额并记录还款。
// 超过余额的部分不收取；还款后余额小于结算容差时一并结清。
func (l *Ledger) Repay(month int, at time.Time, principal, interest Decimal) Repayment {
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	if principal.GreaterThan(l.Balance) {
		principal = l.Balance
	}
	balance := l.Balance.Sub(principal)
	if balance.LessThan(settlementTolerance) {
		principal = l.Balance
		balance = decimal.Zero
	}
	l.Balance = balance
	r := Repayment{
		Month:     month,
		RepayAt:   at,
		Principal: principal,
		Interest:  interest,
		Balance:   balance,
	}
	if !r.Total().IsZero() {
		l.AddRepayment(r)
	}
	return r
}
