package financesim

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Business 两种融资模式共用的经营参数
type Business struct {
	InitialCapital Decimal   // 银行放款，也是每月再投资的资金池
	CurrentCapital Decimal   // 企业自有资金，模拟过程中滚动
	ProfitMargin   Curve     // 每月投入资金的利润率
	Expenses       Curve     // 每月固定支出（业主工资）
	Reinvestment   Curve     // 每月从资金池取出投入经营的金额
	Dividend       Curve     // 正净利润中分给业主、不再投入的比例
	StartDate      time.Time // 第 0 月的结算日，为空时取 Clock
}

func (b *Business) validate(months int) error {
	if b.InitialCapital.IsNegative() {
		return newConfigError("initial_capital", b.InitialCapital.String(), "must not be negative")
	}
	for month := 0; month <= months; month++ {
		if err := b.validateMonth(month); err != nil {
			return err
		}
	}
	return nil
}

func (b *Business) validateMonth(month int) error {
	at := " (month " + strconv.Itoa(month) + ")"
	if v := b.ProfitMargin.At(month); v.IsNegative() {
		return newConfigError("profit_margin", v.String(), "must not be negative"+at)
	}
	if v := b.Expenses.At(month); v.IsNegative() {
		return newConfigError("expenses", v.String(), "must not be negative"+at)
	}
	if v := b.Reinvestment.At(month); v.IsNegative() {
		return newConfigError("reinvestment_amount", v.String(), "must not be negative"+at)
	}
	if v := b.Dividend.At(month); v.IsNegative() || v.GreaterThan(one) {
		return newConfigError("dividend_payment", v.String(), "must be within [0, 1]"+at)
	}
	return nil
}

func (b *Business) startDate() time.Time {
	if b.StartDate.IsZero() {
		y, m, d := cfg.Clock.Now().Date()
		b.StartDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return b.StartDate
}

// Ledger 单次模拟的可变状态：资金池、自有资金与贷款余额
type Ledger struct {
	Pool       Decimal // 尚未投入经营的放款
	Capital    Decimal
	Originated Decimal // 放款时的应还总额
	Balance    Decimal
	Repayments []Repayment
}

func newLedger(b *Business, owed Decimal) *Ledger {
	return &Ledger{
		Pool:       b.InitialCapital,
		Capital:    b.CurrentCapital,
		Originated: owed,
		Balance:    owed,
	}
}

// Draw 从资金池取出本月再投资额，返回连同自有资金在内的本月投入。
// 资金池不足时把剩余部分全部投入。
func (l *Ledger) Draw(reinvestment Decimal) Decimal {
	if l.Pool.Sub(reinvestment).IsNegative() {
		investment := l.Pool.Add(l.Capital)
		l.Pool = decimal.Zero
		return investment
	}
	l.Pool = l.Pool.Sub(reinvestment)
	return reinvestment.Add(l.Capital)
}

// IsFullyPaid 是否结清
func (l *Ledger) IsFullyPaid() bool {
	return !l.Balance.IsPositive()
}

// LoanPaid 累计还款（本金加利息）
func (l *Ledger) LoanPaid() Decimal {
	sum := decimal.Zero
	for _, r := range l.Repayments {
		sum = sum.Add(r.Total())
	}
	return sum
}

// InterestPaid 累计利息
func (l *Ledger) InterestPaid() Decimal {
	sum := decimal.Zero
	for _, r := range l.Repayments {
		sum = sum.Add(r.Interest)
	}
	return sum
}

func (l *Ledger) AddRepayment(r Repayment) {
	l.Repayments = append(l.Repayments, r)
}
