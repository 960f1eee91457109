package financesim

import (
	"github.com/shopspring/decimal"
)

// IslamicParams 穆达拉巴（利润共享）融资参数
type IslamicParams struct {
	Business
	BankFee   Decimal // 银行在放款额上的加成，loan = capital × (1 + fee)
	BankShare Decimal // 每月净利润中归银行的比例，用于冲减贷款
}

// IslamicFinancingModel 银行以分享实际净利润的方式回收贷款，亏损按同一比例分担
type IslamicFinancingModel struct {
	params IslamicParams
}

func NewIslamicFinancingModel(p IslamicParams) (*IslamicFinancingModel, error) {
	if p.BankFee.IsNegative() {
		return nil, newConfigError("bank_fee", p.BankFee.String(), "must not be negative")
	}
	if p.BankShare.IsNegative() || p.BankShare.GreaterThan(one) {
		return nil, newConfigError("bank_share", p.BankShare.String(), "must be within [0, 1]")
	}
	if err := p.Business.validate(0); err != nil {
		return nil, err
	}
	p.Business.startDate()
	return &IslamicFinancingModel{params: p}, nil
}

func (m *IslamicFinancingModel) Name() string { return "islamic" }

func (m *IslamicFinancingModel) Business() *Business { return &m.params.Business }

func (m *IslamicFinancingModel) Params() IslamicParams { return m.params }

func (m *IslamicFinancingModel) Originate() Decimal {
	return m.params.InitialCapital.Mul(one.Add(m.params.BankFee))
}

// ApplyMonthlySettlement 银行分得净利润的 BankShare 并全部用于还款；
// 还清所需之外的部分退回企业。亏损月银行分担亏损，但贷款余额不增加。
func (m *IslamicFinancingModel) ApplyMonthlySettlement(l *Ledger, mo *Month) {
	net := mo.Profit.Sub(mo.Expenses)
	if !l.IsFullyPaid() {
		share := net.Mul(m.params.BankShare)
		net = net.Sub(share)
		if share.IsPositive() {
			r := l.Repay(mo.Index, mo.Date, share, decimal.Zero)
			net = net.Add(share.Sub(r.Principal))
			share = r.Principal
		}
		mo.Payment = share
	}
	mo.NetProfit = net
}

// Overdue 利润共享没有固定期限
func (m *IslamicFinancingModel) Overdue(int) bool { return false }

// Simulate 见包级 Simulate
func (m *IslamicFinancingModel) Simulate(timePeriod, gracePeriod int) (*Result, error) {
	return Simulate(m, timePeriod, gracePeriod)
}
