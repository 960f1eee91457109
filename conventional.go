package financesim

import (
	"strconv"
	"time"
)

// ConventionalParams 固定利息（复利）融资参数
type ConventionalParams struct {
	Business
	InterestRate Decimal    // 每个 PeriodType 期别的利率
	LoanPeriod   int        // 贷款期限，单位 PeriodType
	PeriodType   PeriodType // 默认 YEAR
	RepayType    RepayType  // 默认 FLAT_COMPOUND
	DayCountConv DayCountConv
}

// ConventionalFinancingModel 每月固定偿还债务，与经营盈亏无关
type ConventionalFinancingModel struct {
	params ConventionalParams
	plan   Plan
}

func NewConventionalFinancingModel(p ConventionalParams) (*ConventionalFinancingModel, error) {
	if p.PeriodType == "" {
		p.PeriodType = PeriodYear
	}
	if p.RepayType == "" {
		p.RepayType = RepayTypeFlatCompound
	}
	if p.DayCountConv == "" {
		p.DayCountConv = BONDBASIS
	}
	if p.InterestRate.IsNegative() {
		return nil, newConfigError("interest_rate", p.InterestRate.String(), "must not be negative")
	}
	if p.LoanPeriod < 1 {
		return nil, newConfigError("loan_period", strconv.Itoa(p.LoanPeriod), "must be at least 1")
	}
	if p.PeriodType.MonthsPer() == 0 {
		return nil, &ConfigError{Field: "period_type", Value: string(p.PeriodType), Reason: "must be MONTH or YEAR", Err: ErrUnSupportPeriod}
	}
	if err := p.Business.validate(0); err != nil {
		return nil, err
	}
	plan, err := newPlan(p.InitialCapital, p.Business.startDate(), p)
	if err != nil {
		return nil, err
	}
	return &ConventionalFinancingModel{params: p, plan: plan}, nil
}

func newPlan(principal Decimal, start time.Time, p ConventionalParams) (Plan, error) {
	months := p.LoanPeriod * p.PeriodType.MonthsPer()
	plan := Plan{RepayType: p.RepayType, Months: months, Owed: principal}
	switch p.RepayType {
	case RepayTypeFlatCompound:
		plan.Owed = CompoundOwed(principal, int64(p.LoanPeriod), p.InterestRate)
		plan.Payment = FlatCompoundPayment(principal, int64(p.LoanPeriod), p.InterestRate, int64(months))
		return plan, nil
	case RepayTypeEqualInstallment, RepayTypeEqualPrincipal:
	default:
		return Plan{}, &ConfigError{Field: "repay_type", Value: string(p.RepayType), Reason: "unknown repay type", Err: ErrUnSupportRepayType}
	}
	rate, err := MonthlyRate(p.InterestRate, p.PeriodType, p.DayCountConv, start)
	if err != nil {
		return Plan{}, &ConfigError{Field: "day_count_conv", Value: string(p.DayCountConv), Reason: "unknown day count convention", Err: err}
	}
	plan.MonthlyRate = rate
	if p.RepayType == RepayTypeEqualInstallment {
		plan.Payment = AnnuityPayment(principal, int64(months), rate)
	} else {
		plan.Payment = EqualPrincipalPayment(principal, int64(months))
	}
	return plan, nil
}

func (m *ConventionalFinancingModel) Name() string { return "conventional" }

func (m *ConventionalFinancingModel) Business() *Business { return &m.params.Business }

func (m *ConventionalFinancingModel) Params() ConventionalParams { return m.params }

// Plan 放款时确定的还款计划
func (m *ConventionalFinancingModel) Plan() Plan { return m.plan }

func (m *ConventionalFinancingModel) Originate() Decimal { return m.plan.Owed }

// ApplyMonthlySettlement 月供（本金加利息）全额从利润中扣除，还清后不再扣款
func (m *ConventionalFinancingModel) ApplyMonthlySettlement(l *Ledger, mo *Month) {
	if !l.IsFullyPaid() {
		principal, interest := m.plan.Instalment(l.Balance)
		r := l.Repay(mo.Index, mo.Date, principal, interest)
		mo.Payment = r.Total()
		mo.Interest = r.Interest
	}
	mo.NetProfit = mo.Profit.Sub(mo.Payment).Sub(mo.Expenses)
}

// Overdue 第 0 月起算，已超过合同月数
func (m *ConventionalFinancingModel) Overdue(month int) bool {
	return month > m.plan.Months
}

// Simulate 见包级 Simulate
func (m *ConventionalFinancingModel) Simulate(timePeriod, gracePeriod int) (*Result, error) {
	return Simulate(m, timePeriod, gracePeriod)
}
