package financesim

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Model 一种融资模式。Simulate 负责月度循环与终止判断，
// 各模式只实现本月与银行的结算。
type Model interface {
	Name() string
	Business() *Business
	// Originate 放款，返回第 0 月的应还总额
	Originate() Decimal
	// ApplyMonthlySettlement 根据本月利润与银行结算，填写 Payment/Interest/NetProfit
	ApplyMonthlySettlement(l *Ledger, m *Month)
	// Overdue 合同期限已过仍未成功退出
	Overdue(month int) bool
}

// Month 单月模拟记录
type Month struct {
	Index        int
	Date         time.Time
	Pool         Decimal // 月初资金池
	StartCapital Decimal // 月初自有资金
	Investment   Decimal
	ProfitMargin Decimal
	Profit       Decimal
	Expenses     Decimal
	Payment      Decimal // 付给银行的金额；伊斯兰模式亏损月为负，表示银行分担的亏损
	Interest     Decimal
	NetProfit    Decimal
	Dividend     Decimal // 分给业主的金额
	Capital      Decimal // 月末自有资金
	LoanBalance  Decimal
}

// Window 模拟窗口
type Window struct {
	TimePeriod  int `json:"time_period"`
	GracePeriod int `json:"grace_period"`
}

func (w Window) validate() error {
	if w.TimePeriod < 1 {
		return newConfigError("time_period", strconv.Itoa(w.TimePeriod), "must be at least 1")
	}
	if w.GracePeriod < 0 || w.GracePeriod > w.TimePeriod {
		return newConfigError("grace_period", strconv.Itoa(w.GracePeriod), "must be within [0, time_period]")
	}
	return nil
}

// Result 模拟结束时的结果，生成后不再修改
type Result struct {
	Model          string      `json:"model"`
	Status         Status      `json:"status"`
	Months         int         `json:"months"`
	NetProfit      Decimal     `json:"net_profit"` // 累计净利润
	Reinvested     Decimal     `json:"reinvested"` // 月末自有资金
	LoanRemaining  Decimal     `json:"loan_remaining"`
	FinalNetProfit Decimal     `json:"final_net_profit"`
	FinalProfit    Decimal     `json:"final_profit"`
	FinalPayment   Decimal     `json:"final_payment"`
	LoanOriginated Decimal     `json:"loan_originated"`
	LoanPaid       Decimal     `json:"loan_paid"`
	InterestPaid   Decimal     `json:"interest_paid"`
	WithinGrace    bool        `json:"within_grace"`
	Window         Window      `json:"window"`
	Trace          []Month     `json:"trace,omitempty"`
	Repayments     []Repayment `json:"repayments,omitempty"`
}

// Tuple 返回 (status, months, net profit, reinvested, loan remaining)
func (r *Result) Tuple() (Status, int, Decimal, Decimal, Decimal) {
	return r.Status, r.Months, r.NetProfit, r.Reinvested, r.LoanRemaining
}

// Simulate 从第 0 月推进到 timePeriod 月，直到贷款还清、宽限期后亏损或时间用尽。
// 每次调用都从配置重新建账，相同配置得到相同结果。
func Simulate(model Model, timePeriod, gracePeriod int) (*Result, error) {
	w := Window{TimePeriod: timePeriod, GracePeriod: gracePeriod}
	if err := w.validate(); err != nil {
		return nil, err
	}
	b := model.Business()
	if err := b.validate(timePeriod); err != nil {
		return nil, err
	}
	start := b.startDate()
	l := newLedger(b, model.Originate())
	log := logger().With().Str("model", model.Name()).Logger()
	log.Debug().
		Str("capital", b.InitialCapital.StringFixed(2)).
		Str("loan", l.Originated.StringFixed(2)).
		Int("time_period", timePeriod).
		Int("grace_period", gracePeriod).
		Msg("simulation started")

	trace := make([]Month, 0, timePeriod+1)
	cumulative := decimal.Zero
	status := StatusTimeout
	var m Month
	for month := 0; month <= timePeriod; month++ {
		m = Month{
			Index:        month,
			Date:         SettlementDate(start, month),
			Pool:         l.Pool,
			StartCapital: l.Capital,
			ProfitMargin: b.ProfitMargin.At(month),
			Expenses:     b.Expenses.At(month),
			Payment:      decimal.Zero,
			Interest:     decimal.Zero,
			Dividend:     decimal.Zero,
		}
		m.Investment = l.Draw(b.Reinvestment.At(month))
		m.Profit = m.Investment.Mul(m.ProfitMargin)

		model.ApplyMonthlySettlement(l, &m)

		retained := m.NetProfit
		if m.NetProfit.IsPositive() {
			m.Dividend = m.NetProfit.Mul(b.Dividend.At(month))
			retained = m.NetProfit.Sub(m.Dividend)
		}
		l.Capital = l.Capital.Add(retained).Add(m.Investment)
		m.Capital = l.Capital
		m.LoanBalance = l.Balance
		cumulative = cumulative.Add(m.NetProfit)
		trace = append(trace, m)

		log.Debug().
			Int("month", month).
			Str("invested", m.Investment.StringFixed(2)).
			Str("profit", m.Profit.StringFixed(2)).
			Str("payment", m.Payment.StringFixed(2)).
			Str("net_profit", m.NetProfit.StringFixed(2)).
			Str("loan", m.LoanBalance.StringFixed(2)).
			Str("capital", m.Capital.StringFixed(2)).
			Msg("month settled")

		if s, done := terminate(model, l, &m, month, w); done {
			status = s
			break
		}
	}

	r := &Result{
		Model:          model.Name(),
		Status:         status,
		Months:         m.Index,
		NetProfit:      Money(cumulative),
		Reinvested:     Money(l.Capital),
		LoanRemaining:  Money(l.Balance),
		FinalNetProfit: Money(m.NetProfit),
		FinalProfit:    Money(m.Profit),
		FinalPayment:   Money(m.Payment),
		LoanOriginated: Money(l.Originated),
		LoanPaid:       Money(l.LoanPaid()),
		InterestPaid:   Money(l.InterestPaid()),
		WithinGrace:    m.Index <= gracePeriod,
		Window:         w,
		Trace:          trace,
		Repayments:     l.Repayments,
	}
	log.Debug().
		Str("status", string(r.Status)).
		Int("months", r.Months).
		Str("loan_remaining", r.LoanRemaining.StringFixed(2)).
		Msg("simulation finished")
	return r, nil
}

// terminate 按优先级判断：还清且有盈余 → 成功；宽限期内容忍亏损；
// 宽限期起仍亏损 → 失败；超过合同期或模拟期 → 超时。
func terminate(model Model, l *Ledger, m *Month, month int, w Window) (Status, bool) {
	solvent := m.NetProfit.IsPositive() || m.Capital.IsPositive()
	if l.IsFullyPaid() && solvent {
		return StatusSuccess, true
	}
	if month >= w.GracePeriod && (m.NetProfit.IsNegative() || m.Capital.IsNegative()) {
		return StatusFail, true
	}
	if model.Overdue(month) {
		return StatusTimeout, true
	}
	if month == w.TimePeriod {
		return StatusTimeout, true
	}
	return "", false
}
