package financesim

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Summary 基于逐月记录的统计摘要
type Summary struct {
	Months          int     `json:"months"`
	LossMonths      int     `json:"loss_months"`
	MeanNetProfit   float64 `json:"mean_net_profit"`
	StdDevNetProfit float64 `json:"stddev_net_profit"`
	MinCapital      Decimal `json:"min_capital"`
	MaxCapital      Decimal `json:"max_capital"`
	TotalProfit     Decimal `json:"total_profit"`
	DebtService     Decimal `json:"debt_service"` // 付给银行的合计，含伊斯兰模式分担的亏损
}

// Summarize 统计 Result.Trace；没有记录时返回零值
func Summarize(r *Result) Summary {
	s := Summary{
		MinCapital:  decimal.Zero,
		MaxCapital:  decimal.Zero,
		TotalProfit: decimal.Zero,
		DebtService: decimal.Zero,
	}
	if r == nil || len(r.Trace) == 0 {
		return s
	}
	net := make([]float64, len(r.Trace))
	s.MinCapital = r.Trace[0].Capital
	s.MaxCapital = r.Trace[0].Capital
	for i, m := range r.Trace {
		net[i] = m.NetProfit.InexactFloat64()
		if m.NetProfit.IsNegative() {
			s.LossMonths++
		}
		s.MinCapital = decimal.Min(s.MinCapital, m.Capital)
		s.MaxCapital = decimal.Max(s.MaxCapital, m.Capital)
		s.TotalProfit = s.TotalProfit.Add(m.Profit)
		s.DebtService = s.DebtService.Add(m.Payment)
	}
	s.Months = len(r.Trace)
	s.MeanNetProfit = stat.Mean(net, nil)
	if len(net) > 1 {
		s.StdDevNetProfit = stat.StdDev(net, nil)
	}
	s.MinCapital = Money(s.MinCapital)
	s.MaxCapital = Money(s.MaxCapital)
	s.TotalProfit = Money(s.TotalProfit)
	s.DebtService = Money(s.DebtService)
	return s
}
