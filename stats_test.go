package financesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_IslamicReferenceRun(t *testing.T) {
	r, err := referenceIslamic(t).Simulate(50, 10)
	require.NoError(t, err)

	s := Summarize(r)
	assert.Equal(t, 11, s.Months)
	assert.Equal(t, 4, s.LossMonths)
	assertDecimal(t, "680", s.MinCapital)
	assertDecimal(t, r.Reinvested.String(), s.MaxCapital)
	assert.Greater(t, s.StdDevNetProfit, 0.0)

	var total float64
	for _, m := range r.Trace {
		total += m.NetProfit.InexactFloat64()
	}
	assert.InDelta(t, total/11, s.MeanNetProfit, 1e-6)
}

func TestSummarize_DebtServiceIncludesSharedLosses(t *testing.T) {
	r, err := referenceIslamic(t).Simulate(50, 10)
	require.NoError(t, err)

	s := Summarize(r)
	// 前 4 个月银行分担的亏损使付款合计小于贷款总额
	assert.True(t, s.DebtService.LessThan(r.LoanPaid))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Months)
	assert.True(t, s.MinCapital.IsZero())

	s = Summarize(&Result{})
	assert.Zero(t, s.Months)
	assert.Zero(t, s.StdDevNetProfit)
}

func TestSummarize_SingleMonth(t *testing.T) {
	r := &Result{Trace: []Month{{NetProfit: d("-10"), Capital: d("5"), Profit: d("2"), Payment: d("1")}}}
	s := Summarize(r)
	assert.Equal(t, 1, s.Months)
	assert.Equal(t, 1, s.LossMonths)
	assert.Equal(t, -10.0, s.MeanNetProfit)
	assert.Zero(t, s.StdDevNetProfit)
	assertDecimal(t, "5", s.MinCapital)
	assertDecimal(t, "2", s.TotalProfit)
	assertDecimal(t, "1", s.DebtService)
}
