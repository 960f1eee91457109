package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/riskmanagement123/financesim"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type reporter struct {
	w     io.Writer
	trace bool
}

func newReporter(w io.Writer, trace bool) *reporter {
	return &reporter{w: w, trace: trace}
}

type modelReport struct {
	*financesim.Result
	Summary financesim.Summary `json:"summary"`
}

type comparisonReport struct {
	Window       financesim.Window `json:"window"`
	Islamic      modelReport       `json:"islamic"`
	Conventional modelReport       `json:"conventional"`
	Preferred    string            `json:"preferred"`
}

func (r *reporter) single(format string, m financesim.Model, res *financesim.Result) error {
	switch format {
	case "json":
		return r.json(r.modelReport(res))
	case "text":
		r.text(m, res)
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func (r *reporter) comparison(format string, c *financesim.Comparison, im, cm financesim.Model) error {
	switch format {
	case "json":
		return r.json(comparisonReport{
			Window:       c.Window,
			Islamic:      r.modelReport(c.Islamic),
			Conventional: r.modelReport(c.Conventional),
			Preferred:    c.Preferred().Model,
		})
	case "text":
		r.text(im, c.Islamic)
		r.text(cm, c.Conventional)
		fmt.Fprintf(r.w, "%s %s\n", titleStyle.Render("Preferred financing:"), strings.ToUpper(c.Preferred().Model))
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func (r *reporter) modelReport(res *financesim.Result) modelReport {
	summary := financesim.Summarize(res)
	if !r.trace {
		trimmed := *res
		trimmed.Trace = nil
		trimmed.Repayments = nil
		res = &trimmed
	}
	return modelReport{Result: res, Summary: summary}
}

func (r *reporter) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// text 控制台报告，与 notebook 输出保持同样的信息
func (r *reporter) text(m financesim.Model, res *financesim.Result) {
	title, loanLabel, paymentLabel := labels(m)
	b := m.Business()

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render(title))
	fmt.Fprintf(r.w, "Bank Capital: %s | Bank Loan (%s): %s\n",
		money(b.InitialCapital), loanLabel, money(res.LoanOriginated))

	if r.trace {
		r.table(res)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, mutedStyle.Render("---------END OF SIMULATION----------"))
	status := "Status: " + string(res.Status)
	if reason := res.Status.Reason(); reason != "" {
		status += " | " + reason
	}
	if res.Status == financesim.StatusSuccess {
		fmt.Fprintln(r.w, successStyle.Render(status))
	} else {
		fmt.Fprintln(r.w, failStyle.Render(status))
	}
	grace := "After"
	if res.WithinGrace {
		grace = "Within"
	}
	fmt.Fprintf(r.w, "Total period of payment t = %d months | %s grace period\n\n", res.Months, grace)
	fmt.Fprintf(r.w, "Loan Remaining: %s | Loan Paid: %s\n", money(res.LoanRemaining), money(res.LoanPaid))
	fmt.Fprintf(r.w, "Profit made (@%s): %s | %s: %s | Net profit: %s\n",
		percent(b.ProfitMargin.At(res.Months)), money(res.FinalProfit),
		paymentLabel, money(res.FinalPayment), money(res.FinalNetProfit))
	fmt.Fprintf(r.w, "Amount Reinvested: %s\n", money(res.Reinvested))

	s := financesim.Summarize(res)
	fmt.Fprintln(r.w, mutedStyle.Render(fmt.Sprintf(
		"Mean net profit: %s | Std dev: %s | Loss months: %d | Min capital: %s",
		humanize.FormatFloat("#,###.##", s.MeanNetProfit),
		humanize.FormatFloat("#,###.##", s.StdDevNetProfit),
		s.LossMonths, money(s.MinCapital))))
}

func (r *reporter) table(res *financesim.Result) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
		headerStyle.Render("t"),
		headerStyle.Render("Date"),
		headerStyle.Render("Invested"),
		headerStyle.Render("Profit"),
		headerStyle.Render("Bank"),
		headerStyle.Render("Net profit"),
		headerStyle.Render("Loan"),
		headerStyle.Render("Capital"))
	for _, m := range res.Trace {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			m.Index,
			m.Date.Format("2006-01-02"),
			money(m.Investment),
			money(m.Profit),
			money(m.Payment),
			money(m.NetProfit),
			money(m.LoanBalance),
			money(m.Capital))
	}
}

func labels(m financesim.Model) (title, loan, payment string) {
	switch v := m.(type) {
	case *financesim.IslamicFinancingModel:
		p := v.Params()
		return "ISLAMIC BANK SIMULATION", "@" + percent(p.BankFee),
			"Final bank payment (@" + percent(p.BankShare) + ")"
	case *financesim.ConventionalFinancingModel:
		p := v.Params()
		return "CONVENTIONAL BANK SIMULATION", "@" + percent(p.InterestRate),
			"Final bank payment (@" + percent(p.InterestRate) + ")"
	}
	name := strings.ToUpper(m.Name())
	return name + " BANK SIMULATION", "owed", "Final bank payment"
}

func money(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
