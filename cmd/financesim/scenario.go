package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/riskmanagement123/financesim"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// setDefaults 默认值即参考运行的参数
func setDefaults(v *viper.Viper) {
	v.SetDefault("business.initial_capital", "50000")
	v.SetDefault("business.current_capital", "0")
	v.SetDefault("business.profit_margin", "0.25")
	v.SetDefault("business.expenses", "2000")
	v.SetDefault("business.reinvestment_amount", "2000")
	v.SetDefault("business.dividend_payment", "0")
	v.SetDefault("business.start_date", "")

	v.SetDefault("islamic.bank_fee", "0.25")
	v.SetDefault("islamic.bank_share", "0.12")

	v.SetDefault("conventional.interest_rate", "0.012")
	v.SetDefault("conventional.loan_period", 1)
	v.SetDefault("conventional.period_type", string(financesim.PeriodYear))
	v.SetDefault("conventional.repay_type", string(financesim.RepayTypeFlatCompound))
	v.SetDefault("conventional.day_count", string(financesim.BONDBASIS))

	v.SetDefault("simulation.time_period", 50)
	v.SetDefault("simulation.grace_period", 10)
	v.SetDefault("simulation.roll", string(financesim.Unadjusted))

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.pretty", true)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.trace", false)
}

// scenario 从配置文件、环境变量与命令行参数合并出的一次模拟输入
type scenario struct {
	islamic      financesim.IslamicParams
	conventional financesim.ConventionalParams
	window       financesim.Window
}

func loadScenario(v *viper.Viper) (*scenario, error) {
	var errs []string
	num := func(key string) decimal.Decimal {
		raw := strings.TrimSpace(v.GetString(key))
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a number", key, raw))
			return decimal.Zero
		}
		return d
	}

	b := financesim.Business{
		InitialCapital: num("business.initial_capital"),
		CurrentCapital: num("business.current_capital"),
		ProfitMargin:   financesim.Constant(num("business.profit_margin")),
		Expenses:       financesim.Constant(num("business.expenses")),
		Reinvestment:   financesim.Constant(num("business.reinvestment_amount")),
		Dividend:       financesim.Constant(num("business.dividend_payment")),
	}
	if raw := v.GetString("business.start_date"); raw != "" {
		start, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("business.start_date: %q is not a yyyy-mm-dd date", raw))
		}
		b.StartDate = start
	}

	s := &scenario{
		islamic: financesim.IslamicParams{
			Business:  b,
			BankFee:   num("islamic.bank_fee"),
			BankShare: num("islamic.bank_share"),
		},
		conventional: financesim.ConventionalParams{
			Business:     b,
			InterestRate: num("conventional.interest_rate"),
			LoanPeriod:   v.GetInt("conventional.loan_period"),
			PeriodType:   financesim.PeriodType(strings.ToUpper(v.GetString("conventional.period_type"))),
			RepayType:    financesim.RepayType(strings.ToUpper(v.GetString("conventional.repay_type"))),
			DayCountConv: financesim.DayCountConv(strings.ToUpper(v.GetString("conventional.day_count"))),
		},
		window: financesim.Window{
			TimePeriod:  v.GetInt("simulation.time_period"),
			GracePeriod: v.GetInt("simulation.grace_period"),
		},
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", financesim.ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return s, nil
}

func (s *scenario) islamicModel() (*financesim.IslamicFinancingModel, error) {
	return financesim.NewIslamicFinancingModel(s.islamic)
}

func (s *scenario) conventionalModel() (*financesim.ConventionalFinancingModel, error) {
	return financesim.NewConventionalFinancingModel(s.conventional)
}
