package financesim

import (
	"time"

	"github.com/rs/zerolog"
)

// Clock 提供可替换的时间源
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// HolidayProvider 提供节假日判断
type HolidayProvider interface {
	IsHoliday(t time.Time) bool
}

// WeekendHolidayProvider 默认只把周末视为非结算日
type WeekendHolidayProvider struct{}

func (WeekendHolidayProvider) IsHoliday(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CalendarHolidayProvider 周末加上指定日期（yyyy-mm-dd）
type CalendarHolidayProvider map[string]bool

func (c CalendarHolidayProvider) IsHoliday(t time.Time) bool {
	if c[t.Format("2006-01-02")] {
		return true
	}
	return WeekendHolidayProvider{}.IsHoliday(t)
}

// Config 运行时配置
type Config struct {
	RoundStrategy RoundStrategy
	Holiday       HolidayProvider
	Clock         Clock
	Roll          RollConvention
	Logger        *zerolog.Logger
}

var cfg = defaultConfig()

func defaultConfig() Config {
	nop := zerolog.Nop()
	return Config{
		RoundStrategy: BankRound,
		Holiday:       WeekendHolidayProvider{},
		Clock:         systemClock{},
		Roll:          Unadjusted,
		Logger:        &nop,
	}
}

// Start 初始化运行时配置，未设置的字段使用默认依赖。
func Start(c Config) error {
	d := defaultConfig()
	if c.Clock == nil {
		c.Clock = d.Clock
	}
	if c.RoundStrategy == nil {
		c.RoundStrategy = d.RoundStrategy
	}
	if c.Holiday == nil {
		c.Holiday = d.Holiday
	}
	if c.Roll == "" {
		c.Roll = d.Roll
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	switch c.Roll {
	case Unadjusted, Following, Preceding, ModFollow:
	default:
		return newConfigError("roll_convention", string(c.Roll), "unknown roll convention")
	}
	cfg = c
	return nil
}

// Reset 恢复默认运行时配置，主要给测试使用
func Reset() {
	cfg = defaultConfig()
}

func logger() *zerolog.Logger {
	return cfg.Logger
}
