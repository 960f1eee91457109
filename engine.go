package financesim

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type Plugin interface {
	Name() string
	BeforeSimulate(ctx *SimContext) error
	AfterSimulate(ctx *SimContext) error
}

type Plugins []Plugin

// SimContext 单次模拟的上下文，插件可在 Params 中传递数据
type SimContext struct {
	Context context.Context
	Model   Model
	Window  Window
	Result  *Result
	Params  map[string]any
}

// Engine 统一入口：按名称登记融资模式并运行
type Engine struct {
	handlers map[string]*handler
	order    []string
}

type handler struct {
	model        Model
	plugins      Plugins
	simulateFunc func(ctx *SimContext) (*Result, error)
}

func NewEngine(c Config) (*Engine, error) {
	err := Start(c)
	return &Engine{handlers: make(map[string]*handler)}, err
}

// Register 绑定融资模式与插件链，同名模式会被替换
func (e *Engine) Register(m Model, plugins ...Plugin) {
	h := &handler{model: m}
	if len(plugins) > 0 {
		h.plugins = append(h.plugins, plugins...)
	}
	h.simulateFunc = func(ctx *SimContext) (*Result, error) {
		return Simulate(ctx.Model, ctx.Window.TimePeriod, ctx.Window.GracePeriod)
	}
	if _, ok := e.handlers[m.Name()]; !ok {
		e.order = append(e.order, m.Name())
	}
	e.handlers[m.Name()] = h
}

// use 已登记同名模式时只替换模式本身，保留插件链
func (e *Engine) use(m Model) {
	if h, ok := e.handlers[m.Name()]; ok {
		h.model = m
		return
	}
	e.Register(m)
}

// Models 按登记顺序返回模式名称
func (e *Engine) Models() []string {
	return append([]string(nil), e.order...)
}

// Run 运行指定模式
func (e *Engine) Run(ctx context.Context, name string, w Window) (*Result, error) {
	h, ok := e.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc := &SimContext{Context: ctx, Model: h.model, Window: w, Params: map[string]any{}}
	for _, p := range h.plugins {
		if err := p.BeforeSimulate(sc); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
	}
	result, err := h.simulateFunc(sc)
	if err != nil {
		return nil, err
	}
	sc.Result = result
	for i := len(h.plugins) - 1; i >= 0; i-- {
		if err := h.plugins[i].AfterSimulate(sc); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", h.plugins[i].Name(), err)
		}
	}
	return result, nil
}

// RunAll 依登记顺序运行全部模式，遇到错误立即返回
func (e *Engine) RunAll(ctx context.Context, w Window) ([]*Result, error) {
	results := make([]*Result, 0, len(e.order))
	for _, name := range e.order {
		r, err := e.Run(ctx, name, w)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// SetSimulateFunc 允许为指定模式自定义核心流程
func (e *Engine) SetSimulateFunc(name string, fn func(ctx *SimContext) (*Result, error)) error {
	h, ok := e.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrModelNotRegistered, name)
	}
	if fn != nil {
		h.simulateFunc = fn
	}
	return nil
}

// Comparison 同一窗口下两种融资模式的结果
type Comparison struct {
	Window       Window
	Islamic      *Result
	Conventional *Result
}

// Compare 用相同的模拟窗口运行两种模式
func (e *Engine) Compare(ctx context.Context, islamic *IslamicFinancingModel, conventional *ConventionalFinancingModel, w Window) (*Comparison, error) {
	e.use(islamic)
	e.use(conventional)
	ir, err := e.Run(ctx, islamic.Name(), w)
	if err != nil {
		return nil, err
	}
	cr, err := e.Run(ctx, conventional.Name(), w)
	if err != nil {
		return nil, err
	}
	return &Comparison{Window: w, Islamic: ir, Conventional: cr}, nil
}

// Preferred 返回更可取的模式：只有一方成功时取成功方，都成功取更早还清者，
// 否则取期末自有资金更多者
func (c *Comparison) Preferred() *Result {
	i, v := c.Islamic, c.Conventional
	switch {
	case i.Status == StatusSuccess && v.Status != StatusSuccess:
		return i
	case v.Status == StatusSuccess && i.Status != StatusSuccess:
		return v
	case i.Status == StatusSuccess && i.Months != v.Months:
		if i.Months < v.Months {
			return i
		}
		return v
	}
	if v.Reinvested.GreaterThan(i.Reinvested) {
		return v
	}
	return i
}

// LogPlugin 把每次模拟的起止写入日志
type LogPlugin struct {
	Logger zerolog.Logger
}

func (LogPlugin) Name() string { return "log" }

func (p LogPlugin) BeforeSimulate(ctx *SimContext) error {
	ctx.Params["log.started"] = cfg.Clock.Now()
	p.Logger.Info().
		Str("model", ctx.Model.Name()).
		Int("time_period", ctx.Window.TimePeriod).
		Int("grace_period", ctx.Window.GracePeriod).
		Msg("running simulation")
	return nil
}

func (p LogPlugin) AfterSimulate(ctx *SimContext) error {
	ev := p.Logger.Info().
		Str("model", ctx.Model.Name()).
		Str("status", string(ctx.Result.Status)).
		Int("months", ctx.Result.Months).
		Str("loan_remaining", ctx.Result.LoanRemaining.StringFixed(2)).
		Str("reinvested", ctx.Result.Reinvested.StringFixed(2))
	if started, ok := ctx.Params["log.started"].(time.Time); ok {
		ev = ev.Dur("elapsed", cfg.Clock.Now().Sub(started))
	}
	ev.Msg("simulation complete")
	return nil
}
