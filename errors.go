package financesim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnSupportRepayType = errors.New("unsupported repay type")
	ErrUnSupportPeriod    = errors.New("unsupported period type")
	ErrUnSupportDayCount  = errors.New("unsupported day count")
	ErrModelNotRegistered = errors.New("model not registered")
)

// ConfigError 构造或模拟窗口参数非法，在任何模拟步骤之前返回
type ConfigError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s = %s: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}
	return []error{ErrInvalidConfig}
}

func newConfigError(field, value, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
