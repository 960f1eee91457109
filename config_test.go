package financesim

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_Defaults(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Start(Config{}))

	assert.Equal(t, Unadjusted, cfg.Roll)
	assert.NotNil(t, cfg.Clock)
	assert.NotNil(t, cfg.Holiday)
	assert.NotNil(t, cfg.Logger)
	assertDecimal(t, "2.68", Money(d("2.675")))
	assertDecimal(t, "2.66", Money(d("2.665")))
}

func TestStart_UnknownRoll(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Start(Config{Roll: Preceding}))

	err := Start(Config{Roll: "SIDEWAYS"})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "invalid configuration: roll_convention = SIDEWAYS: unknown roll convention", err.Error())
	// 配置失败时保留原配置
	assert.Equal(t, Preceding, cfg.Roll)
}

func TestStart_RoundStrategy(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Start(Config{RoundStrategy: func(v decimal.Decimal) decimal.Decimal { return v.Truncate(0) }}))

	r, err := referenceConventional(t).Simulate(50, 10)
	require.NoError(t, err)
	assertDecimal(t, "4216", r.LoanRemaining)
}

func TestConfigError(t *testing.T) {
	err := error(&ConfigError{Field: "repay_type", Value: "BALLOON", Reason: "unknown repay type", Err: ErrUnSupportRepayType})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, ErrUnSupportRepayType))
	assert.False(t, errors.Is(err, ErrUnSupportPeriod))

	err = &ConfigError{Field: "time_period", Reason: "must be at least 1"}
	assert.Equal(t, "invalid configuration: time_period: must be at least 1", err.Error())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 0, Status("").Code())
	assert.Equal(t, "Business is a LOSS MODEL", StatusFail.Reason())
	assert.Equal(t, "Maximum time period reached", StatusTimeout.Reason())
	assert.Empty(t, StatusSuccess.Reason())
}
