package financesim

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurve_NilIsZero(t *testing.T) {
	var c Curve
	assert.True(t, c.At(3).IsZero())
}

func TestConstant(t *testing.T) {
	c := Constant(d("0.25"))
	for _, month := range []int{0, 1, 49} {
		assertDecimal(t, "0.25", c.At(month))
	}
}

func TestSteps(t *testing.T) {
	changes := map[int]decimal.Decimal{
		12: d("3000"),
		6:  d("2500"),
	}
	c := Steps(d("2000"), changes)
	// 构造后修改 changes 不影响曲线
	changes[0] = d("1")

	tests := []struct {
		month int
		want  string
	}{
		{0, "2000"},
		{5, "2000"},
		{6, "2500"},
		{11, "2500"},
		{12, "3000"},
		{40, "3000"},
	}
	for _, tt := range tests {
		assertDecimal(t, tt.want, c.At(tt.month))
	}
}
