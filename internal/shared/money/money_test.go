package money_test

import (
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, "10.01", money.String(money.Round(decimal.RequireFromString("10.005"))))
	assert.Equal(t, "10.00", money.String(money.Round(decimal.RequireFromString("10.004"))))
}

func TestPercent(t *testing.T) {
	got := money.Percent(decimal.NewFromInt(15000), decimal.NewFromInt(12))
	assert.Equal(t, "1800.00", money.String(got))
}

func TestNonNegativeAndMin(t *testing.T) {
	assert.True(t, money.NonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.Equal(t, "3.00", money.String(money.Min(decimal.NewFromInt(3), decimal.NewFromInt(4))))
	assert.Equal(t, "6.00", money.String(money.Sum(decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3))))
}
