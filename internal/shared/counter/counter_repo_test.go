package counter_test

import (
	"testing"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/counter"

	"github.com/stretchr/testify/assert"
)

func TestPeriodReference(t *testing.T) {
	assert.Equal(t, "PR-202604-0007", counter.PeriodReference(2026, 4, 7))
	assert.Equal(t, "PR-202612-12345", counter.PeriodReference(2026, 12, 12345))
}
