package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey_Unpadded(t *testing.T) {
	assert.Equal(t, "2024-2", PeriodKey(2024, 2))
	assert.Equal(t, "2023-12", PeriodKey(2023, 12))
}

func TestParsePeriodKey(t *testing.T) {
	year, month, err := ParsePeriodKey("2024-2")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 2, month)

	year, month, err = ParsePeriodKey(PeriodKey(1999, 11))
	require.NoError(t, err)
	assert.Equal(t, 1999, year)
	assert.Equal(t, 11, month)
}

func TestParsePeriodKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024", "-2", "2024-", "abc-2", "2024-x"} {
		_, _, err := ParsePeriodKey(key)
		assert.Error(t, err, key)
	}
}

func TestShiftKeys(t *testing.T) {
	assert.Equal(t, []string{"shift1", "shift2", "shift3"}, ShiftKeys())
	assert.Len(t, Workplaces, 4)
	assert.True(t, IsWorkplace("Nodal"))
	assert.False(t, IsWorkplace("nodal"))
}
