package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey_ZeroPadsMonth(t *testing.T) {
	key := MonthKey(time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-03", key)

	key = MonthKey(time.Date(2024, time.November, 5, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-11", key)
}

func TestMonthKey_StableWithinMonth(t *testing.T) {
	first := MonthKey(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	last := MonthKey(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, first, last)
}

func TestMonthKey_UsesUTCCalendarFields(t *testing.T) {
	// 2024-03-31 23:30 in UTC+2 is already 2024-03-31 21:30 UTC, but
	// 2024-04-01 00:30 in UTC+2 is still 2024-03-31 22:30 UTC.
	zone := time.FixedZone("UTC+2", 2*60*60)
	key := MonthKey(time.Date(2024, time.April, 1, 0, 30, 0, 0, zone))
	assert.Equal(t, "2024-03", key)
}

func TestValidMonthKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	for _, key := range valid {
		assert.True(t, ValidMonthKey(key), key)
	}

	invalid := []string{"", "2024-1", "2024-13", "2024-00", "24-01", "2024/01", "2024-01-05"}
	for _, key := range invalid {
		assert.False(t, ValidMonthKey(key), key)
	}
}
