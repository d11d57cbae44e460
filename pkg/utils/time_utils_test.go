package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-01", DateOnly("2024-03-01T08:15:00Z"))
	assert.Equal(t, "2024-03-01", DateOnly("2024-03-01"))
	assert.Equal(t, "", DateOnly(""))
}

func TestYearMonth(t *testing.T) {
	assert.Equal(t, "2024-03", YearMonth("2024", "3"))
	assert.Equal(t, "2024-11", YearMonth("2024", "11"))
}
