package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	assert.Equal(t, "$ 20.000", FormatCOP(20000))
	assert.Equal(t, "$ 1.500.000", FormatCOP(1500000))
	assert.Equal(t, "$ 0", FormatCOP(0))
	assert.Equal(t, "$ 500", FormatCOP(500))
}
