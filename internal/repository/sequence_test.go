package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "ORD001", FormatSequence(OrderNumberPrefix, 1))
	assert.Equal(t, "ORD042", FormatSequence(OrderNumberPrefix, 42))
	assert.Equal(t, "INV999", FormatSequence(InvoiceNumberPrefix, 999))
	assert.Equal(t, "INV1000", FormatSequence(InvoiceNumberPrefix, 1000))
}
