package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePaymentIDFormat(t *testing.T) {
	id := GeneratePaymentID()

	assert.True(t, strings.HasPrefix(id, "pay_dummy_"))
	suffix := strings.TrimPrefix(id, "pay_dummy_")
	assert.Len(t, suffix, 6)
	for _, r := range suffix {
		assert.Contains(t, "0123456789abcdefghijklmnopqrstuvwxyz", string(r))
	}
}

func TestGenerateCertificateIDFormat(t *testing.T) {
	id := GenerateCertificateID()

	assert.True(t, strings.HasPrefix(id, "CERT-"))
	suffix := strings.TrimPrefix(id, "CERT-")
	assert.Len(t, suffix, 7)
	assert.Equal(t, strings.ToUpper(suffix), suffix)
}
