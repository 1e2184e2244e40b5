package utils

import (
	"math/rand"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomBase36 generates n random base36 characters
func randomBase36(n int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rng.Intn(len(base36))])
	}
	return b.String()
}

// GeneratePaymentID generates a simulated payment confirmation id. The
// enrollment flow has no real gateway; the backend only requires the field
// to be present.
func GeneratePaymentID() string {
	return "pay_dummy_" + randomBase36(6)
}

// GenerateCertificateID generates a display certificate id in the
// CERT-XXXXXXX format.
func GenerateCertificateID() string {
	return "CERT-" + strings.ToUpper(randomBase36(7))
}
