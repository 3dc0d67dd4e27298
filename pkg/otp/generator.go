package otp

import (
	"crypto/rand"
	"math/big"

	"github.com/xlzd/gotp"
)

// Generator produces verification credentials: short numeric codes for the
// OTP email flow and opaque high-entropy secrets for link-based confirmation.
type Generator interface {
	RandomCode(length int) string
	RandomSecret(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a numeric code of the given length. Leading zeros are
// allowed, so the code is always exactly length digits.
func (g *GOTPGenerator) RandomCode(length int) string {
	const digits = "0123456789"

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			// crypto/rand failing means the platform entropy source is
			// broken; nothing sensible to return.
			panic(err)
		}
		code[i] = digits[n.Int64()]
	}

	return string(code)
}

// RandomSecret returns a base32 secret of the given length.
func (g *GOTPGenerator) RandomSecret(length int) string {
	return gotp.RandomSecret(length)
}
