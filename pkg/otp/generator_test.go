package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomCodeLengthAndCharset(t *testing.T) {
	g := NewGOTPGenerator()

	for i := 0; i < 50; i++ {
		code := g.RandomCode(6)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected character %q in code %q", r, code)
		}
	}
}

func TestRandomSecretLength(t *testing.T) {
	g := NewGOTPGenerator()

	secret := g.RandomSecret(32)
	assert.Len(t, secret, 32)
	assert.NotEqual(t, secret, g.RandomSecret(32))
}
