package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"juan@example.com", true},
		{"juan.dela.cruz+reg@denr.gov.ph", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"juan@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailValid(tt.email))
		})
	}
}

func TestSendEmailInputValidate(t *testing.T) {
	valid := SendEmailInput{To: "juan@example.com", Subject: "s", Body: "b"}
	assert.NoError(t, valid.Validate())

	noTo := SendEmailInput{Subject: "s", Body: "b"}
	assert.Error(t, noTo.Validate())

	noBody := SendEmailInput{To: "juan@example.com", Subject: "s"}
	assert.Error(t, noBody.Validate())

	badTo := SendEmailInput{To: "nope", Subject: "s", Body: "b"}
	assert.Error(t, badTo.Validate())
}
