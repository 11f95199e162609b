package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword_FirstFailingRuleWins(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"", "Password must be at least 6 characters long"},
		{"abc", "Password must be at least 6 characters long"},
		{"ABC1", "Password must be at least 6 characters long"},
		{"abcdef", "Password must contain at least one number"},
		{"abcdef1", "Password must contain at least one uppercase letter"},
		{"Abcdef", "Password must contain at least one number"},
		{"Abcdef1", ""},
		{"Secret123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "password", ve.Field)
			assert.Equal(t, tt.want, ve.Error())
		})
	}
}

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "first.last+tag@mail-host.example.org"} {
		assert.NoError(t, ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"", "plain", "a@b", "a b@c.io", "@c.io"} {
		assert.Error(t, ValidateEmail(bad), bad)
	}
}

func TestValidateRegistration_OrderNameEmailPassword(t *testing.T) {
	fieldOf := func(err error) string {
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		return ve.Field
	}

	assert.Equal(t, "name", fieldOf(ValidateRegistration("  ", "bad", "x")))
	assert.Equal(t, "email", fieldOf(ValidateRegistration("Wanda", "bad", "x")))
	assert.Equal(t, "password", fieldOf(ValidateRegistration("Wanda", "w@x.io", "x")))
	assert.NoError(t, ValidateRegistration("Wanda", "w@x.io", "Secret1"))
}
