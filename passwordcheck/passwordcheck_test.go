// SPDX-License-Identifier: GPL-3.0-only

package passwordcheck

import (
	"context"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	t.Setenv("PWNED_PASSWORDS_ENABLED", "false")

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "Ab1!", true},
		{"no uppercase", "lowercase1!", true},
		{"no lowercase", "UPPERCASE1!", true},
		{"no digit", "NoDigitsHere!", true},
		{"no special character", "NoSpecial123", true},
		{"valid", "MySecretPassword@123", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(context.Background(), tc.password)
			if tc.wantErr && err == nil {
				t.Errorf("ValidatePassword(%q) should fail", tc.password)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidatePassword(%q) failed: %v", tc.password, err)
			}
		})
	}
}

func TestContainsSpecial(t *testing.T) {
	if containsSpecial("abc123") {
		t.Error("containsSpecial should be false for alphanumerics")
	}
	if !containsSpecial("abc!") {
		t.Error("containsSpecial should be true with punctuation")
	}
}
