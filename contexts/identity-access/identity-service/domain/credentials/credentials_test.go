package credentials

import "testing"

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"User.Name@example.co.uk", true},
		{"a@b", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a b@c.com", false},
		{"a@b .com", false},
		{"", false},
		{"plainaddress", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestCheckPasswordShortAlwaysReportsLength(t *testing.T) {
	for _, pw := range []string{"", "a", "Ab1!", "Abcde1!"} {
		result := CheckPassword(pw, "user@example.com")
		if result.OK {
			t.Fatalf("expected %q to fail", pw)
		}
		if !containsReason(result.Reasons, ReasonLength) {
			t.Fatalf("expected length reason for %q, got %v", pw, result.Reasons)
		}
	}
}

func TestCheckPasswordComplexity(t *testing.T) {
	result := CheckPassword("abcdefgh", "user@example.com")
	if !containsReason(result.Reasons, ReasonComplexity) {
		t.Fatalf("expected complexity reason, got %v", result.Reasons)
	}
	// Three of four classes is enough.
	result = CheckPassword("Abcdef12", "user@example.com")
	if containsReason(result.Reasons, ReasonComplexity) {
		t.Fatalf("unexpected complexity reason for 3-class password: %v", result.Reasons)
	}
}

func TestCheckPasswordContainsIdentity(t *testing.T) {
	result := CheckPassword("xxUSERxx1!A", "User@example.com")
	if !containsReason(result.Reasons, ReasonContainsIdentity) {
		t.Fatalf("expected contains-identity reason, got %v", result.Reasons)
	}
	// Empty local part never triggers the identity rule.
	result = CheckPassword("Abcdef1!", "")
	if containsReason(result.Reasons, ReasonContainsIdentity) {
		t.Fatalf("unexpected contains-identity reason: %v", result.Reasons)
	}
}

func TestCheckPasswordRepetition(t *testing.T) {
	result := CheckPassword("Aaabcd1!", "user@example.com")
	if !containsReason(result.Reasons, ReasonRepetition) {
		t.Fatalf("expected repetition reason, got %v", result.Reasons)
	}
	result = CheckPassword("Aabcd12!", "user@example.com")
	if containsReason(result.Reasons, ReasonRepetition) {
		t.Fatalf("unexpected repetition reason, got %v", result.Reasons)
	}
}

func TestCheckPasswordAccumulatesAllReasons(t *testing.T) {
	// Short, single class, contains local part, and a triple repeat.
	result := CheckPassword("aaab", "aaab@example.com")
	for _, reason := range []Reason{ReasonLength, ReasonComplexity, ReasonContainsIdentity, ReasonRepetition} {
		if !containsReason(result.Reasons, reason) {
			t.Fatalf("expected %q among reasons, got %v", reason, result.Reasons)
		}
	}
}

func TestCheckPasswordAcceptsStrong(t *testing.T) {
	result := CheckPassword("Tr1cky!pass", "user@example.com")
	if !result.OK {
		t.Fatalf("expected strong password to pass, got %v", result.Reasons)
	}
}

func containsReason(reasons []Reason, want Reason) bool {
	for _, reason := range reasons {
		if reason == want {
			return true
		}
	}
	return false
}
