package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-at-least-32-chars-long-for-hs256"

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := NewVerifier(testSecret)

	signed, exp, err := v.Issue(42, []string{"admin", "editor"}, 15*time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	p, err := v.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if p.UserID != 42 {
		t.Errorf("expected user id 42, got %d", p.UserID)
	}
	if len(p.Roles) != 2 || p.Roles[0] != "admin" || p.Roles[1] != "editor" {
		t.Errorf("expected roles [admin editor], got %v", p.Roles)
	}
}

func TestVerifier_Verify_MissingToken(t *testing.T) {
	v := NewVerifier(testSecret)

	_, err := v.Verify("")
	if !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestVerifier_Verify_Garbage(t *testing.T) {
	v := NewVerifier(testSecret)

	_, err := v.Verify("not.a.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifier_Verify_WrongSecret(t *testing.T) {
	issuer := NewVerifier(testSecret)
	verifier := NewVerifier("a-different-secret-also-32-chars-long!!")

	signed, _, err := issuer.Issue(7, nil, 15*time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	_, err = verifier.Verify(signed)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerifier_Verify_Expired(t *testing.T) {
	v := NewVerifier(testSecret)

	signed, _, err := v.Issue(7, nil, -time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	_, err = v.Verify(signed)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerifier_Verify_NoRolesClaim(t *testing.T) {
	v := NewVerifier(testSecret)

	signed, _, err := v.Issue(7, nil, 15*time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	p, err := v.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if len(p.Roles) != 0 {
		t.Errorf("expected empty role set, got %v", p.Roles)
	}
}

func TestPrincipal_HasRole(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		role  string
		want  bool
	}{
		{"admin present", []string{"admin"}, "admin", true},
		{"among others", []string{"editor", "admin"}, "admin", true},
		{"absent", []string{"editor"}, "admin", false},
		{"empty set", nil, "admin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Principal{UserID: 1, Roles: tc.roles}
			if got := p.HasRole(tc.role); got != tc.want {
				t.Errorf("HasRole(%q) with roles %v = %v, want %v", tc.role, tc.roles, got, tc.want)
			}
			if tc.role == "admin" && p.IsAdmin() != tc.want {
				t.Errorf("IsAdmin() = %v, want %v", p.IsAdmin(), tc.want)
			}
		})
	}
}
