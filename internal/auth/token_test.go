package auth

import (
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	token, err := c.Issue("alice@example.com", 42)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if !c.Validate(token) {
		t.Fatalf("freshly issued token did not validate")
	}
	if got := c.Subject(token); got != "alice@example.com" {
		t.Fatalf("Subject = %q, want alice@example.com", got)
	}
	if got := c.UserID(token); got != 42 {
		t.Fatalf("UserID = %d, want 42", got)
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("secret", -time.Minute)

	token, err := c.Issue("bob@example.com", 7)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if c.Validate(token) {
		t.Fatalf("expired token validated")
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	token, err := issuer.Issue("carol@example.com", 1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if verifier.Validate(token) {
		t.Fatalf("token signed with a different secret validated")
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "Bearer xyz"} {
		if c.Validate(token) {
			t.Fatalf("malformed token %q validated", token)
		}
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c := NewCodec("secret", 0)
	if c.ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}
