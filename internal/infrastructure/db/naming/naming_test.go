package naming

import "testing"

func TestResolver_PrefixPerEnvironment(t *testing.T) {
	for _, env := range []string{"dev", "prod", "test"} {
		r := NewResolver(Config{Environment: env, EnableSeparation: true})
		if got := r.Prefix(); got != env+"_" {
			t.Fatalf("Prefix(%s) = %q, want %q", env, got, env+"_")
		}
	}
}

func TestResolver_PhysicalNameIdempotent(t *testing.T) {
	r := NewResolver(Config{Environment: "dev", EnableSeparation: true})

	physical := r.PhysicalName("users")
	if physical != "dev_users" {
		t.Fatalf("PhysicalName(users) = %q, want dev_users", physical)
	}
	if again := r.PhysicalName(physical); again != physical {
		t.Fatalf("PhysicalName is not idempotent: %q -> %q", physical, again)
	}
}

func TestResolver_SequenceNamesPrefixed(t *testing.T) {
	r := NewResolver(Config{Environment: "test", EnableSeparation: true})
	if got := r.PhysicalName("user_id_seq"); got != "test_user_id_seq" {
		t.Fatalf("PhysicalName(user_id_seq) = %q", got)
	}
}

func TestResolver_DefaultsToDevWithoutProfiles(t *testing.T) {
	r := NewResolver(Config{EnableSeparation: true})
	if got := r.Environment(); got != "dev" {
		t.Fatalf("Environment() = %q, want dev", got)
	}
	if got := r.Prefix(); got != "dev_" {
		t.Fatalf("Prefix() = %q, want dev_", got)
	}
}

func TestResolver_FirstProfileWins(t *testing.T) {
	r := NewResolver(Config{ActiveProfiles: []string{"prod", "dev"}, EnableSeparation: true})
	if got := r.Prefix(); got != "prod_" {
		t.Fatalf("Prefix() = %q, want prod_", got)
	}
}

func TestResolver_CustomSeparator(t *testing.T) {
	r := NewResolver(Config{Environment: "dev", Separator: "-", EnableSeparation: true})
	if got := r.PhysicalName("feature_flags"); got != "dev-feature_flags" {
		t.Fatalf("PhysicalName = %q", got)
	}
}

func TestResolver_ValidateRejectsUnknownEnvironment(t *testing.T) {
	r := NewResolver(Config{Environment: "staging", EnableSeparation: true})

	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error for staging")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestResolver_ValidateRejectsProfileMismatch(t *testing.T) {
	r := NewResolver(Config{
		Environment:      "prod",
		ActiveProfiles:   []string{"dev"},
		EnableSeparation: true,
	})
	if err := r.Validate(); err == nil {
		t.Fatalf("expected validation error for environment/profile mismatch")
	}
}

func TestResolver_ValidateAcceptsMatchingProfile(t *testing.T) {
	r := NewResolver(Config{
		Environment:      "prod",
		ActiveProfiles:   []string{"prod", "metrics"},
		EnableSeparation: true,
	})
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestResolver_SeparationDisabled(t *testing.T) {
	r := NewResolver(Config{Environment: "staging", EnableSeparation: false})

	if err := r.Validate(); err != nil {
		t.Fatalf("validation should pass when separation is disabled: %v", err)
	}
	if got := r.PhysicalName("users"); got != "users" {
		t.Fatalf("PhysicalName should be identity when disabled, got %q", got)
	}
}
