// Package naming derives environment-scoped physical storage names so that
// dev, test, and prod data can share a single database. Logical collection
// and sequence names are rewritten to "<environment><separator><name>";
// field names pass through untouched.
package naming

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultEnvironment is assumed when no active profile is configured.
const DefaultEnvironment = "dev"

// DefaultSeparator sits between the environment and the logical name.
const DefaultSeparator = "_"

// validEnvironments is the closed set of deployment environments.
var validEnvironments = map[string]struct{}{
	"dev":  {},
	"prod": {},
	"test": {},
}

// ConfigError reports an invalid environment configuration. It is raised
// during startup validation, before the server accepts traffic.
type ConfigError struct {
	Environment string
	Issue       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid environment configuration (environment=%q): %s", e.Environment, e.Issue)
}

// Config controls how physical names are derived.
type Config struct {
	// Environment is the active deployment environment (dev, prod, test).
	Environment string
	// Separator between environment and logical name. Defaults to "_".
	Separator string
	// EnableSeparation toggles prefixing. When false all environments share
	// the same physical names and PhysicalName is the identity function.
	EnableSeparation bool
	// ActiveProfiles is the ordered list of active profile identifiers.
	// When Environment is empty the first profile wins; with no profiles
	// at all the environment defaults to "dev".
	ActiveProfiles []string
}

// Resolver rewrites logical storage names to physical ones. The prefix is
// computed once and cached; after that the resolver is read-only and safe
// for concurrent use.
type Resolver struct {
	cfg    Config
	once   sync.Once
	prefix string
}

func NewResolver(cfg Config) *Resolver {
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	return &Resolver{cfg: cfg}
}

// Environment returns the effective environment: the configured one, else
// the first active profile, else the default.
func (r *Resolver) Environment() string {
	if r.cfg.Environment != "" {
		return r.cfg.Environment
	}
	if len(r.cfg.ActiveProfiles) > 0 {
		return r.cfg.ActiveProfiles[0]
	}
	return DefaultEnvironment
}

// Prefix returns "<environment><separator>", or "" when separation is
// disabled.
func (r *Resolver) Prefix() string {
	r.once.Do(func() {
		if r.cfg.EnableSeparation {
			r.prefix = r.Environment() + r.cfg.Separator
		}
	})
	return r.prefix
}

// PhysicalName maps a logical collection or sequence name to its physical
// name. Already-prefixed names are returned unchanged, so repeated naming
// passes never double-prefix.
func (r *Resolver) PhysicalName(logical string) string {
	prefix := r.Prefix()
	if prefix == "" || strings.HasPrefix(logical, prefix) {
		return logical
	}
	return prefix + logical
}

// Validate fail-fasts on misconfiguration. It must be called at startup,
// before the server accepts traffic. With separation disabled every
// configuration is valid.
func (r *Resolver) Validate() error {
	if !r.cfg.EnableSeparation {
		return nil
	}

	env := r.Environment()
	if _, ok := validEnvironments[env]; !ok {
		return &ConfigError{Environment: env, Issue: "environment must be one of: dev, prod, test"}
	}

	if len(r.cfg.ActiveProfiles) > 0 {
		found := false
		for _, p := range r.cfg.ActiveProfiles {
			if p == env {
				found = true
				break
			}
		}
		if !found {
			return &ConfigError{
				Environment: env,
				Issue: fmt.Sprintf("environment does not match any active profile (%s)",
					strings.Join(r.cfg.ActiveProfiles, ", ")),
			}
		}
	}

	if strings.TrimSpace(r.Prefix()) == "" {
		return &ConfigError{Environment: env, Issue: "computed prefix is empty"}
	}
	return nil
}
