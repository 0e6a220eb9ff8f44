// Package config resolves process-wide settings once per invocation. The
// resolved values are threaded explicitly through the pipeline; nothing
// reads the environment mid-run.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultRootDomain is the built-in placeholder used when neither the
// repository config nor the environment supplies a domain.
const DefaultRootDomain = "https://example.com"

// envRootDomain is the environment variable that wins over everything else;
// in CI it is typically populated from a secret.
const envRootDomain = "ROOT_DOMAIN"

// ResolveRootDomain returns the root domain for public URL construction
// with the precedence: built-in default < repository config file
// (giftqr.yaml, key root-domain) < ROOT_DOMAIN environment variable.
// A flag value, when non-empty, overrides all of them. Trailing slashes are
// trimmed so URL joining stays predictable.
func ResolveRootDomain(flagValue string) string {
	if flagValue != "" {
		return strings.TrimRight(flagValue, "/")
	}

	v := viper.New()
	v.SetConfigName("giftqr")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetDefault("root-domain", DefaultRootDomain)
	// missing config file is fine, the default carries
	_ = v.ReadInConfig()

	// BindEnv cannot fail when given both a key and a variable name
	_ = v.BindEnv("root-domain", envRootDomain)
	return strings.TrimRight(v.GetString("root-domain"), "/")
}
