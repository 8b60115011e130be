package vault

import (
	"os"
	"strings"

	"github.com/envvault/envvault.go/envfile"
)

// Config is the configuration struct for building a Vault from the process
// environment.
//
// Can be deserialized from YAML.
type Config struct {
	// EnvFile is the optional path to a development overlay file in
	// KEY=value form, merged into the snapshot before it's frozen.
	// Values already set in the real environment always win.
	EnvFile string `yaml:"envFile"`

	// Required lists the secret names that must be present for the process
	// to be considered initialized. Validation reports every missing name at
	// once.
	Required []string `yaml:"required"`
}

// InitFromConfig builds a ready Vault from the process environment and the
// given config.
//
// The snapshot is resolved exactly once here: the environment, overlaid by
// the optional EnvFile, frozen, then validated against Required. An
// application should call this at startup and abort on error.
func InitFromConfig(cfg Config) (*Vault, error) {
	values := environMap(os.Environ())

	if cfg.EnvFile != "" {
		overlay, err := envfile.Load(cfg.EnvFile)
		if err != nil {
			return nil, err
		}
		for name, value := range overlay {
			if _, ok := values[name]; !ok {
				values[name] = value
			}
		}
	}

	v := New(values)
	if err := v.ValidateSecrets(cfg.Required...); err != nil {
		return nil, err
	}
	return v, nil
}

func environMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if name, value, ok := strings.Cut(entry, "="); ok && name != "" {
			values[name] = value
		}
	}
	return values
}
