package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/envvault/envvault.go/log"
	"github.com/envvault/envvault.go/vault"
)

// Secret names read by this package.
const (
	SecretKeyName   = "SECRET_KEY"
	AlgorithmName   = "ALGORITHM"
	DatabaseURLName = "DATABASE_URL"

	AccessTokenExpireMinutesName = "ACCESS_TOKEN_EXPIRE_MINUTES"
	SMTPServerName               = "SMTP_SERVER"
	SMTPPortName                 = "SMTP_PORT"
	SMTPUsernameName             = "SMTP_USERNAME"
	SMTPPasswordName             = "SMTP_PASSWORD"
	SendGridAPIKeyName           = "SENDGRID_API_KEY"
	AWSAccessKeyIDName           = "AWS_ACCESS_KEY_ID"
	AWSSecretAccessKeyName       = "AWS_SECRET_ACCESS_KEY"
	StripeAPIKeyName             = "STRIPE_API_KEY"
	DebugName                    = "DEBUG"
)

// RequiredSecrets is the application's required-name list, declared once.
//
// New validates the full list before reading anything, so a misconfigured
// process aborts with every missing name in a single error.
var RequiredSecrets = []string{
	SecretKeyName,
	AlgorithmName,
	DatabaseURLName,
}

// Defaults for optional settings.
const (
	DefaultAccessTokenExpireMinutes = 30
	DefaultSMTPPort                 = 587
)

// minSecretKeyLen is the length below which SECRET_KEY is considered weak.
const minSecretKeyLen = 32

// Settings are the typed application settings backed by the vault.
//
// Required values come straight from required secrets; optional values fall
// back to defaults and never block startup.
type Settings struct {
	SecretKey   string
	Algorithm   string
	DatabaseURL string

	AccessTokenExpireMinutes int

	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	SendGridAPIKey     string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	StripeAPIKey       string

	Debug bool
}

// New builds Settings from the given vault.
//
// It first validates RequiredSecrets, returning the vault's
// MissingSecretsError untouched on failure so that callers can surface the
// complete missing-name list. Optional names absent from the vault get their
// defaults; malformed numeric or boolean values are configuration errors.
func New(v *vault.Vault) (Settings, error) {
	if err := v.ValidateSecrets(RequiredSecrets...); err != nil {
		return Settings{}, err
	}

	s := Settings{
		AccessTokenExpireMinutes: DefaultAccessTokenExpireMinutes,
		SMTPPort:                 DefaultSMTPPort,
	}

	var err error
	if s.SecretKey, err = v.GetSecret(SecretKeyName); err != nil {
		return Settings{}, err
	}
	if s.Algorithm, err = v.GetSecret(AlgorithmName); err != nil {
		return Settings{}, err
	}
	if s.DatabaseURL, err = v.GetSecret(DatabaseURLName); err != nil {
		return Settings{}, err
	}

	warnOnWeakSecretKey(s.SecretKey)

	if s.AccessTokenExpireMinutes, err = optionalInt(v, AccessTokenExpireMinutesName, DefaultAccessTokenExpireMinutes); err != nil {
		return Settings{}, err
	}
	if s.AccessTokenExpireMinutes <= 0 {
		return Settings{}, fmt.Errorf(
			"settings: %s must be positive, got %d",
			AccessTokenExpireMinutesName,
			s.AccessTokenExpireMinutes,
		)
	}

	s.SMTPServer = v.GetOptionalSecret(SMTPServerName, "")
	if s.SMTPPort, err = optionalInt(v, SMTPPortName, DefaultSMTPPort); err != nil {
		return Settings{}, err
	}
	s.SMTPUsername = v.GetOptionalSecret(SMTPUsernameName, "")
	s.SMTPPassword = v.GetOptionalSecret(SMTPPasswordName, "")

	s.SendGridAPIKey = v.GetOptionalSecret(SendGridAPIKeyName, "")
	s.AWSAccessKeyID = v.GetOptionalSecret(AWSAccessKeyIDName, "")
	s.AWSSecretAccessKey = v.GetOptionalSecret(AWSSecretAccessKeyName, "")
	s.StripeAPIKey = v.GetOptionalSecret(StripeAPIKeyName, "")

	if s.Debug, err = optionalBool(v, DebugName, false); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func optionalInt(v *vault.Vault, name string, def int) (int, error) {
	raw := v.GetOptionalSecret(name, "")
	if raw == "" {
		return def, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("settings: cannot parse %s %q as int: %w", name, raw, err)
	}
	return i, nil
}

func optionalBool(v *vault.Vault, name string, def bool) (bool, error) {
	raw := v.GetOptionalSecret(name, "")
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("settings: cannot parse %s %q as bool: %w", name, raw, err)
	}
	return b, nil
}

// warnOnWeakSecretKey flags keys that are only suitable for development.
// A weak key is never an error: local setups are allowed to run with one.
func warnOnWeakSecretKey(key string) {
	switch {
	case len(key) < minSecretKeyLen:
		log.Warnw(
			"settings: SECRET_KEY is shorter than the recommended minimum, set a strong secret in production",
			"len", len(key),
			"min", minSecretKeyLen,
		)
	case strings.Contains(strings.ToLower(key), "dev"):
		log.Warnw(
			"settings: SECRET_KEY looks like a development value, set a strong secret in production",
		)
	}
}
