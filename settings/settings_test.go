package settings_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/envvault/envvault.go/settings"
	"github.com/envvault/envvault.go/vault"
)

func TestNew(t *testing.T) {
	v := vault.NewTestVault(map[string]string{
		"SMTP_SERVER":    "smtp.example.com",
		"SMTP_PORT":      "2525",
		"STRIPE_API_KEY": "sk_test_123",
		"DEBUG":          "true",
	})

	s, err := settings.New(v)
	if err != nil {
		t.Fatal(err)
	}

	expected := settings.Settings{
		SecretKey:                vault.TestSecretKey,
		Algorithm:                vault.TestAlgorithm,
		DatabaseURL:              vault.TestDatabaseURL,
		AccessTokenExpireMinutes: settings.DefaultAccessTokenExpireMinutes,
		SMTPServer:               "smtp.example.com",
		SMTPPort:                 2525,
		StripeAPIKey:             "sk_test_123",
		Debug:                    true,
	}
	if diff := cmp.Diff(expected, s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := settings.New(vault.NewTestVault(nil))
	if err != nil {
		t.Fatal(err)
	}
	if s.AccessTokenExpireMinutes != settings.DefaultAccessTokenExpireMinutes {
		t.Errorf(
			"expected default expiry %d, actual: %d",
			settings.DefaultAccessTokenExpireMinutes,
			s.AccessTokenExpireMinutes,
		)
	}
	if s.SMTPPort != settings.DefaultSMTPPort {
		t.Errorf("expected default smtp port %d, actual: %d", settings.DefaultSMTPPort, s.SMTPPort)
	}
	if s.SMTPServer != "" || s.SendGridAPIKey != "" {
		t.Error("absent optional secrets should stay empty")
	}
	if s.Debug {
		t.Error("debug should default to false")
	}
}

func TestNewMissingRequired(t *testing.T) {
	v := vault.New(map[string]string{
		"SECRET_KEY": "0123456789abcdef0123456789abcdef",
	})

	_, err := settings.New(v)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var missing vault.MissingSecretsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingSecretsError, actual: %T %v", err, err)
	}
	expected := []string{
		settings.AlgorithmName,
		settings.DatabaseURLName,
	}
	if diff := cmp.Diff(expected, missing.Names); diff != "" {
		t.Errorf("missing names mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMalformedOptionalValues(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
	}{
		{
			name: "bad-int",
			raw:  map[string]string{"ACCESS_TOKEN_EXPIRE_MINUTES": "soon"},
		},
		{
			name: "non-positive-expiry",
			raw:  map[string]string{"ACCESS_TOKEN_EXPIRE_MINUTES": "0"},
		},
		{
			name: "bad-smtp-port",
			raw:  map[string]string{"SMTP_PORT": "not-a-port"},
		},
		{
			name: "bad-bool",
			raw:  map[string]string{"DEBUG": "sure"},
		},
	}
	for _, tt := range tests {
		tt := tt // capture range variable for parallel testing
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := settings.New(vault.NewTestVault(tt.raw)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
