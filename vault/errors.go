package vault

import (
	"errors"
	"strings"
)

// ErrEmptySecretKey is returned when the name for a secret is empty.
var ErrEmptySecretKey = errors.New("vault: secret name cannot be empty")

// MissingSecretError is returned when the name for a secret is not present in
// the snapshot.
//
// A missing required secret indicates misconfiguration, not a transient
// condition: it must never be retried.
type MissingSecretError string

func (name MissingSecretError) Error() string {
	return "vault: no secret has been found for " + string(name)
}

// MissingSecretsError is returned by Vault.ValidateSecrets when one or more
// required secrets are absent from the snapshot.
//
// Names holds every missing name, in declaration order, so that the operator
// can fix configuration in a single pass instead of one name per run.
type MissingSecretsError struct {
	Names []string
}

func (e MissingSecretsError) Error() string {
	return "vault: missing required secrets: " + strings.Join(e.Names, ", ")
}
