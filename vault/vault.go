package vault

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/envvault/envvault.go/log"
	"github.com/envvault/envvault.go/set"
)

const (
	promNamespace = "vault"

	resultLabel = "result"
	hitResult   = "hit"
	missResult  = "miss"
)

var (
	lookupLabels = []string{
		resultLabel,
	}

	lookupCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "lookups_total",
		Help:      "Total number of secret lookups, labeled by hit or miss",
	}, lookupLabels)

	auditSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "audit_size",
		Help:      "Number of distinct secret names read at least once",
	})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "validation_failure_total",
		Help:      "Total number of failed required-secret validations",
	})
)

// Vault is the single source of truth for reading sensitive configuration.
//
// Do not use the zero value; get a Vault from New, NewTestVault, or
// InitFromConfig. The snapshot held by a Vault is immutable: lookups are safe
// to call concurrently from any number of goroutines.
//
// Vault also tracks which names have been successfully read, purely for
// audit/debug introspection via GetAllSecrets.
type Vault struct {
	values map[string]string

	mu       sync.Mutex
	accessed set.Set[string]
}

// New returns a ready Vault holding a copy of the given values.
func New(values map[string]string) *Vault {
	cloned := make(map[string]string, len(values))
	for name, value := range values {
		cloned[name] = value
	}
	return &Vault{
		values:   cloned,
		accessed: set.Make[string](len(cloned)),
	}
}

// GetSecret fetches a secret, or errors if the name is not present.
//
// A hit marks the name as accessed. The error for an absent name is a
// MissingSecretError carrying the requested name; it's never substituted
// silently.
func (v *Vault) GetSecret(name string) (string, error) {
	if name == "" {
		return "", ErrEmptySecretKey
	}
	value, ok := v.values[name]
	if !ok {
		lookupCounter.With(prometheus.Labels{resultLabel: missResult}).Inc()
		return "", MissingSecretError(name)
	}
	lookupCounter.With(prometheus.Labels{resultLabel: hitResult}).Inc()
	v.markAccessed(name)
	return value, nil
}

// GetOptionalSecret fetches a secret, returning def when the name is not
// present.
//
// Absence of an optional secret is a normal outcome, not an error. Only a hit
// marks the name as accessed: the accessed set tracks successful reads.
func (v *Vault) GetOptionalSecret(name, def string) string {
	value, ok := v.values[name]
	if !ok {
		lookupCounter.With(prometheus.Labels{resultLabel: missResult}).Inc()
		return def
	}
	lookupCounter.With(prometheus.Labels{resultLabel: hitResult}).Inc()
	v.markAccessed(name)
	return value
}

// HasSecret returns true if the name is present in the snapshot.
//
// An existence probe is not a use: HasSecret never marks the name as
// accessed.
func (v *Vault) HasSecret(name string) bool {
	_, ok := v.values[name]
	return ok
}

// ValidateSecrets checks that every required name is present in the snapshot.
//
// It returns a MissingSecretsError enumerating every absent name, in the
// given order, when one or more are missing. Duplicated names are checked
// once.
//
// Validation is a gate, not a read: it never touches the accessed set, and
// it's safe to call any number of times.
func (v *Vault) ValidateSecrets(required ...string) error {
	var missing []string
	seen := set.Make[string](len(required))
	for _, name := range required {
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		if _, ok := v.values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		validationFailures.Inc()
		return MissingSecretsError{Names: missing}
	}
	return nil
}

// GetAllSecrets returns a report of every secret that has been successfully
// read so far, keyed by name.
//
// By default every value is replaced by its obfuscated form. Pass
// includeValues=true to get the raw values instead; callers have to be
// explicit to defeat the safety default, and doing so logs a warning.
//
// Names that are present in the snapshot but never read do not appear: this
// is an access audit, not a dump of the whole snapshot.
func (v *Vault) GetAllSecrets(includeValues bool) map[string]string {
	if includeValues {
		log.Warnw("vault: returning raw secret values, make sure they never reach logs or responses")
	}

	v.mu.Lock()
	names := v.accessed.ToSlice()
	v.mu.Unlock()

	report := make(map[string]string, len(names))
	for _, name := range names {
		if includeValues {
			report[name] = v.values[name]
		} else {
			report[name] = Obfuscate(v.values[name])
		}
	}
	return report
}

func (v *Vault) markAccessed(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.accessed.Add(name)
	auditSizeGauge.Set(float64(v.accessed.Len()))
}
