package vault

// Canned values for the documented required names, set by NewTestVault when
// the caller doesn't provide their own.
const (
	TestSecretKey   = "0123456789abcdef0123456789abcdef"
	TestAlgorithm   = "HS256"
	TestDatabaseURL = "sqlite:///./app.db"
)

// NewTestVault returns a ready Vault seeded with the given values on top of
// canned values for SECRET_KEY, ALGORITHM and DATABASE_URL.
//
// This is provided to aid in testing and should not be used to create
// production vaults: production code should resolve its snapshot through
// InitFromConfig.
func NewTestVault(raw map[string]string) *Vault {
	values := map[string]string{
		"SECRET_KEY":   TestSecretKey,
		"ALGORITHM":    TestAlgorithm,
		"DATABASE_URL": TestDatabaseURL,
	}
	for name, value := range raw {
		values[name] = value
	}
	return New(values)
}
