package accounts

type DuplicatePolicy string

const (
	// DuplicatePolicyDrop skips identity resolution for an account the store already has
	DuplicatePolicyDrop DuplicatePolicy = "drop"
	// DuplicatePolicyResolve reconciles the identity of a re-added account anyway
	DuplicatePolicyResolve DuplicatePolicy = "resolve"
)

type Config struct {
	DuplicatePolicy DuplicatePolicy `yaml:"duplicatePolicy"`
	// StrictDrain panics when an AddAccountAction is dropped unprocessed
	StrictDrain bool `yaml:"strictDrain"`
}

type configGetter interface {
	GetAccounts() Config
}

func (c Config) duplicatePolicy() DuplicatePolicy {
	if c.DuplicatePolicy == DuplicatePolicyResolve {
		return DuplicatePolicyResolve
	}
	return DuplicatePolicyDrop
}
