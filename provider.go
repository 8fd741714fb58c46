package locmt

import "strings"

// Provider identifies the web UI a task drives.
type Provider string

// Supported providers.
const (
	ProviderSteam  Provider = "steam"
	ProviderPapago Provider = "papago"
	ProviderGoogle Provider = "google"
)

// Providers returns all supported providers in menu order.
func Providers() []Provider {
	return []Provider{ProviderSteam, ProviderPapago, ProviderGoogle}
}

// Label returns the human-readable task name for the provider.
func (p Provider) Label() string {
	switch p {
	case ProviderSteam:
		return "Game Description"
	case ProviderPapago:
		return "MT - Papago"
	case ProviderGoogle:
		return "MT - Google"
	default:
		return string(p)
	}
}

// IsTranslator reports whether the provider translates source lines.
func (p Provider) IsTranslator() bool {
	switch p {
	case ProviderPapago, ProviderGoogle:
		return true
	default:
		return false
	}
}

// ParseProvider converts a provider name into a Provider.
// Returns EINVALID for unknown names.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case ProviderSteam, ProviderPapago, ProviderGoogle:
		return p, nil
	default:
		return "", Errorf(EINVALID, "unknown provider %q", name)
	}
}
