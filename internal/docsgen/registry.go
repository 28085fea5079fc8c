package docsgen

import (
	"fmt"

	"github.com/go-chi/chi/v5"
)

// Provider produces a subsystem's route table on demand.
type Provider func() (chi.Router, error)

// providers maps subsystem name to provider. Each subsystem file in
// internal/routers registers itself here on load, which replaces the
// original's dynamic module import with an explicit lookup that fails
// gracefully for absent names.
var providers = map[string]Provider{}

// RegisterProvider makes a route-table provider available under the given
// name. It panics on duplicate or empty registration: that is a wiring bug,
// not a runtime condition.
func RegisterProvider(name string, p Provider) {
	if name == "" || p == nil {
		panic("docsgen: RegisterProvider with empty name or nil provider")
	}
	if _, dup := providers[name]; dup {
		panic(fmt.Sprintf("docsgen: provider %q registered twice", name))
	}
	providers[name] = p
}

// LookupProvider returns the provider registered under name.
func LookupProvider(name string) (Provider, bool) {
	p, ok := providers[name]
	return p, ok
}
