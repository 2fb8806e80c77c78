package keyword

import (
	"fmt"
	"sort"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// LIFFBaseURL is the LINE front-end framework deep-link prefix.
const LIFFBaseURL = "https://liff.line.me/"

// ErrUnknownLIFFApp is returned when a ComposedLink references an app name
// that is not registered. This is a configuration error, not a missed match.
var ErrUnknownLIFFApp = fmt.Errorf("unknown liff app")

// Registry maps LIFF app names to their registered LIFF IDs. It is built
// once at startup from configuration and never mutated afterwards.
type Registry struct {
	apps map[string]string
}

// NewRegistry creates a registry from an app-name to LIFF-ID map.
func NewRegistry(apps map[string]string) *Registry {
	m := make(map[string]string, len(apps))
	for name, id := range apps {
		m[name] = id
	}
	return &Registry{apps: m}
}

// ResolveURL resolves an app name plus app-relative path to an absolute
// deep-link URL by concatenation with the app's LIFF ID.
func (r *Registry) ResolveURL(app, path string) (string, error) {
	id, ok := r.apps[app]
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownLIFFApp, app)
	}
	return LIFFBaseURL + id + path, nil
}

// ResolveAction converts a ComposedLink action into the equivalent
// DirectLink. DirectLink and StaticText actions pass through unchanged.
func (r *Registry) ResolveAction(a models.Action) (models.Action, error) {
	if a.Type != models.ActionComposedLink {
		return a, nil
	}
	url, err := r.ResolveURL(a.LIFFApp, a.Path)
	if err != nil {
		return models.Action{}, err
	}
	return models.Action{Type: models.ActionDirectLink, LIFFURL: url}, nil
}

// Apps returns the registered app names in sorted order.
func (r *Registry) Apps() []string {
	names := make([]string, 0, len(r.apps))
	for name := range r.apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
