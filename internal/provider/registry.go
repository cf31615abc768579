// Package provider resolves handicap sources to their upstream adapters.
package provider

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spounge-ai/handicap/internal/domain"
	"github.com/spounge-ai/handicap/internal/infra/config"
	"github.com/spounge-ai/handicap/internal/provider/ghin"
)

var _ domain.ProviderRegistry = (*Registry)(nil)

// Registry maps source names to providers. It is built once at startup and
// read-only afterwards.
type Registry struct {
	providers map[string]domain.HandicapProvider
}

func NewRegistry(providers ...domain.HandicapProvider) *Registry {
	r := &Registry{providers: make(map[string]domain.HandicapProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// FromConfig builds one GHIN provider per configured source. Sources with a
// course cache TTL get their course and tee lookups cached.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Registry, error) {
	providers := make([]domain.HandicapProvider, 0, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		p, err := ghin.New(name, pc, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build provider %s: %w", name, err)
		}
		if pc.CourseCacheTTL > 0 {
			providers = append(providers, NewCachedProvider(p, pc.CourseCacheTTL, logger))
			continue
		}
		providers = append(providers, p)
	}
	return NewRegistry(providers...), nil
}

func (r *Registry) Provider(source string) (domain.HandicapProvider, bool) {
	p, ok := r.providers[source]
	return p, ok
}

// Sources lists the registered source names in order.
func (r *Registry) Sources() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
