// internal/service/social/registry.go

package social

import (
	"fmt"

	"trendscope/internal/domain/trend"
)

// Registry maps platforms to their record sources. It implements
// trend.SourceRegistry.
type Registry struct {
	sources map[trend.Platform]trend.Source
}

// NewRegistry builds a registry from the given sources. A later source for
// the same platform replaces an earlier one.
func NewRegistry(sources ...trend.Source) *Registry {
	byPlatform := make(map[trend.Platform]trend.Source, len(sources))
	for _, source := range sources {
		byPlatform[source.Platform()] = source
	}
	return &Registry{sources: byPlatform}
}

// Lookup returns the source for a platform name. Unknown names and platforms
// without a registered source yield ErrUnsupportedPlatform.
func (r *Registry) Lookup(name string) (trend.Source, error) {
	platform, err := trend.ParsePlatform(name)
	if err != nil {
		return nil, err
	}

	source, ok := r.sources[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", trend.ErrUnsupportedPlatform, name)
	}
	return source, nil
}

// All returns every registered source in the platform declaration order.
func (r *Registry) All() []trend.Source {
	all := make([]trend.Source, 0, len(r.sources))
	for _, platform := range trend.Platforms() {
		if source, ok := r.sources[platform]; ok {
			all = append(all, source)
		}
	}
	return all
}
