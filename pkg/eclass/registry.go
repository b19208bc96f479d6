// Package eclass maps BTS eclass identifiers to the controllers serving them.
//
// Every view controller registers itself once at construction time; after
// startup the registry is read-only. Lookups are resolved lazily by scanning
// the registration list and cached, including misses, since the set of
// registrations never changes afterwards.
package eclass

import (
	"sync"

	"github.com/aegyptia/corpus-web/pkg/httperr"
)

// Registration binds one domain-object type to its route prefix and the
// template directory used to render it.
type Registration struct {
	Eclass       string
	RoutePrefix  string
	TemplateName string
}

type Registry struct {
	mu            sync.RWMutex
	registrations []Registration
	cache         map[string]*Registration // nil entry = cached miss
}

func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]*Registration)}
}

// Register appends a controller registration. At most one route prefix may
// exist per eclass.
func (r *Registry) Register(reg Registration) error {
	if reg.Eclass == "" || reg.RoutePrefix == "" || reg.TemplateName == "" {
		return httperr.NewBadRequest("eclass: incomplete registration")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.registrations {
		if existing.Eclass == reg.Eclass {
			return httperr.NewBadRequest("eclass: duplicate registration for " + reg.Eclass)
		}
	}
	r.registrations = append(r.registrations, reg)
	return nil
}

// Registrations returns a copy of all registrations in registration order.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, len(r.registrations))
	copy(out, r.registrations)
	return out
}

// Lookup resolves the registration owning an eclass, caching the answer.
// Two readers racing on a first-time lookup may both scan; they compute the
// same result and the first writer wins.
func (r *Registry) Lookup(eclass string) (Registration, error) {
	r.mu.RLock()
	cached, ok := r.cache[eclass]
	r.mu.RUnlock()
	if ok {
		if cached == nil {
			return Registration{}, httperr.NewRouteNotFound(eclass)
		}
		return *cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[eclass]; ok {
		if cached == nil {
			return Registration{}, httperr.NewRouteNotFound(eclass)
		}
		return *cached, nil
	}
	for i := range r.registrations {
		if r.registrations[i].Eclass == eclass {
			reg := r.registrations[i]
			r.cache[eclass] = &reg
			return reg, nil
		}
	}
	r.cache[eclass] = nil
	return Registration{}, httperr.NewRouteNotFound(eclass)
}

// RouteFor returns the route prefix registered for an eclass.
func (r *Registry) RouteFor(eclass string) (string, error) {
	reg, err := r.Lookup(eclass)
	if err != nil {
		return "", err
	}
	return reg.RoutePrefix, nil
}

// TemplateFor returns the template name registered for an eclass.
func (r *Registry) TemplateFor(eclass string) (string, error) {
	reg, err := r.Lookup(eclass)
	if err != nil {
		return "", err
	}
	return reg.TemplateName, nil
}

// DetailsPath builds the URL path of the details page for an object with the
// given eclass and id.
func (r *Registry) DetailsPath(eclass string, id string) (string, error) {
	prefix, err := r.RouteFor(eclass)
	if err != nil {
		return "", err
	}
	return prefix + "/" + id, nil
}
