package routing

import (
	"context"
	"net/http"
	"runtime/debug"
)

type Router struct {
	classifier *Classifier
	routes     map[string]map[string]routeEntry
	patterns   []patternRouteEntry
}

type routeEntry struct {
	rc      RouteClass
	handler http.Handler
}

type patternRouteEntry struct {
	pattern PathPattern
	methods map[string]routeEntry
}

type paramsKey struct{}

// Param returns the value bound to a `{name}` segment of the matched route
// pattern, or "" for exact routes.
func Param(r *http.Request, name string) string {
	params, _ := r.Context().Value(paramsKey{}).(map[string]string)
	return params[name]
}

func NewRouter(classifier *Classifier) *Router {
	return &Router{
		classifier: classifier,
		routes:     make(map[string]map[string]routeEntry),
	}
}

// Handle registers a handler for a method and path. Paths may contain
// `{name}` parameter segments; parameters are available through Param.
func (r *Router) Handle(rc RouteClass, method string, path string, h http.Handler) {
	entry := routeEntry{rc: rc, handler: recovered(rc, h)}

	if pattern, ok := parsePathPattern(path); ok {
		for i := range r.patterns {
			if r.patterns[i].pattern.raw == path {
				r.patterns[i].methods[method] = entry
				return
			}
		}
		r.patterns = append(r.patterns, patternRouteEntry{
			pattern: pattern,
			methods: map[string]routeEntry{method: entry},
		})
		return
	}

	if r.routes[path] == nil {
		r.routes[path] = make(map[string]routeEntry)
	}
	r.routes[path][method] = entry
}

func recovered(rc RouteClass, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				_ = debug.Stack()
				WriteError(w, req, rc, http.StatusInternalServerError, "internal_error", "internal error")
			}
		}()
		h.ServeHTTP(w, req)
	})
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if methods, ok := r.routes[req.URL.Path]; ok {
		entry, ok := methods[req.Method]
		if !ok {
			WriteError(w, req, entrypointClass(methods, r.classifier.Classify(req.URL.Path)), http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		entry.handler.ServeHTTP(w, req)
		return
	}

	for _, p := range r.patterns {
		params, ok := p.pattern.Params(req.URL.Path)
		if !ok {
			continue
		}
		entry, ok := p.methods[req.Method]
		if !ok {
			WriteError(w, req, entrypointClass(p.methods, r.classifier.Classify(req.URL.Path)), http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
			return
		}
		if len(params) > 0 {
			req = req.WithContext(context.WithValue(req.Context(), paramsKey{}, params))
		}
		entry.handler.ServeHTTP(w, req)
		return
	}

	WriteError(w, req, r.classifier.Classify(req.URL.Path), http.StatusNotFound, "not_found", "not found")
}

func entrypointClass(methods map[string]routeEntry, fallback RouteClass) RouteClass {
	for _, e := range methods {
		return e.rc
	}
	return fallback
}
