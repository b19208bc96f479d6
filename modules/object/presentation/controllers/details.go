// Package controllers holds the generic details-page controller. One
// instance exists per domain-object type; constructing it registers the type
// in the eclass registry, so construction is the only registration step.
package controllers

import (
	"context"

	"github.com/aegyptia/corpus-web/modules/object/domain/ports"
	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/object/services"
	"github.com/aegyptia/corpus-web/pkg/eclass"
)

// Field is one labeled display value contributed to a details page. Label
// wins over MsgKey when both are set; Value is raw text, escaped by the
// render layer. Markup, when set, wins over Value and is emitted verbatim:
// it must only carry backend-provided markup, never user input.
type Field struct {
	MsgKey string
	Label  string
	Value  string
	Markup string
}

// Config declares what a concrete domain type contributes to its controller.
// Extend may add view-model entries after assembly; the base contract stays
// untouched.
type Config[T any] struct {
	RoutePrefix  string
	TemplateName string
	Service      ports.Service[T]
	Extend       func(vm *ViewModel[T])
}

// ViewModel is everything the render layer needs for one details page.
type ViewModel[T any] struct {
	Template    string
	Breadcrumbs []types.BreadCrumb
	Object      T
	Caption     string
	Related     map[string][]types.ObjectReference
	Relations   map[string][]types.BreadCrumb
	Fields      []Field
}

// Page is the type-erased part of a view model consumed by the render layer.
type Page struct {
	Template    string
	Caption     string
	Breadcrumbs []types.BreadCrumb
	Related     map[string][]types.ObjectReference
	Relations   map[string][]types.BreadCrumb
	Fields      []Field
}

func (vm ViewModel[T]) Page() Page {
	return Page{
		Template:    vm.Template,
		Caption:     vm.Caption,
		Breadcrumbs: vm.Breadcrumbs,
		Related:     vm.Related,
		Relations:   vm.Relations,
		Fields:      vm.Fields,
	}
}

// Details serves the single-object details view for one domain type.
type Details[T any] struct {
	service      ports.Service[T]
	resolver     services.Resolver
	routePrefix  string
	templateName string
	templatePath string
	extend       func(vm *ViewModel[T])
}

// NewDetails registers the controller's type in the registry and returns the
// controller. The template path is computed once; it is invariant for the
// controller's lifetime.
func NewDetails[T any](registry *eclass.Registry, cfg Config[T]) (*Details[T], error) {
	err := registry.Register(eclass.Registration{
		Eclass:       cfg.Service.Eclass(),
		RoutePrefix:  cfg.RoutePrefix,
		TemplateName: cfg.TemplateName,
	})
	if err != nil {
		return nil, err
	}
	return &Details[T]{
		service:      cfg.Service,
		resolver:     services.NewResolver(registry),
		routePrefix:  cfg.RoutePrefix,
		templateName: cfg.TemplateName,
		templatePath: cfg.TemplateName + "/details",
		extend:       cfg.Extend,
	}, nil
}

func (c *Details[T]) RoutePrefix() string { return c.routePrefix }

func (c *Details[T]) TemplateName() string { return c.templateName }

// Get assembles the details view model for one object id. A missing object
// surfaces as *httperr.ObjectNotFoundError; any other upstream failure as
// *httperr.UpstreamError.
func (c *Details[T]) Get(ctx context.Context, id string) (ViewModel[T], error) {
	details, breadcrumbs, err := services.Assemble[T](ctx, c.resolver, c.service, id, c.templateName)
	if err != nil {
		return ViewModel[T]{}, err
	}
	vm := ViewModel[T]{
		Template:    c.templatePath,
		Breadcrumbs: breadcrumbs,
		Object:      details.Object,
		Caption:     c.service.Label(details.Object),
		Related:     details.Relations,
		Relations:   details.Links,
	}
	if c.extend != nil {
		c.extend(&vm)
	}
	return vm, nil
}
