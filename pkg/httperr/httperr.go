package httperr

import (
	"errors"
	"fmt"
)

type BadRequestError struct {
	msg string
}

func (e *BadRequestError) Error() string { return e.msg }

func NewBadRequest(msg string) error { return &BadRequestError{msg: msg} }

func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// ObjectNotFoundError is raised when the primary subject of a details page
// does not exist upstream. It carries the requested id and the template name
// of the controller that owns the request so the HTTP layer can render a
// type-specific 404 page.
type ObjectNotFoundError struct {
	ID       string
	Template string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %q not found (%s)", e.ID, e.Template)
}

func NewObjectNotFound(id string, template string) error {
	return &ObjectNotFoundError{ID: id, Template: template}
}

func IsObjectNotFound(err error) bool {
	var target *ObjectNotFoundError
	return errors.As(err, &target)
}

// RouteNotFoundError means no controller is registered for an eclass.
// Callers recover from it locally; it never aborts a request.
type RouteNotFoundError struct {
	Eclass string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route registered for eclass %q", e.Eclass)
}

func NewRouteNotFound(eclass string) error {
	return &RouteNotFoundError{Eclass: eclass}
}

func IsRouteNotFound(err error) bool {
	var target *RouteNotFoundError
	return errors.As(err, &target)
}

// UpstreamError wraps a data-access failure that is not a missing object.
// It is never masked; the HTTP layer turns it into a server error.
type UpstreamError struct {
	err error
}

func (e *UpstreamError) Error() string { return "upstream: " + e.err.Error() }

func (e *UpstreamError) Unwrap() error { return e.err }

func NewUpstream(err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{err: err}
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
