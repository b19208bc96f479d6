package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBadRequest(t *testing.T) {
	if IsBadRequest(nil) {
		t.Fatalf("expected false for nil")
	}
	if IsBadRequest(NewBadRequest("bad")) != true {
		t.Fatalf("expected true for BadRequestError")
	}
	if IsBadRequest(assertErr("other")) {
		t.Fatalf("expected false for non-BadRequestError")
	}
}

func TestIsObjectNotFound(t *testing.T) {
	err := NewObjectNotFound("dm2434", "lemma")
	if !IsObjectNotFound(err) {
		t.Fatalf("expected true for ObjectNotFoundError")
	}
	if IsObjectNotFound(assertErr("other")) {
		t.Fatalf("expected false for non-ObjectNotFoundError")
	}
	var nf *ObjectNotFoundError
	ok := errors.As(fmt.Errorf("details: %w", err), &nf)
	if !ok {
		t.Fatalf("expected unwrap through fmt.Errorf")
	}
	if nf.ID != "dm2434" || nf.Template != "lemma" {
		t.Fatalf("id=%q template=%q", nf.ID, nf.Template)
	}
}

func TestIsRouteNotFound(t *testing.T) {
	if !IsRouteNotFound(NewRouteNotFound("BTSGhost")) {
		t.Fatalf("expected true for RouteNotFoundError")
	}
	if IsRouteNotFound(NewObjectNotFound("1", "lemma")) {
		t.Fatalf("expected false for ObjectNotFoundError")
	}
}

func TestIsUpstream(t *testing.T) {
	if NewUpstream(nil) != nil {
		t.Fatalf("expected nil for nil cause")
	}
	cause := assertErr("backend down")
	err := NewUpstream(cause)
	if !IsUpstream(err) {
		t.Fatalf("expected true for UpstreamError")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
