package services

import (
	"testing"

	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/pkg/eclass"
)

func newTestResolver(t *testing.T) Resolver {
	t.Helper()
	registry := eclass.NewRegistry()
	if err := registry.Register(eclass.Registration{Eclass: "BTSLemmaEntry", RoutePrefix: "/lemma", TemplateName: "lemma"}); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register(eclass.Registration{Eclass: "BTSText", RoutePrefix: "/text", TemplateName: "text"}); err != nil {
		t.Fatal(err)
	}
	return NewResolver(registry)
}

func TestLink_RoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	crumb := r.Link(types.ObjectReference{Eclass: "BTSLemmaEntry", ID: "100", Name: "nfr"})
	if crumb.Href != "/lemma/100" {
		t.Fatalf("href=%q", crumb.Href)
	}
	if crumb.Label != "nfr" {
		t.Fatalf("label=%q", crumb.Label)
	}
	if crumb.Inert() {
		t.Fatal("expected navigable crumb")
	}
}

func TestLink_UnregisteredEclassDegrades(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	crumb := r.Link(types.ObjectReference{Eclass: "BTSGhost", ID: "1", Name: "lost"})
	if !crumb.Inert() {
		t.Fatalf("href=%q", crumb.Href)
	}
	if crumb.Label != "lost" {
		t.Fatalf("label=%q", crumb.Label)
	}
	if crumb.Eclass != "BTSGhost" {
		t.Fatalf("eclass=%q", crumb.Eclass)
	}
}

func TestLink_CaptionFallback(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	crumb := r.Link(types.ObjectReference{Eclass: "BTSText", ID: "T7"})
	if crumb.Href != "/text/T7" {
		t.Fatalf("href=%q", crumb.Href)
	}
	if crumb.Label != "" {
		t.Fatalf("label=%q", crumb.Label)
	}
	if crumb.MsgKey != "caption_details_text" {
		t.Fatalf("msgKey=%q", crumb.MsgKey)
	}
}

func TestLink_Idempotent(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	ref := types.ObjectReference{Eclass: "BTSLemmaEntry", ID: "100", Name: "nfr", Type: "subst"}
	first := r.Link(ref)
	second := r.Link(ref)
	if first != second {
		t.Fatalf("first=%+v second=%+v", first, second)
	}
}

func TestLinks_PreservesOrder(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	refs := []types.ObjectReference{
		{Eclass: "BTSText", ID: "3", Name: "c"},
		{Eclass: "BTSText", ID: "1", Name: "a"},
		{Eclass: "BTSText", ID: "2", Name: "b"},
	}
	links := r.Links(refs)
	if len(links) != 3 {
		t.Fatalf("len=%d", len(links))
	}
	for i, want := range []string{"/text/3", "/text/1", "/text/2"} {
		if links[i].Href != want {
			t.Fatalf("links[%d].Href=%q want %q", i, links[i].Href, want)
		}
	}
}
