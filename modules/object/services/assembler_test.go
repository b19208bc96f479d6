package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aegyptia/corpus-web/modules/object/domain/ports"
	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/pkg/httperr"
)

type stubDoc struct {
	ID   string
	Name string
}

type stubService struct {
	details map[string]types.ObjectDetails[stubDoc]
	err     error
}

func (s stubService) Eclass() string { return "BTSLemmaEntry" }

func (s stubService) Label(obj stubDoc) string { return obj.Name }

func (s stubService) GetDetails(_ context.Context, id string) (types.ObjectDetails[stubDoc], error) {
	if s.err != nil {
		return types.ObjectDetails[stubDoc]{}, s.err
	}
	d, ok := s.details[id]
	if !ok {
		return types.ObjectDetails[stubDoc]{}, ports.ErrNotFound
	}
	return d, nil
}

func TestAssemble_Breadcrumbs(t *testing.T) {
	t.Parallel()

	svc := stubService{details: map[string]types.ObjectDetails[stubDoc]{
		"100": {Object: stubDoc{ID: "100", Name: "nfr"}},
	}}
	_, breadcrumbs, err := Assemble[stubDoc](context.Background(), newTestResolver(t), svc, "100", "lemma")
	if err != nil {
		t.Fatal(err)
	}
	if len(breadcrumbs) != 3 {
		t.Fatalf("len=%d", len(breadcrumbs))
	}
	if breadcrumbs[0].Href != "/" || breadcrumbs[0].MsgKey != "menu_global_home" {
		t.Fatalf("breadcrumbs[0]=%+v", breadcrumbs[0])
	}
	if breadcrumbs[1].Href != "/search" || breadcrumbs[1].MsgKey != "menu_global_search" {
		t.Fatalf("breadcrumbs[1]=%+v", breadcrumbs[1])
	}
	if !breadcrumbs[2].Inert() || breadcrumbs[2].MsgKey != "caption_details_lemma" {
		t.Fatalf("breadcrumbs[2]=%+v", breadcrumbs[2])
	}
}

func TestAssemble_NotFound(t *testing.T) {
	t.Parallel()

	svc := stubService{details: map[string]types.ObjectDetails[stubDoc]{}}
	_, _, err := Assemble[stubDoc](context.Background(), newTestResolver(t), svc, "404", "lemma")
	var nf *httperr.ObjectNotFoundError
	ok := errors.As(err, &nf)
	if !ok {
		t.Fatalf("err=%v", err)
	}
	if nf.ID != "404" || nf.Template != "lemma" {
		t.Fatalf("id=%q template=%q", nf.ID, nf.Template)
	}
}

func TestAssemble_UpstreamFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	svc := stubService{err: cause}
	_, _, err := Assemble[stubDoc](context.Background(), newTestResolver(t), svc, "100", "lemma")
	if !httperr.IsUpstream(err) {
		t.Fatalf("err=%v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap, err=%v", err)
	}
}

func TestAssemble_RelationOrderPreserved(t *testing.T) {
	t.Parallel()

	svc := stubService{details: map[string]types.ObjectDetails[stubDoc]{
		"100": {
			Object: stubDoc{ID: "100", Name: "nfr"},
			Relations: map[string][]types.ObjectReference{
				"attestations": {
					{Eclass: "BTSText", ID: "3", Name: "third"},
					{Eclass: "BTSText", ID: "1", Name: "first"},
					{Eclass: "BTSText", ID: "2", Name: "second"},
				},
			},
		},
	}}
	details, _, err := Assemble[stubDoc](context.Background(), newTestResolver(t), svc, "100", "lemma")
	if err != nil {
		t.Fatal(err)
	}
	links := details.Links["attestations"]
	if len(links) != 3 {
		t.Fatalf("len=%d", len(links))
	}
	for i, want := range []string{"/text/3", "/text/1", "/text/2"} {
		if links[i].Href != want {
			t.Fatalf("links[%d].Href=%q want %q", i, links[i].Href, want)
		}
	}
}

func TestAssemble_BrokenReferenceStaysInert(t *testing.T) {
	t.Parallel()

	svc := stubService{details: map[string]types.ObjectDetails[stubDoc]{
		"dm2434": {
			Object: stubDoc{ID: "dm2434", Name: "dm2434"},
			Relations: map[string][]types.ObjectReference{
				"subcorpus": {{Eclass: "BTSGhost", ID: "g1", Name: "ghost corpus"}},
			},
		},
	}}
	details, _, err := Assemble[stubDoc](context.Background(), newTestResolver(t), svc, "dm2434", "lemma")
	if err != nil {
		t.Fatal(err)
	}
	links := details.Links["subcorpus"]
	if len(links) != 1 {
		t.Fatalf("len=%d", len(links))
	}
	if !links[0].Inert() {
		t.Fatalf("href=%q", links[0].Href)
	}
	if links[0].Label != "ghost corpus" {
		t.Fatalf("label=%q", links[0].Label)
	}
}
