package server

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aegyptia/corpus-web/internal/routing"
	lemmaports "github.com/aegyptia/corpus-web/modules/lemma/domain/ports"
	lemmapersistence "github.com/aegyptia/corpus-web/modules/lemma/infrastructure/persistence"
	lemmaservices "github.com/aegyptia/corpus-web/modules/lemma/services"
	"github.com/aegyptia/corpus-web/modules/object/presentation/controllers"
	textports "github.com/aegyptia/corpus-web/modules/text/domain/ports"
	textpersistence "github.com/aegyptia/corpus-web/modules/text/infrastructure/persistence"
	textservices "github.com/aegyptia/corpus-web/modules/text/services"
	thsports "github.com/aegyptia/corpus-web/modules/ths/domain/ports"
	thspersistence "github.com/aegyptia/corpus-web/modules/ths/infrastructure/persistence"
	thsservices "github.com/aegyptia/corpus-web/modules/ths/services"
	"github.com/aegyptia/corpus-web/pkg/eclass"
)

//go:embed allowlist.yaml
var defaultAllowlist []byte

func NewHandler() (http.Handler, error) {
	return NewHandlerWithOptions(HandlerOptions{})
}

type HandlerOptions struct {
	LemmaStore lemmaports.Store
	TextStore  textports.Store
	ThsStore   thsports.Store
}

func NewHandlerWithOptions(opts HandlerOptions) (http.Handler, error) {
	var a routing.Allowlist
	var err error
	if path := os.Getenv("ALLOWLIST_PATH"); path != "" {
		a, err = routing.LoadAllowlist(path)
	} else {
		a, err = routing.ParseAllowlistYAML(defaultAllowlist)
	}
	if err != nil {
		return nil, err
	}

	classifier, err := routing.NewClassifier(a, "server")
	if err != nil {
		return nil, err
	}

	msgs, err := newI18n()
	if err != nil {
		return nil, err
	}
	v := newViews(msgs)

	lemmaStore := opts.LemmaStore
	textStore := opts.TextStore
	thsStore := opts.ThsStore
	if lemmaStore == nil || textStore == nil || thsStore == nil {
		pool, err := pgxpool.New(context.Background(), dbDSNFromEnv())
		if err != nil {
			return nil, err
		}
		if lemmaStore == nil {
			lemmaStore = lemmapersistence.NewLemmaPGStore(pool)
		}
		if textStore == nil {
			textStore = textpersistence.NewTextPGStore(pool)
		}
		if thsStore == nil {
			thsStore = thspersistence.NewThsPGStore(pool)
		}
	}

	registry := eclass.NewRegistry()

	lemmaCtrl, err := controllers.NewDetails(registry, controllers.Config[lemmaDoc]{
		RoutePrefix:  "/lemma",
		TemplateName: "lemma",
		Service:      lemmaservices.NewService(lemmaStore),
		Extend:       extendLemma,
	})
	if err != nil {
		return nil, err
	}
	textCtrl, err := controllers.NewDetails(registry, controllers.Config[textDoc]{
		RoutePrefix:  "/text",
		TemplateName: "text",
		Service:      textservices.NewService(textStore),
		Extend:       extendText,
	})
	if err != nil {
		return nil, err
	}
	thsCtrl, err := controllers.NewDetails(registry, controllers.Config[thsDoc]{
		RoutePrefix:  "/thesaurus",
		TemplateName: "ths",
		Service:      thsservices.NewService(thsStore),
	})
	if err != nil {
		return nil, err
	}

	router := routing.NewRouter(classifier)

	router.Handle(routing.RouteClassUI, http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v.writePage(w, r, v.renderHome(msgs.lang(r), registry.Registrations()))
	}))
	router.Handle(routing.RouteClassUI, http.MethodGet, "/search", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v.writePage(w, r, v.renderSearch(msgs.lang(r)))
	}))

	router.Handle(routing.RouteClassOps, http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}))
	router.Handle(routing.RouteClassOps, http.MethodGet, "/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}))

	router.Handle(routing.RouteClassUI, http.MethodGet, "/lang/{code}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := routing.Param(r, "code")
		if msgs.supported(code) {
			setLangCookie(w, code)
		}
		redirectBack(w, r)
	}))

	registerDetailsRoute(router, v, lemmaCtrl)
	registerDetailsRoute(router, v, textCtrl)
	registerDetailsRoute(router, v, thsCtrl)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	return mux, nil
}

func NewMux() http.Handler {
	h, err := NewHandler()
	if err != nil {
		panic(errors.New("server: failed to build handler: " + err.Error()))
	}
	return h
}
