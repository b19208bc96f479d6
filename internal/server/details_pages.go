package server

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/aegyptia/corpus-web/internal/routing"
	lemmatypes "github.com/aegyptia/corpus-web/modules/lemma/domain/types"
	"github.com/aegyptia/corpus-web/modules/object/presentation/controllers"
	texttypes "github.com/aegyptia/corpus-web/modules/text/domain/types"
	thstypes "github.com/aegyptia/corpus-web/modules/ths/domain/types"
	"github.com/aegyptia/corpus-web/pkg/httperr"
)

type (
	lemmaDoc = lemmatypes.Lemma
	textDoc  = texttypes.Text
	thsDoc   = thstypes.Entry
)

// registerDetailsRoute wires `GET <prefix>/{id}` for one controller. A
// missing object renders the localized 404 page; any other backend failure
// is a server error, never silently downgraded.
func registerDetailsRoute[T any](router *routing.Router, v *views, ctrl *controllers.Details[T]) {
	router.Handle(routing.RouteClassUI, http.MethodGet, ctrl.RoutePrefix()+"/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vm, err := ctrl.Get(r.Context(), routing.Param(r, "id"))
		if err != nil {
			lang := v.msgs.lang(r)
			var nf *httperr.ObjectNotFoundError
			if errors.As(err, &nf) {
				v.writeShell(w, r, http.StatusNotFound, v.renderNotFound(lang, nf.ID))
				return
			}
			routing.WriteError(w, r, routing.RouteClassUI, http.StatusInternalServerError, "upstream_error", v.msgs.tr(lang, "error_upstream"))
			return
		}
		v.writePage(w, r, v.renderDetails(v.msgs.lang(r), vm.Page()))
	}))
}

func extendLemma(vm *controllers.ViewModel[lemmaDoc]) {
	l := vm.Object
	if !l.Glyphs.IsEmpty() {
		// prefer the backend's pre-rendered svg over the raw encodings
		if l.Glyphs.Svg != "" {
			vm.Fields = append(vm.Fields, controllers.Field{MsgKey: "label_glyphs", Markup: l.Glyphs.Svg})
		} else {
			value := l.Glyphs.Unicode
			if value == "" {
				value = l.Glyphs.Mdc
			}
			vm.Fields = append(vm.Fields, controllers.Field{MsgKey: "label_glyphs", Value: value})
		}
	}
	if l.Type != "" {
		vm.Fields = append(vm.Fields, controllers.Field{MsgKey: "label_pos", Value: l.Type})
	}
	if l.ReviewState != "" {
		vm.Fields = append(vm.Fields, controllers.Field{MsgKey: "label_review_state", Value: l.ReviewState})
	}

	langs := make([]string, 0, len(l.Translations))
	for lang := range l.Translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		vm.Fields = append(vm.Fields, controllers.Field{
			Label: lang,
			Value: strings.Join(l.Translations[lang], "; "),
		})
	}
}

func extendText(vm *controllers.ViewModel[textDoc]) {
	if vm.Object.ReviewState != "" {
		vm.Fields = append(vm.Fields, controllers.Field{MsgKey: "label_review_state", Value: vm.Object.ReviewState})
	}
}
