package server

import (
	"html"
	"net/http"
	"sort"
	"strings"

	"github.com/aegyptia/corpus-web/modules/object/domain/types"
	"github.com/aegyptia/corpus-web/modules/object/presentation/controllers"
	"github.com/aegyptia/corpus-web/pkg/eclass"
)

type views struct {
	msgs *i18n
}

func newViews(msgs *i18n) *views {
	return &views{msgs: msgs}
}

func setLangCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = "/"
	}
	http.Redirect(w, r, ref, http.StatusFound)
}

func (v *views) crumbLabel(lang string, crumb types.BreadCrumb) string {
	if crumb.Label != "" {
		return crumb.Label
	}
	if crumb.MsgKey != "" {
		return v.msgs.tr(lang, crumb.MsgKey)
	}
	return ""
}

func (v *views) renderCrumb(lang string, crumb types.BreadCrumb) string {
	label := html.EscapeString(v.crumbLabel(lang, crumb))
	classes := "crosslink"
	if crumb.Eclass != "" {
		classes += " eclass-" + cssToken(crumb.Eclass)
	}
	if crumb.Type != "" {
		classes += " type-" + cssToken(crumb.Type)
	}
	if crumb.Inert() {
		return `<span class="` + classes + ` inert">` + label + `</span>`
	}
	return `<a class="` + classes + `" href="` + html.EscapeString(crumb.Href) + `">` + label + `</a>`
}

func cssToken(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s))
}

func (v *views) renderBreadcrumbs(lang string, crumbs []types.BreadCrumb) string {
	var b strings.Builder
	b.WriteString(`<nav class="breadcrumbs"><ol>`)
	for _, crumb := range crumbs {
		b.WriteString(`<li>`)
		b.WriteString(v.renderCrumb(lang, crumb))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ol></nav>`)
	return b.String()
}

// renderDetails renders the single-object details view. The template name
// picks the CSS scope by convention; the markup itself is shared by all
// object types since the type-specific parts arrive as fields.
func (v *views) renderDetails(lang string, page controllers.Page) string {
	var b strings.Builder
	b.WriteString(`<article class="details ` + cssToken(page.Template) + `">`)
	b.WriteString(v.renderBreadcrumbs(lang, page.Breadcrumbs))
	b.WriteString(`<h1>` + html.EscapeString(page.Caption) + `</h1>`)

	if len(page.Fields) > 0 {
		b.WriteString(`<dl class="object-fields">`)
		for _, f := range page.Fields {
			label := f.Label
			if label == "" {
				label = v.msgs.tr(lang, f.MsgKey)
			}
			b.WriteString(`<dt>` + html.EscapeString(label) + `</dt>`)
			if f.Markup != "" {
				b.WriteString(`<dd>` + f.Markup + `</dd>`)
			} else {
				b.WriteString(`<dd>` + html.EscapeString(f.Value) + `</dd>`)
			}
		}
		b.WriteString(`</dl>`)
	}

	names := make([]string, 0, len(page.Relations))
	for name := range page.Relations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		links := page.Relations[name]
		if len(links) == 0 {
			continue
		}
		heading := v.msgs.tr(lang, "relation_"+name)
		if heading == "relation_"+name {
			heading = name
		}
		b.WriteString(`<section class="relation relation-` + cssToken(name) + `">`)
		b.WriteString(`<h2>` + html.EscapeString(heading) + `</h2><ul>`)
		for _, link := range links {
			b.WriteString(`<li>` + v.renderCrumb(lang, link) + `</li>`)
		}
		b.WriteString(`</ul></section>`)
	}

	b.WriteString(`</article>`)
	return b.String()
}

func (v *views) renderHome(lang string, registrations []eclass.Registration) string {
	var b strings.Builder
	b.WriteString(`<h1>` + html.EscapeString(v.msgs.tr(lang, "site_title")) + `</h1>`)
	b.WriteString(`<p>` + html.EscapeString(v.msgs.tr(lang, "home_intro")) + `</p>`)
	if len(registrations) > 0 {
		b.WriteString(`<nav class="object-types"><ul>`)
		for _, reg := range registrations {
			label := v.msgs.tr(lang, "caption_details_"+reg.TemplateName)
			b.WriteString(`<li><a href="` + html.EscapeString(reg.RoutePrefix) + `">` + html.EscapeString(label) + `</a></li>`)
		}
		b.WriteString(`</ul></nav>`)
	}
	b.WriteString(`<p><a href="/search">` + html.EscapeString(v.msgs.tr(lang, "menu_global_search")) + `</a></p>`)
	return b.String()
}

func (v *views) renderSearch(lang string) string {
	var b strings.Builder
	b.WriteString(`<h1>` + html.EscapeString(v.msgs.tr(lang, "menu_global_search")) + `</h1>`)
	b.WriteString(`<p>` + html.EscapeString(v.msgs.tr(lang, "search_intro")) + `</p>`)
	return b.String()
}

func (v *views) renderNotFound(lang string, id string) string {
	var b strings.Builder
	b.WriteString(`<h1>404</h1>`)
	b.WriteString(`<p class="not-found">` + html.EscapeString(v.msgs.tr(lang, "error_object_not_found")))
	b.WriteString(` <code>` + html.EscapeString(id) + `</code></p>`)
	return b.String()
}

func (v *views) renderTopbar() string {
	var b strings.Builder
	b.WriteString(`<div class="topbar">`)
	for i, code := range v.msgs.Languages() {
		if i > 0 {
			b.WriteString(` | `)
		}
		b.WriteString(`<a href="/lang/` + html.EscapeString(code) + `">` + html.EscapeString(strings.ToUpper(code)) + `</a>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (v *views) writeShell(w http.ResponseWriter, r *http.Request, status int, bodyHTML string) {
	lang := v.msgs.lang(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	var b strings.Builder
	b.WriteString(`<!doctype html><html lang="` + html.EscapeString(lang) + `"><head>`)
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<title>` + html.EscapeString(v.msgs.tr(lang, "site_title")) + `</title>`)
	b.WriteString(`</head><body>`)
	b.WriteString(v.renderTopbar())
	b.WriteString(`<main id="content">`)
	b.WriteString(bodyHTML)
	b.WriteString(`</main></body></html>`)
	_, _ = w.Write([]byte(b.String()))
}

func (v *views) writePage(w http.ResponseWriter, r *http.Request, bodyHTML string) {
	v.writeShell(w, r, http.StatusOK, bodyHTML)
}
