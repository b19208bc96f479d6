package server

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

// i18n resolves message keys against the embedded per-language bundles.
// The language is negotiated from the Accept-Language header; a "lang"
// cookie set via /lang/{code} wins.
type i18n struct {
	matcher language.Matcher
	codes   []string
	bundles map[string]map[string]string
}

const fallbackLang = "en"

func newI18n() (*i18n, error) {
	entries, err := fs.Glob(messageFiles, "messages/*.yaml")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("i18n: no message bundles")
	}
	sort.Strings(entries)

	m := &i18n{bundles: make(map[string]map[string]string, len(entries))}
	var tags []language.Tag

	// fallback language first so the matcher prefers it on no match
	for _, pass := range []bool{true, false} {
		for _, name := range entries {
			code := strings.TrimSuffix(path.Base(name), ".yaml")
			if (code == fallbackLang) != pass {
				continue
			}
			tag, err := language.Parse(code)
			if err != nil {
				return nil, err
			}
			b, err := fs.ReadFile(messageFiles, name)
			if err != nil {
				return nil, err
			}
			bundle := make(map[string]string)
			if err := yaml.Unmarshal(b, &bundle); err != nil {
				return nil, err
			}
			m.codes = append(m.codes, code)
			m.bundles[code] = bundle
			tags = append(tags, tag)
		}
	}
	if m.bundles[fallbackLang] == nil {
		return nil, errors.New("i18n: missing fallback bundle")
	}
	m.matcher = language.NewMatcher(tags)
	return m, nil
}

// Languages lists the available language codes, fallback first.
func (m *i18n) Languages() []string {
	return append([]string(nil), m.codes...)
}

func (m *i18n) supported(code string) bool {
	_, ok := m.bundles[code]
	return ok
}

func (m *i18n) lang(r *http.Request) string {
	if c, err := r.Cookie("lang"); err == nil && m.supported(c.Value) {
		return c.Value
	}
	_, index := language.MatchStrings(m.matcher, r.Header.Get("Accept-Language"))
	return m.codes[index]
}

func (m *i18n) tr(lang string, key string) string {
	if bundle, ok := m.bundles[lang]; ok {
		if msg, ok := bundle[key]; ok {
			return msg
		}
	}
	if msg, ok := m.bundles[fallbackLang][key]; ok {
		return msg
	}
	return key
}
