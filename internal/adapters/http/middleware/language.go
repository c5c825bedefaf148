package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/platform/i18n"
)

// queryLang lets a client override Accept-Language, e.g. ?lang=ja.
const queryLang = "lang"

// Language returns middleware that records the caller's language
// preferences for message localization and quick-add parsing. The lang
// query parameter wins over the Accept-Language header.
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var langs []string
			if lang := r.URL.Query().Get(queryLang); lang != "" {
				langs = append(langs, lang)
			}
			if accept := r.Header.Get("Accept-Language"); accept != "" {
				langs = append(langs, accept)
			}
			if len(langs) > 0 {
				r = r.WithContext(i18n.WithLanguages(r.Context(), langs...))
			}
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r)
		})
	}
}
