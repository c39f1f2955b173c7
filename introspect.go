package formatter

import (
	"net/http"

	"github.com/djedproject/formatter/pkg/response"
)

// EntryInfo is the JSON form of an Entry.
type EntryInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Symbol      string `json:"symbol"`
}

// Introspect returns the registry entries ordered by name.
func Introspect(reg *Registry) []EntryInfo {
	all := reg.All()
	infos := make([]EntryInfo, len(all))
	for i, e := range all {
		infos[i] = EntryInfo{Name: e.Name, Description: e.Description, Symbol: e.Symbol}
	}
	return infos
}

// IntrospectHandler serves the registry entries as JSON on GET and HEAD.
func IntrospectHandler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			_ = response.Error(w, response.ErrMethodNotAllowed)
			return
		}
		infos := Introspect(reg)
		_ = response.JSONWithMeta(w, infos, map[string]int{"total": len(infos)})
	})
}
