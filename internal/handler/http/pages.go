package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
)

// renderPage executes the named template into a buffer before touching the
// response, so a template failure can still produce a clean 500 instead of
// a half-written page.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
