package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves a pre-built single-page-application bundle. Requests
// matching a file under StaticDir are served from disk; anything else
// gets IndexFile so the client-side router can take over. Errors are
// whatever http.ServeFile produces (404 for missing assets, 500 when the
// bundle itself is missing).
type SPAHandler struct {
	StaticDir string
	IndexFile string
}

// NewSPAHandler returns a handler rooted at staticDir with the standard
// index.html fallback.
func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{
		StaticDir: staticDir,
		IndexFile: "index.html",
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.StaticDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.StaticDir, h.IndexFile))
}
