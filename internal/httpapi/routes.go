package httpapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func (h *handler) routes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.rateLimit())
	api.Handle("/download", h.allow(h.handleDownload, http.MethodPost))
	api.Handle("/download-audio", h.allow(h.handleDownloadAudio, http.MethodPost))
	api.Handle("/video-info/{id}", h.allow(h.handleVideoInfo, http.MethodGet))
	api.Handle("/transcribe-audio", h.allow(h.handleTranscribeAudio, http.MethodPost))
	api.Handle("/summarize", h.allow(h.handleSummarize, http.MethodPost))

	r.Handle("/downloads/{file}", h.allow(h.handleStoredFile, http.MethodGet, http.MethodHead))
	r.Handle("/health", h.allow(h.handleHealth, http.MethodGet))

	if public := h.cfg.Paths.Public; public != "" {
		r.PathPrefix("/").Handler(h.allow(http.FileServer(http.Dir(public)).ServeHTTP, http.MethodGet, http.MethodHead))
	}

	notFound := http.HandlerFunc(h.handleNotFound)
	notAllowed := http.HandlerFunc(h.handleMethodNotAllowed)
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = notFound
		router.MethodNotAllowedHandler = notAllowed
	}

	c := cors.New(cors.Options{
		AllowedOrigins: h.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	// Outside the router so unmatched requests are tagged and logged too.
	return c.Handler(h.requestID(h.accessLog(r)))
}

// allow answers 405 with a JSON error for any method not listed. Methods
// are checked here rather than with mux route matchers so a known path
// with the wrong method never falls through to the not-found handler.
func (h *handler) allow(next http.HandlerFunc, methods ...string) http.Handler {
	allowed := strings.Join(methods, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !slices.Contains(methods, r.Method) {
			w.Header().Set("Allow", allowed)
			h.handleMethodNotAllowed(w, r)
			return
		}
		next(w, r)
	})
}
