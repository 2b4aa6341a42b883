package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"restaurant-catalog/internal/metrics"
)

// NewRouter wires the handler routes behind CORS, request metrics and,
// when debug logging is on, a per-request log line.
func NewRouter(handler *Handler, m *metrics.Metrics, debug bool) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods("GET")
		r.Use(m.Middleware)
	}
	if debug {
		r.Use(requestLogger)
	}

	return cors.Default().Handler(r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[catalog] %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Restaurant Catalog Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
