package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/handlers/http/chi/asset"
	"github.com/SadeepaGajanayaka/dementialinkfinale/internal/adapters/handlers/http/chi/blob"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi. The timeout bounds every
// request, uploads included; the request size cap bounds multipart
// bodies before the upload pipeline ever sees them.
func NewRouter(logger *slog.Logger, assetHandler *asset.Handler, blobHandler *blob.Handler, env string, requestTimeout time.Duration, maxRequestBytes int64) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.RequestSize(maxRequestBytes))

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Range", "X-Request-ID"},
			ExposedHeaders:   []string{"Accept-Ranges", "Content-Range", "Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Mount("/assets", assetHandler.Routes())
	r.Mount("/blobs", blobHandler.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
