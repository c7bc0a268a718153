package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	_ "paws-sync/docs"

	blobmem "paws-sync/internal/adapters/blobstore/memory"
	mem "paws-sync/internal/adapters/storage/memory"
	"paws-sync/internal/domain/dogs"
	"paws-sync/internal/domain/reminders"
	"paws-sync/internal/domain/syncstate"
	"paws-sync/internal/middleware"
	"paws-sync/internal/platform/livestream"
	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/ports/blobstore"
	"paws-sync/internal/ports/breeds"
	"paws-sync/internal/ports/remotestore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcionales: sin Store/Blobs se usan los adapters en memoria.
	Store remotestore.Store
	Blobs blobstore.Store

	// Sin catálogo, /breeds responde 503.
	Catalog breeds.Catalog

	Logger logger.Logger
	Stream *livestream.Settings
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore(log)
	}
	blobs := opts.Blobs
	if blobs == nil {
		blobs = blobmem.NewStore(blobmem.DefaultBaseURL)
	}
	stream := opts.Stream
	if stream == nil {
		stream = livestream.DefaultSettings()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// El usuario de cada operación sale de los claims del request.
	ident := middleware.ClaimsIdentity{}

	dogsMgr := dogs.NewManager(store, blobs, ident, log)
	remindersSvc := reminders.NewService(store, ident, dogsMgr, log)

	dogs.RegisterRoutes(r, dogsMgr, log, stream)
	reminders.RegisterRoutes(r, remindersSvc, log, stream)
	syncstate.RegisterRoutes(r, dogsMgr, log, stream)

	r.Get("/breeds", breedsHandler(opts.Catalog))
	r.Get("/blobs/*", blobHandler(blobs))

	return r
}

// healthHandler godoc
// @Summary Health check
// @Tags system
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// breedsHandler godoc
// @Summary Catálogo de razas
// @Tags breeds
// @Produce json
// @Success 200 {array} breeds.Breed
// @Failure 502 {string} string "upstream error"
// @Failure 503 {string} string "breed catalog not configured"
// @Router /breeds [get]
func breedsHandler(c breeds.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			http.Error(w, "breed catalog not configured", http.StatusServiceUnavailable)
			return
		}
		list, err := c.ListBreeds(r.Context())
		if err != nil {
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// blobHandler sirve el contenido de las URLs que emite el blobstore.
//
// @Summary Descargar blob
// @Tags blobs
// @Produce image/jpeg
// @Param path path string true "Path dentro del blobstore"
// @Success 200 {file} file
// @Failure 404 {string} string "not found"
// @Router /blobs/{path} [get]
func blobHandler(blobs blobstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := blobstore.CleanPath(chi.URLParam(r, "*"))
		if err != nil {
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}
		rc, err := blobs.Open(r.Context(), p)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		ct := "application/octet-stream"
		if strings.HasSuffix(p, ".jpg") {
			ct = "image/jpeg"
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Cache-Control", "private, max-age=86400")
		_, _ = io.Copy(w, rc)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
