package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/middleware"
	"paws-sync/internal/platform/livestream"
	"paws-sync/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// maxImageBytes limita el cuerpo de las subidas de imagen.
const maxImageBytes = 10 << 20

func RegisterRoutes(r chi.Router, m *Manager, log logger.Logger, ws *livestream.Settings) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(m))
		dr.Get("/", listDogsHandler(m))

		dr.Route("/{dogID}", func(d chi.Router) {
			d.Get("/", getDogHandler(m))
			d.Put("/", updateDogHandler(m))
			d.Delete("/", deleteDogHandler(m))
			d.Put("/image", putDogImageHandler(m))

			d.Get("/notes", listNotesHandler(m))
			d.Post("/notes", createNoteHandler(m))
			d.Put("/notes/{noteID}", updateNoteHandler(m))
			d.Delete("/notes/{noteID}", deleteChildHandler(m.DeleteNote, "noteID"))
			d.Get("/notes/ws", streamHandler(m.SubscribeNotes, "notes", log, ws))

			d.Get("/poop", listPoopHandler(m))
			d.Post("/poop", createPoopHandler(m))
			d.Post("/poop/image", uploadPoopImageHandler(m))
			d.Put("/poop/{poopID}", updatePoopHandler(m))
			d.Delete("/poop/{poopID}", deleteChildHandler(m.DeletePoop, "poopID"))
			d.Get("/poop/ws", streamHandler(m.SubscribePoop, "poop", log, ws))

			d.Get("/weights", listWeightsHandler(m))
			d.Post("/weights", createWeightHandler(m))
			d.Put("/weights/{weightID}", updateWeightHandler(m))
			d.Delete("/weights/{weightID}", deleteChildHandler(m.DeleteWeight, "weightID"))
			d.Get("/weights/ws", streamHandler(m.SubscribeWeights, "weights", log, ws))

			d.Get("/walks/{date}", walkDayHandler(m))
			d.Get("/walks/{date}/{walkType}", getWalkHandler(m))
			d.Put("/walks/{date}/{walkType}", putWalkHandler(m))
		})
	})

	r.Put("/me/profile/image", putProfileImageHandler(m))
}

// dogRequest es el cuerpo para crear/actualizar un perro (overwrite completo).
type dogRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	BirthDate int64    `json:"birthDate"` // epoch ms
	Gender    string   `json:"gender" enums:"male,female"`
	Weight    float64  `json:"weight"`
	Color     []string `json:"color"`
	ImageURL  string   `json:"imageUrl"`
	Tags      []string `json:"tags"`
	BreedName string   `json:"breedName"`
}

func (req dogRequest) input() DogInput {
	return DogInput{
		ID:        req.ID,
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Weight:    req.Weight,
		Color:     req.Color,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		BreedName: req.BreedName,
	}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type poopRequest struct {
	Color       string `json:"color"`
	Consistency string `json:"consistency" enums:"normal,soft,hard,liquid"`
	Notes       string `json:"notes"`
	ImageURL    string `json:"imageUrl"`
}

type weightRequest struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

type walkRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

type walkResponse struct {
	Date        string   `json:"date"`
	WalkType    WalkType `json:"walkType"`
	IsCompleted bool     `json:"isCompleted"`
}

type imageResponse struct {
	URL string `json:"url"`
}

// dogImageResponse: el perro queda guardado aunque la imagen falle.
type dogImageResponse struct {
	Dog   Dog    `json:"dog"`
	Error string `json:"error,omitempty"`
}

// createDogHandler godoc
// @Summary Crear perro
// @Description Crea el perfil del perro. Si no se envía id, lo genera el servidor.
// @Tags dogs
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body dogRequest true "Perfil del perro"
// @Success 201 {object} Dog
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "remote failure"
// @Router /dogs [post]
func createDogHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req dogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := m.AddDog(r.Context(), req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, d)
	}
}

// listDogsHandler godoc
// @Summary Listar perros del usuario
// @Tags dogs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} Dog
// @Failure 401 {string} string "unauthorized"
// @Router /dogs [get]
func listDogsHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		items, err := m.GetDogs(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getDogHandler godoc
// @Summary Obtener perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} Dog
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		d, err := m.GetDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Sobrescribe el perfil completo (no es PATCH): enviar todos los campos.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body dogRequest true "Perfil completo"
// @Success 200 {object} Dog
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /dogs/{dogID} [put]
func updateDogHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req dogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := m.UpdateDog(r.Context(), chi.URLParam(r, "dogID"), req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Description Borra el perro y todas sus subcolecciones (notes, poop, weights, walks).
// @Tags dogs
// @Param dogID path string true "ID del perro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "remote failure"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if err := m.DeleteDog(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// putDogImageHandler godoc
// @Summary Subir imagen del perro
// @Description El cuerpo es la imagen (image/jpeg). Si la subida falla, el perfil no cambia y se responde 502 con el perro actual.
// @Tags dogs
// @Accept image/jpeg
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogImageResponse
// @Failure 404 {string} string "dog not found"
// @Failure 502 {object} dogImageResponse
// @Router /dogs/{dogID}/image [put]
func putDogImageHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		d, err := m.GetDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}

		updated, err := m.SetDogImage(r.Context(), d, http.MaxBytesReader(w, r.Body, maxImageBytes))
		if err != nil {
			writeJSON(w, http.StatusBadGateway, dogImageResponse{Dog: updated, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, dogImageResponse{Dog: updated})
	}
}

// putProfileImageHandler godoc
// @Summary Subir foto de perfil del usuario
// @Tags me
// @Accept image/jpeg
// @Produce json
// @Success 200 {object} imageResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "image upload failed"
// @Router /me/profile/image [put]
func putProfileImageHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		url, err := m.UploadProfileImage(r.Context(), http.MaxBytesReader(w, r.Body, maxImageBytes))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, imageResponse{URL: url})
	}
}

// ---- notes ----

// listNotesHandler godoc
// @Summary Notas del perro
// @Tags notes
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {array} Note
// @Router /dogs/{dogID}/notes [get]
func listNotesHandler(m *Manager) http.HandlerFunc {
	return listHandler(m.Notes)
}

// createNoteHandler godoc
// @Summary Crear nota
// @Tags notes
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body noteRequest true "Nota"
// @Success 201 {object} Note
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/notes [post]
func createNoteHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		n, err := m.AddNote(r.Context(), chi.URLParam(r, "dogID"), req.Title, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, n)
	}
}

// updateNoteHandler godoc
// @Summary Actualizar nota
// @Description Overwrite de título y contenido; createdDate se conserva y lastModified lo pone el servidor.
// @Tags notes
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param noteID path string true "ID de la nota"
// @Param payload body noteRequest true "Nota completa"
// @Success 200 {object} Note
// @Failure 404 {string} string "dog not found / entry not found"
// @Router /dogs/{dogID}/notes/{noteID} [put]
func updateNoteHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		n, err := m.UpdateNote(r.Context(), chi.URLParam(r, "dogID"), Note{
			ID:      chi.URLParam(r, "noteID"),
			Title:   strings.TrimSpace(req.Title),
			Content: strings.TrimSpace(req.Content),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

// ---- poop ----

// listPoopHandler godoc
// @Summary Registros de caca
// @Tags poop
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {array} Poop
// @Router /dogs/{dogID}/poop [get]
func listPoopHandler(m *Manager) http.HandlerFunc {
	return listHandler(m.PoopEntries)
}

// createPoopHandler godoc
// @Summary Registrar caca
// @Tags poop
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body poopRequest true "Registro"
// @Success 201 {object} Poop
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/poop [post]
func createPoopHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req poopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p, err := m.AddPoop(r.Context(), chi.URLParam(r, "dogID"), PoopInput{
			Color:       req.Color,
			Consistency: req.Consistency,
			Notes:       req.Notes,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// updatePoopHandler godoc
// @Summary Actualizar registro de caca
// @Tags poop
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param poopID path string true "ID del registro"
// @Param payload body poopRequest true "Registro completo"
// @Success 200 {object} Poop
// @Failure 404 {string} string "dog not found / entry not found"
// @Router /dogs/{dogID}/poop/{poopID} [put]
func updatePoopHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req poopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		c, ok := ParseConsistency(req.Consistency)
		if !ok {
			http.Error(w, "consistency must be normal, soft, hard or liquid", http.StatusBadRequest)
			return
		}
		p, err := m.UpdatePoop(r.Context(), chi.URLParam(r, "dogID"), Poop{
			ID:          chi.URLParam(r, "poopID"),
			Color:       strings.TrimSpace(req.Color),
			Consistency: c,
			Notes:       strings.TrimSpace(req.Notes),
			ImageURL:    strings.TrimSpace(req.ImageURL),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// uploadPoopImageHandler godoc
// @Summary Subir imagen para un registro de caca
// @Description Devuelve la URL para usar como imageUrl al crear/actualizar el registro.
// @Tags poop
// @Accept image/jpeg
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} imageResponse
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/poop/image [post]
func uploadPoopImageHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		url, err := m.UploadEntityImage(r.Context(), chi.URLParam(r, "dogID"),
			http.MaxBytesReader(w, r.Body, maxImageBytes), FolderPoopImages)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, imageResponse{URL: url})
	}
}

// ---- weights ----

// listWeightsHandler godoc
// @Summary Historial de peso (más reciente primero)
// @Tags weights
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {array} Weight
// @Router /dogs/{dogID}/weights [get]
func listWeightsHandler(m *Manager) http.HandlerFunc {
	return listHandler(m.Weights)
}

// createWeightHandler godoc
// @Summary Registrar peso
// @Tags weights
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body weightRequest true "Peso en kg; id opcional (UUID del cliente)"
// @Success 201 {object} Weight
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/weights [post]
func createWeightHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req weightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := m.AddWeight(r.Context(), chi.URLParam(r, "dogID"), req.ID, req.Weight)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// updateWeightHandler godoc
// @Summary Corregir peso
// @Tags weights
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param weightID path string true "ID del registro"
// @Param payload body weightRequest true "Peso en kg"
// @Success 200 {object} Weight
// @Failure 404 {string} string "dog not found / entry not found"
// @Router /dogs/{dogID}/weights/{weightID} [put]
func updateWeightHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req weightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		out, err := m.UpdateWeight(r.Context(), chi.URLParam(r, "dogID"), Weight{
			ID:     chi.URLParam(r, "weightID"),
			Weight: req.Weight,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ---- walks ----

// walkDayHandler godoc
// @Summary Paseos de un día
// @Tags walks
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} WalkDay
// @Router /dogs/{dogID}/walks/{date} [get]
func walkDayHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		day, err := m.WalkDay(r.Context(), chi.URLParam(r, "dogID"), chi.URLParam(r, "date"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, day)
	}
}

// getWalkHandler godoc
// @Summary Estado de un paseo
// @Tags walks
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Param walkType path string true "morning, afternoon o evening"
// @Success 200 {object} walkResponse
// @Router /dogs/{dogID}/walks/{date}/{walkType} [get]
func getWalkHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		date := chi.URLParam(r, "date")
		wt := WalkType(chi.URLParam(r, "walkType"))
		done, err := m.GetWalkCompletion(r.Context(), chi.URLParam(r, "dogID"), date, wt)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, walkResponse{Date: date, WalkType: wt, IsCompleted: done})
	}
}

// putWalkHandler godoc
// @Summary Marcar/desmarcar paseo
// @Tags walks
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Param walkType path string true "morning, afternoon o evening"
// @Param payload body walkRequest true "Estado"
// @Success 200 {object} walkResponse
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/walks/{date}/{walkType} [put]
func putWalkHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req walkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		walk, err := m.SaveWalkCompletion(r.Context(), chi.URLParam(r, "dogID"),
			chi.URLParam(r, "date"), WalkType(chi.URLParam(r, "walkType")), req.IsCompleted)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, walkResponse{Date: walk.Date, WalkType: walk.WalkType, IsCompleted: walk.IsCompleted})
	}
}

// ---- genéricos ----

func listHandler[T any](list func(ctx context.Context, dogID string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		items, err := list(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// deleteChildHandler godoc
// @Summary Borrar registro del historial
// @Tags history
// @Param dogID path string true "ID del perro"
// @Param noteID path string false "ID de la nota"
// @Param poopID path string false "ID del registro de caca"
// @Param weightID path string false "ID del peso"
// @Success 204
// @Router /dogs/{dogID}/notes/{noteID} [delete]
// @Router /dogs/{dogID}/poop/{poopID} [delete]
// @Router /dogs/{dogID}/weights/{weightID} [delete]
func deleteChildHandler(del func(ctx context.Context, dogID, id string) error, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if err := del(r.Context(), chi.URLParam(r, "dogID"), chi.URLParam(r, param)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// streamHandler abre un websocket que empuja la lista completa en cada cambio.
// La suscripción se libera al cerrarse el socket.
//
// @Summary Historial en vivo (websocket)
// @Description Empuja {"type":"notes"|"poop"|"weights","data":[...]} en cada cambio.
// @Tags history
// @Param dogID path string true "ID del perro"
// @Success 101
// @Failure 401 {string} string "unauthorized"
// @Router /dogs/{dogID}/notes/ws [get]
// @Router /dogs/{dogID}/poop/ws [get]
// @Router /dogs/{dogID}/weights/ws [get]
func streamHandler[T any](
	subscribe func(ctx context.Context, dogID string, onChange func([]T)) (*entity.Subscription, error),
	kind string,
	log logger.Logger,
	settings *livestream.Settings,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		dogID := chi.URLParam(r, "dogID")

		livestream.Serve(w, r, settings, log, func(ctx context.Context, s *livestream.Session) (func(livestream.Inbound), error) {
			_, err := subscribe(ctx, dogID, func(items []T) {
				s.Send(livestream.Message{Type: kind, Data: items})
			})
			return nil, err
		})
	}
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotAuthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, entity.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	case errors.Is(err, ErrEntryNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	case errors.Is(err, ErrImageUpload), errors.Is(err, entity.ErrRemoteFailure):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
