package syncstate

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"paws-sync/internal/domain/dogs"
	"paws-sync/internal/middleware"
	"paws-sync/internal/platform/livestream"
	"paws-sync/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Comandos que acepta /session/ws.
const (
	cmdSelect     = "select"
	cmdClear      = "clearSelection"
	cmdAdd        = "add"
	cmdRefresh    = "refresh"
	cmdUpdate     = "update"
	cmdDelete     = "delete"
	cmdClearError = "clearError"
)

type selectCommand struct {
	DogID string `json:"dogId"`
}

type updateCommand struct {
	DogID string     `json:"dogId"`
	Dog   dogRequest `json:"dog"`
}

type dogRequest struct {
	Name      string   `json:"name"`
	BirthDate int64    `json:"birthDate"`
	Gender    string   `json:"gender"`
	Weight    float64  `json:"weight"`
	Color     []string `json:"color"`
	ImageURL  string   `json:"imageUrl"`
	Tags      []string `json:"tags"`
	BreedName string   `json:"breedName"`
}

func RegisterRoutes(r chi.Router, src DogSource, log logger.Logger, ws *livestream.Settings) {
	r.Get("/session/ws", sessionHandler(src, log, ws))
}

// sessionHandler godoc
// @Summary Estado compartido de perros (websocket)
// @Description Empuja {"type":"state","data":State} en cada cambio. Comandos: select, clearSelection, add, refresh, update, delete, clearError.
// @Tags session
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param access_token query string false "Token cuando el cliente no puede mandar headers"
// @Success 101
// @Failure 401 {string} string "unauthorized"
// @Router /session/ws [get]
func sessionHandler(src DogSource, log logger.Logger, settings *livestream.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log := log.With(map[string]any{"user_id": claims.UserID})

		livestream.Serve(w, r, settings, log, func(ctx context.Context, s *livestream.Session) (func(livestream.Inbound), error) {
			st := New(src, log)
			st.Observe(func(state State) {
				s.Send(livestream.Message{Type: "state", Data: state})
			})
			context.AfterFunc(ctx, st.Close)
			st.Start(ctx)

			return func(in livestream.Inbound) {
				handleCommand(ctx, st, in, log)
			}, nil
		})
	}
}

func handleCommand(ctx context.Context, st *Store, in livestream.Inbound, log logger.Logger) {
	switch in.Type {
	case cmdSelect:
		var c selectCommand
		if err := json.Unmarshal(in.Data, &c); err != nil {
			return
		}
		if d, ok := st.DogByID(c.DogID); ok {
			st.SelectDog(d)
		}
	case cmdClear:
		st.ClearSelection()
	case cmdAdd:
		var d dogs.Dog
		if err := json.Unmarshal(in.Data, &d); err != nil || strings.TrimSpace(d.ID) == "" {
			return
		}
		st.AddDog(d)
	case cmdRefresh:
		_ = st.Refresh(ctx)
	case cmdUpdate:
		var c updateCommand
		if err := json.Unmarshal(in.Data, &c); err != nil {
			return
		}
		_, _ = st.UpdateDog(ctx, c.DogID, dogs.DogInput{
			Name:      c.Dog.Name,
			BirthDate: c.Dog.BirthDate,
			Gender:    c.Dog.Gender,
			Weight:    c.Dog.Weight,
			Color:     c.Dog.Color,
			ImageURL:  c.Dog.ImageURL,
			Tags:      c.Dog.Tags,
			BreedName: c.Dog.BreedName,
		})
	case cmdDelete:
		var c selectCommand
		if err := json.Unmarshal(in.Data, &c); err != nil {
			return
		}
		_ = st.DeleteDog(ctx, c.DogID)
	case cmdClearError:
		st.ClearError()
	default:
		log.Debug("unknown session command", map[string]any{"type": in.Type})
	}
}
