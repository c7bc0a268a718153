package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/middleware"
	"paws-sync/internal/platform/livestream"
	"paws-sync/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, s *Service, log logger.Logger, ws *livestream.Settings) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(s))
		rr.Post("/", createReminderHandler(s))
		rr.Get("/types", listTypesHandler())
		rr.Get("/upcoming", upcomingHandler(s))
		rr.Get("/day", dayHandler(s))
		rr.Get("/calendar", calendarHandler(s))
		rr.Get("/ws", streamHandler(s, log, ws))

		rr.Route("/{reminderID}", func(one chi.Router) {
			one.Get("/", getReminderHandler(s))
			one.Put("/", updateReminderHandler(s))
			one.Delete("/", deleteReminderHandler(s))
			one.Put("/completed", completedHandler(s))
		})
	})
}

type reminderRequest struct {
	Title        string `json:"title"`
	ReminderType string `json:"reminderType" enums:"VET_APPOINTMENT,VACCINATION,GROOMING,MEDICATION,TRAINING,WALKING,FEEDING,BATH,NAIL_CLIPPING,DEWORMING,CHECKUP,OTHER"`
	DateTime     int64  `json:"dateTime"` // epoch ms
	Notes        string `json:"notes"`
	DogID        string `json:"dogId"`
	DogName      string `json:"dogName"`
	Location     string `json:"location"`
	IsCompleted  bool   `json:"isCompleted"`
}

func (req reminderRequest) input() Input {
	return Input{
		Title:       req.Title,
		Type:        req.ReminderType,
		DateTime:    req.DateTime,
		Notes:       req.Notes,
		DogID:       req.DogID,
		DogName:     req.DogName,
		Location:    req.Location,
		IsCompleted: req.IsCompleted,
	}
}

type completedRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

type typeResponse struct {
	Type        Type   `json:"type"`
	DisplayName string `json:"displayName"`
	Emoji       string `json:"emoji"`
}

// createReminderHandler godoc
// @Summary Crear recordatorio
// @Description Si no se envía título se usa el nombre del tipo. dogName se completa desde el perro si falta.
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body reminderRequest true "Recordatorio"
// @Success 201 {object} Reminder
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [post]
func createReminderHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rem, err := s.Create(r.Context(), req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rem)
	}
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Description Todos los recordatorios del usuario, por fecha ascendente.
// @Tags reminders
// @Produce json
// @Success 200 {array} Reminder
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [get]
func listRemindersHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		items, err := s.GetAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// listTypesHandler godoc
// @Summary Tipos de recordatorio
// @Tags reminders
// @Produce json
// @Success 200 {array} typeResponse
// @Router /reminders/types [get]
func listTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]typeResponse, 0, len(AllTypes))
		for _, t := range AllTypes {
			out = append(out, typeResponse{Type: t, DisplayName: t.DisplayName(), Emoji: t.Emoji()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// upcomingHandler godoc
// @Summary Próximos recordatorios
// @Description dateTime >= ahora, ascendente. limit por defecto 5.
// @Tags reminders
// @Produce json
// @Param limit query int false "Máximo de resultados"
// @Success 200 {array} Reminder
// @Failure 400 {string} string "invalid limit"
// @Failure 401 {string} string "unauthorized"
// @Router /reminders/upcoming [get]
func upcomingHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		items, err := s.GetUpcoming(r.Context(), limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// dayHandler godoc
// @Summary Recordatorios de un día
// @Tags reminders
// @Produce json
// @Param date query string true "Día YYYY-MM-DD"
// @Param tz query string false "Zona horaria IANA (default UTC)"
// @Success 200 {array} Reminder
// @Failure 400 {string} string "invalid date / invalid tz"
// @Failure 401 {string} string "unauthorized"
// @Router /reminders/day [get]
func dayHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		loc, ok := location(w, r)
		if !ok {
			return
		}
		day, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), loc)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		all, err := s.GetAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, OnDay(all, day, loc))
	}
}

// calendarHandler godoc
// @Summary Cantidad de recordatorios por día
// @Tags reminders
// @Produce json
// @Param tz query string false "Zona horaria IANA (default UTC)"
// @Success 200 {array} DayCount
// @Failure 401 {string} string "unauthorized"
// @Router /reminders/calendar [get]
func calendarHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		loc, ok := location(w, r)
		if !ok {
			return
		}
		all, err := s.GetAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CountByDay(all, loc))
	}
}

// getReminderHandler godoc
// @Summary Obtener recordatorio
// @Tags reminders
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Success 200 {object} Reminder
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [get]
func getReminderHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		rem, err := s.Get(r.Context(), chi.URLParam(r, "reminderID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// updateReminderHandler godoc
// @Summary Actualizar recordatorio (overwrite completo)
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body reminderRequest true "Recordatorio"
// @Success 200 {object} Reminder
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [put]
func updateReminderHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rem, err := s.Update(r.Context(), chi.URLParam(r, "reminderID"), req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// completedHandler godoc
// @Summary Marcar recordatorio completo/pendiente
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body completedRequest true "Estado"
// @Success 200 {object} Reminder
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/completed [put]
func completedHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req completedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rem, err := s.SetCompleted(r.Context(), chi.URLParam(r, "reminderID"), req.IsCompleted)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

// deleteReminderHandler godoc
// @Summary Borrar recordatorio
// @Tags reminders
// @Param reminderID path string true "ID del recordatorio"
// @Success 204
// @Router /reminders/{reminderID} [delete]
func deleteReminderHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if err := s.Delete(r.Context(), chi.URLParam(r, "reminderID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// streamHandler empuja la lista completa de recordatorios en cada cambio.
//
// @Summary Recordatorios en vivo (websocket)
// @Tags reminders
// @Success 101
// @Failure 401 {string} string "unauthorized"
// @Router /reminders/ws [get]
func streamHandler(s *Service, log logger.Logger, settings *livestream.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		livestream.Serve(w, r, settings, log, func(ctx context.Context, sess *livestream.Session) (func(livestream.Inbound), error) {
			_, err := s.SubscribeAll(ctx, func(items []Reminder) {
				sess.Send(livestream.Message{Type: "reminders", Data: items})
			})
			return nil, err
		})
	}
}

func location(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	tz := strings.TrimSpace(r.URL.Query().Get("tz"))
	if tz == "" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		http.Error(w, "invalid tz", http.StatusBadRequest)
		return nil, false
	}
	return loc, true
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
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "reminder not found", http.StatusNotFound)
	case errors.Is(err, entity.ErrRemoteFailure):
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
