package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"paws-sync/internal/domain/dogs"
	"paws-sync/internal/domain/entity"
	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/ports/remotestore"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
)

const DefaultUpcomingLimit = 5

var remindersCollection = entity.Collection{
	Name:      entity.CollectionReminders,
	Path:      entity.UserRoot(entity.CollectionReminders),
	OrderBy:   "dateTime",
	Direction: remotestore.Ascending,
}

// DogLookup resuelve el nombre del perro para la copia desnormalizada.
type DogLookup interface {
	GetDog(ctx context.Context, dogID string) (dogs.Dog, error)
}

type Service struct {
	repo *entity.Repository[Reminder]
	dogs DogLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(store remotestore.Store, ident auth.IdentityProvider, dogLookup DogLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "reminders"})
	return &Service{
		repo: entity.NewRepository[Reminder](store, ident, remindersCollection, log),
		dogs: dogLookup,
		log:  log,
		now:  time.Now,
	}
}

type Input struct {
	Title       string
	Type        string
	DateTime    int64
	Notes       string
	DogID       string
	DogName     string
	Location    string
	IsCompleted bool
}

func (s *Service) Create(ctx context.Context, in Input) (Reminder, error) {
	r, err := s.build(ctx, in)
	if err != nil {
		return Reminder{}, err
	}
	r.ID = uuid.NewString()
	r.CreatedAt = s.now().UnixMilli()

	if _, err := s.repo.Add(ctx, "", r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

// Update sobrescribe el recordatorio conservando id y createdAt.
func (s *Service) Update(ctx context.Context, id string, in Input) (Reminder, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	r, err := s.build(ctx, in)
	if err != nil {
		return Reminder{}, err
	}
	r.ID = cur.ID
	r.CreatedAt = cur.CreatedAt

	if err := s.repo.Update(ctx, "", r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) SetCompleted(ctx context.Context, id string, completed bool) (Reminder, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	r.IsCompleted = completed
	if err := s.repo.Update(ctx, "", r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, "", id)
}

func (s *Service) Get(ctx context.Context, id string) (Reminder, error) {
	if strings.TrimSpace(id) == "" {
		return Reminder{}, ErrInvalidInput
	}
	r, ok, err := s.repo.GetByID(ctx, "", id)
	if err != nil {
		return Reminder{}, err
	}
	if !ok {
		return Reminder{}, ErrNotFound
	}
	return r, nil
}

// GetAll devuelve todos los recordatorios por dateTime ascendente.
func (s *Service) GetAll(ctx context.Context) ([]Reminder, error) {
	return s.repo.Get(ctx, "")
}

// GetUpcoming filtra del lado del servidor dateTime >= ahora, ascendente,
// hasta limit. Si hay menos, devuelve los que haya.
func (s *Service) GetUpcoming(ctx context.Context, limit int) ([]Reminder, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = DefaultUpcomingLimit
	}
	return s.repo.Query(ctx, "", []remotestore.Filter{{
		Field: "dateTime",
		Op:    remotestore.OpGreaterOrEqual,
		Value: s.now().UnixMilli(),
	}}, limit)
}

func (s *Service) SubscribeAll(ctx context.Context, onChange func([]Reminder)) (*entity.Subscription, error) {
	return s.repo.Subscribe(ctx, "", onChange)
}

func (s *Service) build(ctx context.Context, in Input) (Reminder, error) {
	if in.DateTime <= 0 {
		return Reminder{}, ErrInvalidInput
	}
	t := ParseType(in.Type)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = t.DisplayName()
	}

	dogID := strings.TrimSpace(in.DogID)
	dogName := strings.TrimSpace(in.DogName)
	if dogName == "" && dogID != "" && s.dogs != nil {
		// copia en este momento; no se actualiza si después renombran al perro
		d, err := s.dogs.GetDog(ctx, dogID)
		if err != nil {
			s.log.Warn("dog name lookup failed", map[string]any{"dog_id": dogID, "err": err})
		} else {
			dogName = d.Name
		}
	}

	return Reminder{
		Title:        title,
		ReminderType: t,
		DateTime:     in.DateTime,
		Notes:        strings.TrimSpace(in.Notes),
		DogID:        dogID,
		DogName:      dogName,
		Location:     strings.TrimSpace(in.Location),
		IsCompleted:  in.IsCompleted,
	}, nil
}

// OnDay filtra en cliente los recordatorios del día de `day` en loc
// ([00:00, 24:00) locales). Conserva el orden de entrada.
func OnDay(list []Reminder, day time.Time, loc *time.Location) []Reminder {
	if loc == nil {
		loc = time.Local
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	out := make([]Reminder, 0)
	for _, r := range list {
		t := time.UnixMilli(r.DateTime)
		if !t.Before(start) && t.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

// DayCount es la cantidad de recordatorios de un día (YYYY-MM-DD local).
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountByDay agrupa por día local, ordenado por fecha.
func CountByDay(list []Reminder, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.Local
	}
	counts := map[string]int{}
	for _, r := range list {
		counts[time.UnixMilli(r.DateTime).In(loc).Format("2006-01-02")]++
	}

	out := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DayCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
