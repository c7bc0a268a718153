package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/ports/blobstore"
	"paws-sync/internal/ports/remotestore"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("dog not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrImageUpload   = errors.New("image upload failed")
)

// Manager es dueño del perro y de sus subcolecciones (notes, poop, weights, walks).
// Se construye una vez y se inyecta; no hay instancia global.
type Manager struct {
	store remotestore.Store
	blobs blobstore.Store
	ident auth.IdentityProvider
	log   logger.Logger
	now   func() time.Time

	dogs    *entity.Repository[Dog]
	notes   *entity.Repository[Note]
	poop    *entity.Repository[Poop]
	weights *entity.Repository[Weight]
	walks   *entity.Repository[Walk]
}

func NewManager(store remotestore.Store, blobs blobstore.Store, ident auth.IdentityProvider, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "dogs"})

	return &Manager{
		store:   store,
		blobs:   blobs,
		ident:   ident,
		log:     log,
		now:     time.Now,
		dogs:    entity.NewRepository[Dog](store, ident, dogsCollection, log),
		notes:   entity.NewRepository[Note](store, ident, notesCollection, log),
		poop:    entity.NewRepository[Poop](store, ident, poopCollection, log),
		weights: entity.NewRepository[Weight](store, ident, weightsCollection, log),
		walks:   entity.NewRepository[Walk](store, ident, walksCollection, log),
	}
}

// ---- Dogs ----

type DogInput struct {
	ID        string // opcional: vacío => id generado por el store
	Name      string
	BirthDate int64
	Gender    string
	Weight    float64
	Color     []string
	ImageURL  string
	Tags      []string
	BreedName string
}

func (in DogInput) toDog() (Dog, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Dog{}, ErrInvalidInput
	}
	g, ok := ParseGender(in.Gender)
	if !ok {
		return Dog{}, ErrInvalidInput
	}
	if in.Weight < 0 {
		return Dog{}, ErrInvalidInput
	}
	return Dog{
		ID:        strings.TrimSpace(in.ID),
		Name:      name,
		BirthDate: in.BirthDate,
		Gender:    g,
		Weight:    in.Weight,
		Color:     nonNil(in.Color),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		Tags:      nonNil(in.Tags),
		BreedName: strings.TrimSpace(in.BreedName),
	}, nil
}

// AddDog crea el perro con id generado por el store y lo devuelve con ID,
// para poder colgarle hijos o una imagen en seguida.
func (m *Manager) AddDog(ctx context.Context, in DogInput) (Dog, error) {
	d, err := in.toDog()
	if err != nil {
		return Dog{}, err
	}
	id, err := m.dogs.Add(ctx, "", d)
	if err != nil {
		return Dog{}, err
	}
	return d.WithID(id), nil
}

func (m *Manager) GetDogs(ctx context.Context) ([]Dog, error) {
	return m.dogs.Get(ctx, "")
}

func (m *Manager) GetDog(ctx context.Context, dogID string) (Dog, error) {
	d, ok, err := m.dogs.GetByID(ctx, "", dogID)
	if err != nil {
		return Dog{}, err
	}
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

// UpdateDog sobrescribe el perfil completo.
func (m *Manager) UpdateDog(ctx context.Context, dogID string, in DogInput) (Dog, error) {
	if strings.TrimSpace(dogID) == "" {
		return Dog{}, ErrInvalidInput
	}
	d, err := in.toDog()
	if err != nil {
		return Dog{}, err
	}
	d = d.WithID(strings.TrimSpace(dogID))
	if err := m.dogs.Update(ctx, "", d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (m *Manager) SubscribeDogs(ctx context.Context, onChange func([]Dog)) (*entity.Subscription, error) {
	return m.dogs.Subscribe(ctx, "", onChange)
}

// requireDog corta cualquier escritura de hijos si el perro no existe:
// un hijo bajo un perro borrado queda huérfano para siempre.
func (m *Manager) requireDog(ctx context.Context, dogID string) error {
	_, err := m.GetDog(ctx, dogID)
	return err
}

// ---- Notes ----

func (m *Manager) AddNote(ctx context.Context, dogID, title, content string) (Note, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return Note{}, ErrInvalidInput
	}
	if err := m.requireDog(ctx, dogID); err != nil {
		return Note{}, err
	}
	now := m.now().UnixMilli()
	n := Note{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(title),
		Content:      strings.TrimSpace(content),
		CreatedDate:  now,
		LastModified: now,
	}
	if _, err := m.notes.Add(ctx, dogID, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

// UpdateNote pisa título y contenido; createdDate sale del registro guardado.
func (m *Manager) UpdateNote(ctx context.Context, dogID string, n Note) (Note, error) {
	if strings.TrimSpace(n.ID) == "" {
		return Note{}, ErrInvalidInput
	}
	cur, err := existingChild(ctx, m, m.notes, dogID, n.ID)
	if err != nil {
		return Note{}, err
	}
	n.CreatedDate = cur.CreatedDate
	n.LastModified = m.now().UnixMilli()
	if err := m.notes.Update(ctx, dogID, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (m *Manager) DeleteNote(ctx context.Context, dogID, noteID string) error {
	return m.notes.Delete(ctx, dogID, noteID)
}

func (m *Manager) Notes(ctx context.Context, dogID string) ([]Note, error) {
	return m.notes.Get(ctx, dogID)
}

func (m *Manager) SubscribeNotes(ctx context.Context, dogID string, onChange func([]Note)) (*entity.Subscription, error) {
	return m.notes.Subscribe(ctx, dogID, onChange)
}

// ---- Poop ----

type PoopInput struct {
	Color       string
	Consistency string
	Notes       string
	ImageURL    string
}

func (m *Manager) AddPoop(ctx context.Context, dogID string, in PoopInput) (Poop, error) {
	c, ok := ParseConsistency(in.Consistency)
	if !ok {
		return Poop{}, ErrInvalidInput
	}
	if err := m.requireDog(ctx, dogID); err != nil {
		return Poop{}, err
	}
	now := m.now().UnixMilli()
	p := Poop{
		ID:           uuid.NewString(),
		Color:        strings.TrimSpace(in.Color),
		Consistency:  c,
		Notes:        strings.TrimSpace(in.Notes),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		CreatedDate:  now,
		LastModified: now,
	}
	if _, err := m.poop.Add(ctx, dogID, p); err != nil {
		return Poop{}, err
	}
	return p, nil
}

func (m *Manager) UpdatePoop(ctx context.Context, dogID string, p Poop) (Poop, error) {
	if strings.TrimSpace(p.ID) == "" {
		return Poop{}, ErrInvalidInput
	}
	if _, ok := ParseConsistency(string(p.Consistency)); !ok {
		return Poop{}, ErrInvalidInput
	}
	cur, err := existingChild(ctx, m, m.poop, dogID, p.ID)
	if err != nil {
		return Poop{}, err
	}
	p.CreatedDate = cur.CreatedDate
	p.LastModified = m.now().UnixMilli()
	if err := m.poop.Update(ctx, dogID, p); err != nil {
		return Poop{}, err
	}
	return p, nil
}

// DeletePoop borra el registro y, si tenía imagen, también el blob (best-effort).
func (m *Manager) DeletePoop(ctx context.Context, dogID, poopID string) error {
	p, ok, err := m.poop.GetByID(ctx, dogID, poopID)
	if err != nil {
		return err
	}
	if err := m.poop.Delete(ctx, dogID, poopID); err != nil {
		return err
	}
	if ok && p.ImageURL != "" {
		if err := m.DeleteImage(ctx, p.ImageURL); err != nil {
			m.log.Warn("poop image not deleted", map[string]any{"dog_id": dogID, "poop_id": poopID, "err": err})
		}
	}
	return nil
}

func (m *Manager) PoopEntries(ctx context.Context, dogID string) ([]Poop, error) {
	return m.poop.Get(ctx, dogID)
}

func (m *Manager) SubscribePoop(ctx context.Context, dogID string, onChange func([]Poop)) (*entity.Subscription, error) {
	return m.poop.Subscribe(ctx, dogID, onChange)
}

// ---- Weights ----

// AddWeight: si id viene vacío se genera un UUID.
func (m *Manager) AddWeight(ctx context.Context, dogID, id string, kg float64) (Weight, error) {
	if kg <= 0 {
		return Weight{}, ErrInvalidInput
	}
	if err := m.requireDog(ctx, dogID); err != nil {
		return Weight{}, err
	}
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	now := m.now().UnixMilli()
	w := Weight{
		ID:           id,
		Weight:       kg,
		CreatedDate:  now,
		LastModified: now,
	}
	if _, err := m.weights.Add(ctx, dogID, w); err != nil {
		return Weight{}, err
	}
	return w, nil
}

func (m *Manager) UpdateWeight(ctx context.Context, dogID string, w Weight) (Weight, error) {
	if strings.TrimSpace(w.ID) == "" || w.Weight <= 0 {
		return Weight{}, ErrInvalidInput
	}
	cur, err := existingChild(ctx, m, m.weights, dogID, w.ID)
	if err != nil {
		return Weight{}, err
	}
	w.CreatedDate = cur.CreatedDate
	w.LastModified = m.now().UnixMilli()
	if err := m.weights.Update(ctx, dogID, w); err != nil {
		return Weight{}, err
	}
	return w, nil
}

func (m *Manager) DeleteWeight(ctx context.Context, dogID, weightID string) error {
	return m.weights.Delete(ctx, dogID, weightID)
}

func (m *Manager) Weights(ctx context.Context, dogID string) ([]Weight, error) {
	return m.weights.Get(ctx, dogID)
}

func (m *Manager) SubscribeWeights(ctx context.Context, dogID string, onChange func([]Weight)) (*entity.Subscription, error) {
	return m.weights.Subscribe(ctx, dogID, onChange)
}

// existingChild lee el registro a actualizar: el perro tiene que existir y
// el registro también (un update nunca crea).
func existingChild[T entity.Entity[T]](ctx context.Context, m *Manager, repo *entity.Repository[T], dogID, id string) (T, error) {
	var zero T
	if err := m.requireDog(ctx, dogID); err != nil {
		return zero, err
	}
	cur, ok, err := repo.GetByID(ctx, dogID, id)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, fmt.Errorf("%w: %s %s", ErrEntryNotFound, repo.Collection().Name, id)
	}
	return cur, nil
}

func nonNil(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
