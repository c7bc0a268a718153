package syncstate

import (
	"context"
	"sync"

	"paws-sync/internal/domain/dogs"
	"paws-sync/internal/domain/entity"
	"paws-sync/internal/platform/logger"
)

// Status del cache compartido.
// @Enum uninitialized, loading, ready, error
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusReady         Status = "ready"
	StatusError         Status = "error"
)

// State es una foto inmutable del cache; Dogs es una copia.
type State struct {
	Status   Status     `json:"status"`
	Dogs     []dogs.Dog `json:"dogs"`
	Selected *dogs.Dog  `json:"selected,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// DogSource es lo que el cache necesita de dogs.Manager.
type DogSource interface {
	GetDogs(ctx context.Context) ([]dogs.Dog, error)
	SubscribeDogs(ctx context.Context, onChange func([]dogs.Dog)) (*entity.Subscription, error)
	UpdateDog(ctx context.Context, dogID string, in dogs.DogInput) (dogs.Dog, error)
	DeleteDog(ctx context.Context, dogID string) error
}

// Store es la fuente única de "todos mis perros" y "el perro seleccionado".
// El listener manda: cada entrega reemplaza la lista entera y pisa cualquier
// cambio optimista previo. La lista nunca se muta in-place.
type Store struct {
	src DogSource
	log logger.Logger

	mu       sync.Mutex
	status   Status
	dogs     []dogs.Dog
	selected *dogs.Dog
	errMsg   string
	seq      uint64 // entregas del listener
	sub      *entity.Subscription
	closed   bool

	observers map[uint64]func(State)
	nextObs   uint64

	// serializa las notificaciones: los observers ven los estados en orden
	emitMu sync.Mutex
}

func New(src DogSource, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		src:       src,
		log:       log.With(map[string]any{"component": "syncstate"}),
		status:    StatusUninitialized,
		dogs:      []dogs.Dog{},
		observers: make(map[uint64]func(State)),
	}
}

// Open crea el store y se suscribe en el acto.
func Open(ctx context.Context, src DogSource, log logger.Logger) *Store {
	s := New(src, log)
	s.Start(ctx)
	return s
}

// Start engancha el listener de perros. La suscripción vive hasta Close o
// hasta que ctx termina. Un fallo al engancharse deja el store en Error.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.status != StatusUninitialized {
		s.mu.Unlock()
		return
	}
	s.status = StatusLoading
	s.mu.Unlock()
	s.emit()

	sub, err := s.src.SubscribeDogs(ctx, s.onDelivery)

	s.mu.Lock()
	if err != nil {
		s.status = StatusError
		s.errMsg = "failed to setup dogs listener: " + err.Error()
		s.mu.Unlock()
		s.log.Warn("dogs listener not attached", map[string]any{"err": err})
		s.emit()
		return
	}
	if s.closed {
		s.mu.Unlock()
		sub.Release()
		return
	}
	s.sub = sub
	s.mu.Unlock()
}

func (s *Store) onDelivery(list []dogs.Dog) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.seq++
	s.dogs = copyDogs(list)
	s.status = StatusReady
	s.errMsg = ""
	s.refreshSelectedLocked()
	s.mu.Unlock()

	s.emit()
}

// refreshSelectedLocked actualiza la selección con la versión de la lista.
// Si el perro seleccionado no viene en la lista, la selección se mantiene.
func (s *Store) refreshSelectedLocked() {
	if s.selected == nil {
		return
	}
	for _, d := range s.dogs {
		if d.ID == s.selected.ID {
			s.selected = copyDog(d)
			return
		}
	}
}

// SelectDog fija el perro "en pantalla". Sin I/O; visible al volver.
func (s *Store) SelectDog(d dogs.Dog) {
	s.mu.Lock()
	s.selected = copyDog(d)
	s.mu.Unlock()
	s.emit()
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.emit()
}

// AddDog agrega el perro localmente tras un alta exitosa, antes de que el
// listener lo traiga. La próxima entrega del listener lo reemplaza.
func (s *Store) AddDog(d dogs.Dog) {
	s.mu.Lock()
	next := make([]dogs.Dog, 0, len(s.dogs)+1)
	replaced := false
	for _, cur := range s.dogs {
		if cur.ID == d.ID {
			next = append(next, *copyDog(d))
			replaced = true
			continue
		}
		next = append(next, cur)
	}
	if !replaced {
		next = append(next, *copyDog(d))
	}
	s.dogs = next
	s.mu.Unlock()
	s.emit()
}

// Refresh hace un fetch puntual. Si mientras tanto llegó una entrega del
// listener, el resultado se descarta (el listener es más nuevo).
// Ante error se pasa a Error pero se conserva la lista cacheada.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	seq := s.seq
	s.status = StatusLoading
	s.errMsg = ""
	s.mu.Unlock()
	s.emit()

	list, err := s.src.GetDogs(ctx)

	s.mu.Lock()
	switch {
	case err != nil:
		s.status = StatusError
		s.errMsg = "failed to load dogs: " + err.Error()
	case s.seq != seq:
		s.status = StatusReady
		s.log.Debug("stale refresh discarded", map[string]any{"seq": seq})
	default:
		s.dogs = copyDogs(list)
		s.status = StatusReady
		s.refreshSelectedLocked()
	}
	s.mu.Unlock()
	s.emit()
	return err
}

// UpdateDog escribe en remoto y, si sale bien, aplica el cambio localmente.
func (s *Store) UpdateDog(ctx context.Context, dogID string, in dogs.DogInput) (dogs.Dog, error) {
	d, err := s.src.UpdateDog(ctx, dogID, in)
	if err != nil {
		s.setError("failed to update dog: " + err.Error())
		return dogs.Dog{}, err
	}

	s.mu.Lock()
	next := make([]dogs.Dog, 0, len(s.dogs))
	for _, cur := range s.dogs {
		if cur.ID == d.ID {
			cur = *copyDog(d)
		}
		next = append(next, cur)
	}
	s.dogs = next
	if s.selected != nil && s.selected.ID == d.ID {
		s.selected = copyDog(d)
	}
	s.mu.Unlock()
	s.emit()
	return d, nil
}

// DeleteDog borra en remoto (con cascada) y lo saca de la lista local.
func (s *Store) DeleteDog(ctx context.Context, dogID string) error {
	if err := s.src.DeleteDog(ctx, dogID); err != nil {
		s.setError("failed to delete dog: " + err.Error())
		return err
	}

	s.mu.Lock()
	next := make([]dogs.Dog, 0, len(s.dogs))
	for _, cur := range s.dogs {
		if cur.ID != dogID {
			next = append(next, cur)
		}
	}
	s.dogs = next
	if s.selected != nil && s.selected.ID == dogID {
		s.selected = nil
	}
	s.mu.Unlock()
	s.emit()
	return nil
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
	s.emit()
}

// ClearError borra el mensaje; si estaba en Error vuelve a Ready con el cache.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	if s.status == StatusError {
		s.status = StatusReady
	}
	s.mu.Unlock()
	s.emit()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	return State{
		Status:   s.status,
		Dogs:     copyDogs(s.dogs),
		Selected: copyDogPtr(s.selected),
		Error:    s.errMsg,
	}
}

func (s *Store) Dogs() []dogs.Dog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDogs(s.dogs)
}

func (s *Store) Selected() (dogs.Dog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return dogs.Dog{}, false
	}
	return *copyDog(*s.selected), true
}

func (s *Store) DogByID(id string) (dogs.Dog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.dogs {
		if d.ID == id {
			return *copyDog(d), true
		}
	}
	return dogs.Dog{}, false
}

func (s *Store) HasDog(id string) bool {
	_, ok := s.DogByID(id)
	return ok
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dogs)
}

// Observe registra fn y la llama en el acto con el estado actual.
// fn no debe llamar de vuelta a métodos que modifican el store.
func (s *Store) Observe(fn func(State)) (cancel func()) {
	s.emitMu.Lock()
	s.mu.Lock()
	s.nextObs++
	id := s.nextObs
	s.observers[id] = fn
	st := s.stateLocked()
	s.mu.Unlock()
	fn(st)
	s.emitMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Close suelta el listener y los observers. Idempotente.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	sub := s.sub
	s.sub = nil
	s.observers = make(map[uint64]func(State))
	s.mu.Unlock()

	if sub != nil {
		sub.Release()
	}
}

// emit notifica el estado vigente (no el que disparó el cambio): si dos
// cambios compiten, el último observado siempre es el más nuevo.
func (s *Store) emit() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	st := s.stateLocked()
	fns := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func copyDogs(in []dogs.Dog) []dogs.Dog {
	out := make([]dogs.Dog, 0, len(in))
	for _, d := range in {
		out = append(out, *copyDog(d))
	}
	return out
}

func copyDog(d dogs.Dog) *dogs.Dog {
	d.Color = append([]string(nil), d.Color...)
	d.Tags = append([]string(nil), d.Tags...)
	return &d
}

func copyDogPtr(d *dogs.Dog) *dogs.Dog {
	if d == nil {
		return nil
	}
	return copyDog(*d)
}
