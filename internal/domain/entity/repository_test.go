package entity

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "paws-sync/internal/adapters/storage/memory"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/ports/remotestore"
)

type testNote struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Tags         []string `json:"tags"`
	LastModified int64    `json:"lastModified"`
}

func (n testNote) EntityID() string { return n.ID }
func (n testNote) WithID(id string) testNote {
	n.ID = id
	return n
}

var notesCol = Collection{
	Name:      CollectionNotes,
	Path:      DogChild(CollectionNotes),
	OrderBy:   "lastModified",
	Direction: remotestore.Descending,
}

// failingStore falla en todo lo que escribe/lee.
type failingStore struct {
	remotestore.Store
	err error
}

func (f failingStore) Set(context.Context, string, string, []byte) error { return f.err }
func (f failingStore) Query(context.Context, remotestore.Query) ([]remotestore.Document, error) {
	return nil, f.err
}

func newNotesRepo(store remotestore.Store, uid string) *Repository[testNote] {
	return NewRepository[testNote](store, auth.StaticIdentity(uid), notesCol, nil)
}

func waitNotes(t *testing.T, ch <-chan []testNote) []testNote {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for delivery")
		return nil
	}
}

func TestRepository_AddThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(mem.NewStore(nil), "u1")

	in := testNote{ID: "n1", Title: "vacuna", Tags: []string{"a", "b"}, LastModified: 10}
	id, err := repo.Add(ctx, "d1", in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id != "n1" {
		t.Fatalf("expected caller id to be kept, got %q", id)
	}

	got, err := repo.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].ID != in.ID || got[0].Title != in.Title ||
		len(got[0].Tags) != 2 || got[0].Tags[1] != "b" || got[0].LastModified != 10 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestRepository_AddWithoutIDUsesGeneratedID(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(mem.NewStore(nil), "u1")

	id, err := repo.Add(ctx, "d1", testNote{Title: "x", LastModified: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	got, ok, err := repo.GetByID(ctx, "d1", id)
	if err != nil || !ok {
		t.Fatalf("get by id: ok=%v err=%v", ok, err)
	}
	if got.ID != id {
		t.Fatalf("expected id %q on decoded entity, got %q", id, got.ID)
	}
}

func TestRepository_UpdateTwiceSameState(t *testing.T) {
	ctx := context.Background()
	store := mem.NewStore(nil)
	repo := newNotesRepo(store, "u1")

	n := testNote{ID: "n1", Title: "a", LastModified: 1}
	if _, err := repo.Add(ctx, "d1", n); err != nil {
		t.Fatalf("add: %v", err)
	}

	n.Title = "b"
	if err := repo.Update(ctx, "d1", n); err != nil {
		t.Fatalf("update: %v", err)
	}
	first, _, _ := store.GetDoc(ctx, "users/u1/dogs/d1/notes", "n1")

	if err := repo.Update(ctx, "d1", n); err != nil {
		t.Fatalf("update again: %v", err)
	}
	second, _, _ := store.GetDoc(ctx, "users/u1/dogs/d1/notes", "n1")

	if string(first.Data) != string(second.Data) {
		t.Fatalf("expected same stored state, got %s vs %s", first.Data, second.Data)
	}
}

func TestRepository_UpdateRequiresID(t *testing.T) {
	repo := newNotesRepo(mem.NewStore(nil), "u1")
	if err := repo.Update(context.Background(), "d1", testNote{Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRepository_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(mem.NewStore(nil), "")

	if _, err := repo.Add(ctx, "d1", testNote{ID: "n1"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("add: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := repo.Get(ctx, "d1"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("get: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := repo.Subscribe(ctx, "d1", func([]testNote) {}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("subscribe: expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRepository_RemoteFailureIsWrapped(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(failingStore{err: errors.New("permission denied")}, "u1")

	_, err := repo.Add(ctx, "d1", testNote{ID: "n1"})
	if !errors.Is(err, ErrRemoteFailure) {
		t.Fatalf("expected ErrRemoteFailure, got %v", err)
	}

	_, err = repo.Get(ctx, "d1")
	if !errors.Is(err, ErrRemoteFailure) {
		t.Fatalf("expected ErrRemoteFailure, got %v", err)
	}
}

func TestRepository_MissingParentIsInvalidInput(t *testing.T) {
	repo := newNotesRepo(mem.NewStore(nil), "u1")
	if _, err := repo.Get(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRepository_SubscribeDeliversFullOrderedList(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(mem.NewStore(nil), "u1")

	if _, err := repo.Add(ctx, "d1", testNote{ID: "old", LastModified: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	ch := make(chan []testNote, 16)
	sub, err := repo.Subscribe(ctx, "d1", func(list []testNote) { ch <- list })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Release()

	first := waitNotes(t, ch)
	if len(first) != 1 || first[0].ID != "old" {
		t.Fatalf("unexpected initial snapshot: %+v", first)
	}

	if _, err := repo.Add(ctx, "d1", testNote{ID: "new", LastModified: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	next := waitNotes(t, ch)
	if len(next) != 2 || next[0].ID != "new" || next[1].ID != "old" {
		t.Fatalf("expected [new old], got %+v", next)
	}
}

func TestRepository_SubscriptionReleasedWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := newNotesRepo(mem.NewStore(nil), "u1")

	ch := make(chan []testNote, 16)
	sub, err := repo.Subscribe(ctx, "d1", func(list []testNote) { ch <- list })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	waitNotes(t, ch)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("subscription not released after cancel")
	}

	if _, err := repo.Add(context.Background(), "d1", testNote{ID: "n1"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	select {
	case list := <-ch:
		t.Fatalf("unexpected delivery after release: %+v", list)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScope_CloseReleasesEverything(t *testing.T) {
	ctx := context.Background()
	repo := newNotesRepo(mem.NewStore(nil), "u1")
	scope := NewScope()

	a, err := scope.Track(repo.Subscribe(ctx, "d1", func([]testNote) {}))
	if err != nil {
		t.Fatalf("subscribe a: %v", err)
	}
	b, err := scope.Track(repo.Subscribe(ctx, "d2", func([]testNote) {}))
	if err != nil {
		t.Fatalf("subscribe b: %v", err)
	}

	scope.Close()
	scope.Close()

	for _, s := range []*Subscription{a, b} {
		select {
		case <-s.Done():
		default:
			t.Fatalf("expected subscription released")
		}
	}

	// después de Close, Track libera en el acto
	c, _ := scope.Track(repo.Subscribe(ctx, "d3", func([]testNote) {}))
	select {
	case <-c.Done():
	default:
		t.Fatalf("expected late subscription released")
	}
}
