package syncstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"paws-sync/internal/domain/dogs"
	"paws-sync/internal/domain/entity"
)

// fakeSource entrega a mano: el test llama deliver() cuando quiere.
type fakeSource struct {
	mu        sync.Mutex
	onChange  func([]dogs.Dog)
	subErr    error
	getDogs   func(ctx context.Context) ([]dogs.Dog, error)
	updateErr error
	deleteErr error
	deleted   []string
}

func (f *fakeSource) GetDogs(ctx context.Context) ([]dogs.Dog, error) {
	if f.getDogs != nil {
		return f.getDogs(ctx)
	}
	return nil, nil
}

func (f *fakeSource) SubscribeDogs(_ context.Context, onChange func([]dogs.Dog)) (*entity.Subscription, error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	f.mu.Lock()
	f.onChange = onChange
	f.mu.Unlock()
	return &entity.Subscription{}, nil
}

func (f *fakeSource) UpdateDog(_ context.Context, id string, in dogs.DogInput) (dogs.Dog, error) {
	if f.updateErr != nil {
		return dogs.Dog{}, f.updateErr
	}
	return dogs.Dog{ID: id, Name: in.Name, Gender: dogs.Gender(in.Gender)}, nil
}

func (f *fakeSource) DeleteDog(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSource) deliver(list ...dogs.Dog) {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()
	fn(list)
}

func ids(list []dogs.Dog) []string {
	out := []string{}
	for _, d := range list {
		out = append(out, d.ID)
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_StatusTransitions(t *testing.T) {
	src := &fakeSource{}
	s := New(src, nil)
	if s.State().Status != StatusUninitialized {
		t.Fatalf("expected uninitialized, got %s", s.State().Status)
	}

	var seen []Status
	cancel := s.Observe(func(st State) { seen = append(seen, st.Status) })
	defer cancel()

	s.Start(context.Background())
	if s.State().Status != StatusLoading {
		t.Fatalf("expected loading before first delivery, got %s", s.State().Status)
	}

	src.deliver(dogs.Dog{ID: "d1", Name: "Rex"})
	if s.State().Status != StatusReady || s.Count() != 1 {
		t.Fatalf("expected ready with 1 dog, got %+v", s.State())
	}

	want := []Status{StatusUninitialized, StatusLoading, StatusReady}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestStore_AttachFailureIsError(t *testing.T) {
	src := &fakeSource{subErr: entity.ErrNotAuthenticated}
	s := Open(context.Background(), src, nil)

	st := s.State()
	if st.Status != StatusError || st.Error == "" {
		t.Fatalf("expected error state, got %+v", st)
	}
}

func TestStore_OptimisticAddSupersededByDelivery(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1", Name: "Rex"})

	s.AddDog(dogs.Dog{ID: "d2", Name: "Luna"})
	if !s.HasDog("d2") || s.Count() != 2 {
		t.Fatalf("expected optimistic append, got %v", ids(s.Dogs()))
	}

	// el write falló del lado del servidor: la entrega no trae d2
	src.deliver(dogs.Dog{ID: "d1", Name: "Rex"})

	if s.HasDog("d2") {
		t.Fatalf("optimistic dog must not survive a contradicting delivery")
	}
	if !equalIDs(ids(s.Dogs()), "d1") {
		t.Fatalf("expected [d1], got %v", ids(s.Dogs()))
	}
}

func TestStore_AddDogTwiceDoesNotDuplicate(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver()

	s.AddDog(dogs.Dog{ID: "d1", Name: "Rex"})
	s.AddDog(dogs.Dog{ID: "d1", Name: "Rex II"})

	d, ok := s.DogByID("d1")
	if !ok || s.Count() != 1 || d.Name != "Rex II" {
		t.Fatalf("expected single updated dog, got %+v", s.Dogs())
	}
}

func TestStore_SelectionIsImmediateAndFollowsDeliveries(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1", Name: "Rex"})

	s.SelectDog(dogs.Dog{ID: "d1", Name: "Rex"})
	sel, ok := s.Selected()
	if !ok || sel.ID != "d1" {
		t.Fatalf("expected d1 selected, got %+v ok=%v", sel, ok)
	}

	src.deliver(dogs.Dog{ID: "d1", Name: "Rex (renamed)"})
	sel, _ = s.Selected()
	if sel.Name != "Rex (renamed)" {
		t.Fatalf("expected selection refreshed from delivery, got %q", sel.Name)
	}

	// ausente en la entrega: la selección se mantiene
	src.deliver()
	if _, ok := s.Selected(); !ok {
		t.Fatalf("expected selection kept")
	}

	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestStore_RefreshReplacesList(t *testing.T) {
	src := &fakeSource{getDogs: func(context.Context) ([]dogs.Dog, error) {
		return []dogs.Dog{{ID: "d1"}, {ID: "d2"}}, nil
	}}
	s := Open(context.Background(), src, nil)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if st := s.State(); st.Status != StatusReady || !equalIDs(ids(st.Dogs), "d1", "d2") {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestStore_StaleRefreshIsDiscarded(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)

	src.getDogs = func(context.Context) ([]dogs.Dog, error) {
		// mientras el fetch está en vuelo llega una entrega más nueva
		src.deliver(dogs.Dog{ID: "fresh"})
		return []dogs.Dog{{ID: "stale"}}, nil
	}

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := ids(s.Dogs()); !equalIDs(got, "fresh") {
		t.Fatalf("expected listener result to win, got %v", got)
	}
	if s.State().Status != StatusReady {
		t.Fatalf("expected ready, got %s", s.State().Status)
	}
}

func TestStore_RefreshFailureKeepsCache(t *testing.T) {
	src := &fakeSource{getDogs: func(context.Context) ([]dogs.Dog, error) {
		return nil, entity.ErrRemoteFailure
	}}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1"})

	if err := s.Refresh(context.Background()); !errors.Is(err, entity.ErrRemoteFailure) {
		t.Fatalf("expected remote failure, got %v", err)
	}
	st := s.State()
	if st.Status != StatusError || st.Error == "" || !equalIDs(ids(st.Dogs), "d1") {
		t.Fatalf("expected error state with cached dogs, got %+v", st)
	}

	s.ClearError()
	if st := s.State(); st.Status != StatusReady || st.Error != "" {
		t.Fatalf("expected ready after clear, got %+v", st)
	}
}

func TestStore_UpdateAndDeletePassThrough(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1", Name: "Rex"}, dogs.Dog{ID: "d2", Name: "Luna"})
	s.SelectDog(dogs.Dog{ID: "d1", Name: "Rex"})

	if _, err := s.UpdateDog(context.Background(), "d1", dogs.DogInput{Name: "Max", Gender: "male"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if d, _ := s.DogByID("d1"); d.Name != "Max" {
		t.Fatalf("expected local update, got %q", d.Name)
	}
	if sel, _ := s.Selected(); sel.Name != "Max" {
		t.Fatalf("expected selection updated, got %q", sel.Name)
	}

	if err := s.DeleteDog(context.Background(), "d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.HasDog("d1") || s.Count() != 1 {
		t.Fatalf("expected d1 removed, got %v", ids(s.Dogs()))
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected selection cleared on delete")
	}

	src.deleteErr = entity.ErrRemoteFailure
	if err := s.DeleteDog(context.Background(), "d2"); err == nil {
		t.Fatalf("expected error")
	}
	if !s.HasDog("d2") || s.State().Error == "" {
		t.Fatalf("failed delete must keep dog and report error, got %+v", s.State())
	}
}

func TestStore_ReadersGetCopies(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1", Tags: []string{"calm"}})

	list := s.Dogs()
	list[0].Tags[0] = "mutated"
	list[0].ID = "x"

	d, ok := s.DogByID("d1")
	if !ok || d.Tags[0] != "calm" {
		t.Fatalf("store state leaked to reader: %+v", d)
	}
}

func TestStore_CloseIgnoresLateDeliveries(t *testing.T) {
	src := &fakeSource{}
	s := Open(context.Background(), src, nil)
	src.deliver(dogs.Dog{ID: "d1"})

	calls := 0
	s.Observe(func(State) { calls++ })
	s.Close()
	s.Close()

	src.deliver(dogs.Dog{ID: "d1"}, dogs.Dog{ID: "d2"})
	if s.Count() != 1 {
		t.Fatalf("expected deliveries ignored after close, got %d", s.Count())
	}
	if calls != 1 {
		t.Fatalf("expected only the initial observe call, got %d", calls)
	}
}
