package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"paws-sync/internal/ports/remotestore"

	"github.com/go-playground/assert/v2"
)

type item struct {
	Name         string `json:"name"`
	LastModified int64  `json:"lastModified"`
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func ids(docs []remotestore.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func waitSnapshot(t *testing.T, ch <-chan []remotestore.Document) []remotestore.Document {
	t.Helper()
	select {
	case docs := <-ch:
		return docs
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for snapshot")
		return nil
	}
}

func TestStore_SetOverwritesWholeDocument(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	col := "users/u1/dogs/d1/notes"
	assert.Equal(t, s.Set(ctx, col, "n1", []byte(`{"name":"a","extra":true}`)), nil)
	assert.Equal(t, s.Set(ctx, col, "n1", []byte(`{"name":"b"}`)), nil)

	doc, ok, err := s.GetDoc(ctx, col, "n1")
	assert.Equal(t, err, nil)
	assert.Equal(t, ok, true)
	assert.Equal(t, string(doc.Data), `{"name":"b"}`)
}

func TestStore_AddGeneratesDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	id1, err := s.Add(ctx, "users/u1/dogs", []byte(`{"name":"Rex"}`))
	assert.Equal(t, err, nil)
	id2, err := s.Add(ctx, "users/u1/dogs", []byte(`{"name":"Luna"}`))
	assert.Equal(t, err, nil)

	assert.NotEqual(t, id1, "")
	assert.NotEqual(t, id1, id2)
}

func TestStore_RejectsInvalidPaths(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	assert.Equal(t, s.Set(ctx, "users//dogs", "x", []byte(`{}`)), remotestore.ErrInvalidPath)
	assert.Equal(t, s.Set(ctx, "users/u1/dogs", "a/b", []byte(`{}`)), remotestore.ErrInvalidPath)

	_, err := s.Query(ctx, remotestore.Query{Collection: ""})
	assert.Equal(t, err, remotestore.ErrInvalidPath)

	_, err = s.Query(ctx, remotestore.Query{
		Collection: "users/u1/reminders",
		Where:      []remotestore.Filter{{Field: "dateTime", Op: "~", Value: 1}},
	})
	assert.Equal(t, err, remotestore.ErrInvalidQuery)
}

func TestStore_QueryOrdersFiltersAndLimits(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	col := "users/u1/reminders"

	for id, ts := range map[string]int64{"a": 90, "b": 105, "c": 120, "d": 101, "e": 200} {
		assert.Equal(t, s.Set(ctx, col, id, mustJSON(t, map[string]any{"dateTime": ts})), nil)
	}
	// sin el campo de orden: no aparece
	assert.Equal(t, s.Set(ctx, col, "z", []byte(`{"title":"no date"}`)), nil)

	docs, err := s.Query(ctx, remotestore.Query{
		Collection: col,
		OrderBy:    "dateTime",
		Direction:  remotestore.Ascending,
		Where:      []remotestore.Filter{{Field: "dateTime", Op: remotestore.OpGreaterOrEqual, Value: int64(100)}},
		Limit:      3,
	})
	assert.Equal(t, err, nil)
	assert.Equal(t, ids(docs), []string{"d", "b", "c"})

	docs, err = s.Query(ctx, remotestore.Query{Collection: col, OrderBy: "dateTime", Direction: remotestore.Descending})
	assert.Equal(t, err, nil)
	assert.Equal(t, ids(docs), []string{"e", "c", "b", "d", "a"})
}

func TestStore_DeleteKeepsSubcollections(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)

	assert.Equal(t, s.Set(ctx, "users/u1/dogs", "d1", []byte(`{"name":"Rex"}`)), nil)
	assert.Equal(t, s.Set(ctx, "users/u1/dogs/d1/weights", "w1", []byte(`{"weight":12.5}`)), nil)

	assert.Equal(t, s.Delete(ctx, "users/u1/dogs", "d1"), nil)
	// idempotente
	assert.Equal(t, s.Delete(ctx, "users/u1/dogs", "d1"), nil)

	assert.Equal(t, s.DocumentPaths("users/u1/dogs/d1"), []string{"users/u1/dogs/d1/weights/w1"})
}

func TestStore_ListenDeliversInitialAndOrderedSnapshots(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	col := "users/u1/dogs/d1/notes"

	assert.Equal(t, s.Set(ctx, col, "n0", mustJSON(t, item{Name: "seed", LastModified: 0})), nil)

	ch := make(chan []remotestore.Document, 64)
	reg, err := s.Listen(remotestore.Query{Collection: col, OrderBy: "lastModified", Direction: remotestore.Descending},
		func(docs []remotestore.Document, err error) {
			if err == nil {
				ch <- docs
			}
		})
	assert.Equal(t, err, nil)
	defer reg.Remove()

	first := waitSnapshot(t, ch)
	assert.Equal(t, ids(first), []string{"n0"})

	const writes = 20
	for i := 1; i <= writes; i++ {
		assert.Equal(t, s.Set(ctx, col, "n"+string(rune('a'+i)), mustJSON(t, item{LastModified: int64(i)})), nil)
	}

	// Cada snapshot contiene un superconjunto del anterior; el último tiene todo.
	prev := len(first)
	for prev < writes+1 {
		docs := waitSnapshot(t, ch)
		if len(docs) < prev {
			t.Fatalf("snapshot went back: %d < %d", len(docs), prev)
		}
		prev = len(docs)
	}
}

func TestStore_RemoveStopsDeliveries(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	col := "users/u1/reminders"

	ch := make(chan []remotestore.Document, 16)
	reg, err := s.Listen(remotestore.Query{Collection: col}, func(docs []remotestore.Document, err error) {
		ch <- docs
	})
	assert.Equal(t, err, nil)
	waitSnapshot(t, ch)

	reg.Remove()
	reg.Remove()

	assert.Equal(t, s.Set(ctx, col, "r1", []byte(`{}`)), nil)

	select {
	case docs := <-ch:
		t.Fatalf("unexpected delivery after Remove: %v", ids(docs))
	case <-time.After(100 * time.Millisecond):
	}
}
