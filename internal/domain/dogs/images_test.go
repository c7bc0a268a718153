package dogs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	blobmem "paws-sync/internal/adapters/blobstore/memory"
	mem "paws-sync/internal/adapters/storage/memory"
	"paws-sync/internal/ports/auth"
)

// brokenBlobs falla todos los Put.
type brokenBlobs struct {
	*blobmem.Store
}

func (b brokenBlobs) Put(context.Context, string, io.Reader) error {
	return errors.New("quota exceeded")
}

func TestManager_UploadPaths(t *testing.T) {
	ctx := context.Background()
	m, blobs := newTestManager(mem.NewStore(nil))
	mustAddDog(t, m, "d1", "Rex")
	ts := fixedNow.UnixMilli()

	url, err := m.UploadEntityImage(ctx, "d1", strings.NewReader("jpg"), FolderPoopImages)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	want := fmt.Sprintf("poop_images/u1/d1/%d.jpg", ts)
	if url != blobmem.DefaultBaseURL+"/"+want {
		t.Fatalf("unexpected url %q", url)
	}

	if _, err := m.UploadProfileImage(ctx, strings.NewReader("jpg")); err != nil {
		t.Fatalf("upload profile: %v", err)
	}

	paths := blobs.Paths()
	if len(paths) != 2 || paths[0] != want || paths[1] != fmt.Sprintf("users/u1/profile/%d.jpg", ts) {
		t.Fatalf("unexpected blob paths: %v", paths)
	}

	if err := m.DeleteImage(ctx, url); err != nil {
		t.Fatalf("delete image: %v", err)
	}
	if len(blobs.Paths()) != 1 {
		t.Fatalf("expected poop image deleted, got %v", blobs.Paths())
	}
	if err := m.DeleteImage(ctx, "https://elsewhere/x.jpg"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign url, got %v", err)
	}
}

func TestManager_AddDogWithImage(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(mem.NewStore(nil))

	d, err := m.AddDogWithImage(ctx, DogInput{Name: "Rex", Gender: "male"}, strings.NewReader("jpg"))
	if err != nil {
		t.Fatalf("add with image: %v", err)
	}
	if !strings.HasSuffix(d.ImageURL, ".jpg") {
		t.Fatalf("expected image url, got %q", d.ImageURL)
	}

	stored, err := m.GetDog(ctx, d.ID)
	if err != nil {
		t.Fatalf("get dog: %v", err)
	}
	if stored.ImageURL != d.ImageURL {
		t.Fatalf("expected stored url %q, got %q", d.ImageURL, stored.ImageURL)
	}
}

func TestManager_AddDogWithImageDegradesOnUploadFailure(t *testing.T) {
	ctx := context.Background()
	m := NewManager(mem.NewStore(nil), brokenBlobs{blobmem.NewStore("")}, auth.StaticIdentity("u1"), nil)

	d, err := m.AddDogWithImage(ctx, DogInput{Name: "Rex", Gender: "male"}, strings.NewReader("jpg"))
	if !errors.Is(err, ErrImageUpload) {
		t.Fatalf("expected ErrImageUpload, got %v", err)
	}
	if d.ID == "" || d.ImageURL != "" {
		t.Fatalf("expected dog kept with empty image, got %+v", d)
	}

	stored, getErr := m.GetDog(ctx, d.ID)
	if getErr != nil {
		t.Fatalf("dog should exist: %v", getErr)
	}
	if stored.ImageURL != "" {
		t.Fatalf("expected empty imageUrl, got %q", stored.ImageURL)
	}
}

func TestManager_SetDogImageCleansUpOnUpdateFailure(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: mem.NewStore(nil), failSet: map[string]bool{}}
	m, blobs := newTestManager(store)
	rex := mustAddDog(t, m, "d1", "Rex")
	store.failSet["users/u1/dogs/d1"] = true

	d, err := m.SetDogImage(ctx, rex, strings.NewReader("jpg"))
	if !errors.Is(err, ErrImageUpload) {
		t.Fatalf("expected ErrImageUpload, got %v", err)
	}
	if d.ImageURL != "" {
		t.Fatalf("expected previous url restored, got %q", d.ImageURL)
	}
	if len(blobs.Paths()) != 0 {
		t.Fatalf("expected uploaded blob removed, got %v", blobs.Paths())
	}
}

func TestManager_DeletePoopRemovesImage(t *testing.T) {
	ctx := context.Background()
	m, blobs := newTestManager(mem.NewStore(nil))
	mustAddDog(t, m, "d1", "Rex")

	url, err := m.UploadEntityImage(ctx, "d1", strings.NewReader("jpg"), FolderPoopImages)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	p, err := m.AddPoop(ctx, "d1", PoopInput{Consistency: "hard", ImageURL: url})
	if err != nil {
		t.Fatalf("add poop: %v", err)
	}

	if err := m.DeletePoop(ctx, "d1", p.ID); err != nil {
		t.Fatalf("delete poop: %v", err)
	}
	if len(blobs.Paths()) != 0 {
		t.Fatalf("expected image gone, got %v", blobs.Paths())
	}
}
