package dogs

import (
	"context"
	"fmt"
	"io"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/ports/remotestore"
)

// UploadEntityImage sube a {folder}/{uid}/{parentID}/{timestamp}.jpg y
// devuelve la URL de descarga.
func (m *Manager) UploadEntityImage(ctx context.Context, parentID string, r io.Reader, folder string) (string, error) {
	uid, ok := m.ident.CurrentUserID(ctx)
	if !ok {
		return "", entity.ErrNotAuthenticated
	}
	if r == nil || !remotestore.ValidSegment(folder) || !remotestore.ValidSegment(parentID) {
		return "", ErrInvalidInput
	}
	if err := m.requireDog(ctx, parentID); err != nil {
		return "", err
	}
	path := fmt.Sprintf("%s/%s/%s/%d.jpg", folder, uid, parentID, m.now().UnixMilli())
	return m.upload(ctx, path, r)
}

// UploadProfileImage sube a users/{uid}/profile/{timestamp}.jpg.
func (m *Manager) UploadProfileImage(ctx context.Context, r io.Reader) (string, error) {
	uid, ok := m.ident.CurrentUserID(ctx)
	if !ok {
		return "", entity.ErrNotAuthenticated
	}
	if r == nil {
		return "", ErrInvalidInput
	}
	path := fmt.Sprintf("%s/%s/profile/%d.jpg", entity.CollectionUsers, uid, m.now().UnixMilli())
	return m.upload(ctx, path, r)
}

func (m *Manager) upload(ctx context.Context, path string, r io.Reader) (string, error) {
	if err := m.blobs.Put(ctx, path, r); err != nil {
		return "", fmt.Errorf("%w: put %s: %v", ErrImageUpload, path, err)
	}
	url, err := m.blobs.DownloadURL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: url %s: %v", ErrImageUpload, path, err)
	}
	return url, nil
}

// DeleteImage borra el blob al que apunta una URL emitida por este store.
func (m *Manager) DeleteImage(ctx context.Context, url string) error {
	path, err := m.blobs.PathFromURL(url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := m.blobs.Delete(ctx, path); err != nil {
		return fmt.Errorf("%w: delete image: %v", entity.ErrRemoteFailure, err)
	}
	return nil
}

// AddDogWithImage crea el perro y después sube la imagen.
// Si la subida falla el perro queda creado con imageUrl vacío: se devuelve
// el perro junto con un error que envuelve ErrImageUpload.
func (m *Manager) AddDogWithImage(ctx context.Context, in DogInput, img io.Reader) (Dog, error) {
	d, err := m.AddDog(ctx, in)
	if err != nil {
		return Dog{}, err
	}
	if img == nil {
		return d, nil
	}
	return m.SetDogImage(ctx, d, img)
}

// SetDogImage sube la imagen y guarda la URL en el perfil.
func (m *Manager) SetDogImage(ctx context.Context, d Dog, img io.Reader) (Dog, error) {
	url, err := m.UploadEntityImage(ctx, d.ID, img, FolderDogImages)
	if err != nil {
		m.log.Warn("dog image upload failed", map[string]any{"dog_id": d.ID, "err": err})
		return d, err
	}

	old := d.ImageURL
	d.ImageURL = url
	if err := m.dogs.Update(ctx, "", d); err != nil {
		d.ImageURL = old
		if derr := m.DeleteImage(ctx, url); derr != nil {
			m.log.Warn("orphan dog image not deleted", map[string]any{"dog_id": d.ID, "err": derr})
		}
		return d, fmt.Errorf("%w: %v", ErrImageUpload, err)
	}
	if old != "" {
		if err := m.DeleteImage(ctx, old); err != nil {
			m.log.Debug("previous dog image not deleted", map[string]any{"dog_id": d.ID, "err": err})
		}
	}
	return d, nil
}
