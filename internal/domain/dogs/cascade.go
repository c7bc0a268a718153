package dogs

import (
	"context"
	"fmt"
	"strings"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/ports/remotestore"
)

// DeleteDog vacía las subcolecciones del perro y después borra el documento.
//
// Si el store soporta BatchDeleter, todo va en un único batch atómico.
// Si no, el borrado es secuencial y best-effort: un hijo que falla se loguea
// y se sigue; solo el error al borrar el perro vuelve al caller.
func (m *Manager) DeleteDog(ctx context.Context, dogID string) error {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return ErrInvalidInput
	}
	dogsPath, err := m.dogs.Path(ctx, "")
	if err != nil {
		return err
	}

	if bd, ok := m.store.(remotestore.BatchDeleter); ok {
		return m.deleteDogBatch(ctx, bd, dogsPath, dogID)
	}

	failed := 0
	for _, name := range cascadeCollections {
		failed += m.drainChild(ctx, dogsPath, dogID, name)
	}
	if failed > 0 {
		m.log.Warn("cascade left children behind", map[string]any{"dog_id": dogID, "failed": failed})
	}

	if err := m.dogs.Delete(ctx, "", dogID); err != nil {
		return err
	}
	m.log.Info("dog deleted", map[string]any{"dog_id": dogID})
	return nil
}

// drainChild borra uno por uno los documentos de una subcolección.
// Devuelve cuántos no se pudieron borrar (un listado fallido cuenta como 1).
func (m *Manager) drainChild(ctx context.Context, dogsPath, dogID, name string) int {
	path := childPath(dogsPath, dogID, name)
	docs, err := m.store.Query(ctx, remotestore.Query{Collection: path})
	if err != nil {
		m.log.Error("failed to list child collection", map[string]any{"dog_id": dogID, "collection": name, "err": err})
		return 1
	}

	failed := 0
	for _, d := range docs {
		if err := m.store.Delete(ctx, path, d.ID); err != nil {
			m.log.Error("failed to delete child", map[string]any{"dog_id": dogID, "collection": name, "id": d.ID, "err": err})
			failed++
		}
	}
	return failed
}

func (m *Manager) deleteDogBatch(ctx context.Context, bd remotestore.BatchDeleter, dogsPath, dogID string) error {
	refs := make([]remotestore.DocRef, 0)
	for _, name := range cascadeCollections {
		path := childPath(dogsPath, dogID, name)
		docs, err := m.store.Query(ctx, remotestore.Query{Collection: path})
		if err != nil {
			return fmt.Errorf("%w: list %s: %v", entity.ErrRemoteFailure, name, err)
		}
		for _, d := range docs {
			refs = append(refs, remotestore.DocRef{Collection: path, ID: d.ID})
		}
	}
	// el padre va último dentro del mismo batch
	refs = append(refs, remotestore.DocRef{Collection: dogsPath, ID: dogID})

	if err := bd.DeleteBatch(ctx, refs); err != nil {
		return fmt.Errorf("%w: delete dog batch: %v", entity.ErrRemoteFailure, err)
	}
	m.log.Info("dog deleted", map[string]any{"dog_id": dogID, "docs": len(refs)})
	return nil
}

func childPath(dogsPath, dogID, name string) string {
	return dogsPath + "/" + dogID + "/" + name
}
