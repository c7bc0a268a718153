package dogs

import (
	"context"
	"time"
)

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// SaveWalkCompletion escribe (overwrite) walks/{date}_{walkType}.
func (m *Manager) SaveWalkCompletion(ctx context.Context, dogID, date string, walkType WalkType, completed bool) (Walk, error) {
	if !validDate(date) {
		return Walk{}, ErrInvalidInput
	}
	if _, ok := ParseWalkType(string(walkType)); !ok {
		return Walk{}, ErrInvalidInput
	}
	if err := m.requireDog(ctx, dogID); err != nil {
		return Walk{}, err
	}
	w := Walk{
		ID:          WalkID(date, walkType),
		Date:        date,
		WalkType:    walkType,
		IsCompleted: completed,
		Timestamp:   m.now().UnixMilli(),
	}
	if _, err := m.walks.Add(ctx, dogID, w); err != nil {
		return Walk{}, err
	}
	return w, nil
}

// GetWalkCompletion: documento inexistente => false, sin error.
func (m *Manager) GetWalkCompletion(ctx context.Context, dogID, date string, walkType WalkType) (bool, error) {
	if !validDate(date) {
		return false, ErrInvalidInput
	}
	if _, ok := ParseWalkType(string(walkType)); !ok {
		return false, ErrInvalidInput
	}
	w, ok, err := m.walks.GetByID(ctx, dogID, WalkID(date, walkType))
	if err != nil {
		return false, err
	}
	return ok && w.IsCompleted, nil
}

// WalkDay arma el resumen de los tres paseos de una fecha.
func (m *Manager) WalkDay(ctx context.Context, dogID, date string) (WalkDay, error) {
	day := WalkDay{Date: date}
	for _, wt := range WalkTypes {
		done, err := m.GetWalkCompletion(ctx, dogID, date, wt)
		if err != nil {
			return WalkDay{}, err
		}
		switch wt {
		case WalkMorning:
			day.MorningCompleted = done
		case WalkAfternoon:
			day.AfternoonCompleted = done
		case WalkEvening:
			day.EveningCompleted = done
		}
	}
	return day, nil
}
