package breeds

import "context"

type Breed struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BredFor     string `json:"bred_for,omitempty"`
	BreedGroup  string `json:"breed_group,omitempty"`
	LifeSpan    string `json:"life_span,omitempty"`
	Temperament string `json:"temperament,omitempty"`
	Origin      string `json:"origin,omitempty"`
}

// Catalog lista las razas disponibles para el alta de perros.
type Catalog interface {
	ListBreeds(ctx context.Context) ([]Breed, error)
}
