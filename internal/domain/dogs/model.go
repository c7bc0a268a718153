package dogs

import (
	"strings"

	"paws-sync/internal/domain/entity"
	"paws-sync/internal/ports/remotestore"
)

// Gender define el sexo del perro.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender acepta mayúsculas/minúsculas; vacío o desconocido => false.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	}
	return "", false
}

// Dog es el perfil de un perro. Vive en users/{uid}/dogs/{id}.
type Dog struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	BirthDate int64    `json:"birthDate"` // epoch ms
	Gender    Gender   `json:"gender"`
	Weight    float64  `json:"weight"`
	Color     []string `json:"color"`
	ImageURL  string   `json:"imageUrl"`
	Tags      []string `json:"tags"`
	BreedName string   `json:"breedName"`
}

func (d Dog) EntityID() string { return d.ID }
func (d Dog) WithID(id string) Dog {
	d.ID = id
	return d
}

// Note es una nota libre sobre el perro.
type Note struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	CreatedDate  int64  `json:"createdDate"`
	LastModified int64  `json:"lastModified"`
}

func (n Note) EntityID() string { return n.ID }
func (n Note) WithID(id string) Note {
	n.ID = id
	return n
}

// Consistency de un registro de caca.
// @Enum normal, soft, hard, liquid
type Consistency string

const (
	ConsistencyNormal Consistency = "normal"
	ConsistencySoft   Consistency = "soft"
	ConsistencyHard   Consistency = "hard"
	ConsistencyLiquid Consistency = "liquid"
)

func ParseConsistency(s string) (Consistency, bool) {
	switch c := Consistency(strings.ToLower(strings.TrimSpace(s))); c {
	case ConsistencyNormal, ConsistencySoft, ConsistencyHard, ConsistencyLiquid:
		return c, true
	}
	return "", false
}

// Poop: Color es el nombre del color ("Normal Brown", "Yellow", ...) o un hex.
type Poop struct {
	ID           string      `json:"id"`
	Color        string      `json:"color"`
	Consistency  Consistency `json:"consistency"`
	Notes        string      `json:"notes"`
	ImageURL     string      `json:"imageUrl"`
	CreatedDate  int64       `json:"createdDate"`
	LastModified int64       `json:"lastModified"`
}

func (p Poop) EntityID() string { return p.ID }
func (p Poop) WithID(id string) Poop {
	p.ID = id
	return p
}

type Weight struct {
	ID           string  `json:"id"`
	Weight       float64 `json:"weight"`
	CreatedDate  int64   `json:"createdDate"`
	LastModified int64   `json:"lastModified"`
}

func (w Weight) EntityID() string { return w.ID }
func (w Weight) WithID(id string) Weight {
	w.ID = id
	return w
}

// WalkType: franja del paseo.
// @Enum morning, afternoon, evening
type WalkType string

const (
	WalkMorning   WalkType = "morning"
	WalkAfternoon WalkType = "afternoon"
	WalkEvening   WalkType = "evening"
)

var WalkTypes = []WalkType{WalkMorning, WalkAfternoon, WalkEvening}

func ParseWalkType(s string) (WalkType, bool) {
	switch w := WalkType(strings.ToLower(strings.TrimSpace(s))); w {
	case WalkMorning, WalkAfternoon, WalkEvening:
		return w, true
	}
	return "", false
}

// Walk marca un paseo de un día. El id del documento es "{date}_{walkType}".
type Walk struct {
	ID          string   `json:"-"`
	Date        string   `json:"date"` // YYYY-MM-DD
	WalkType    WalkType `json:"walkType"`
	IsCompleted bool     `json:"isCompleted"`
	Timestamp   int64    `json:"timestamp"`
}

func (w Walk) EntityID() string { return w.ID }
func (w Walk) WithID(id string) Walk {
	w.ID = id
	return w
}

func WalkID(date string, walkType WalkType) string {
	return date + "_" + string(walkType)
}

// WalkDay agrega los tres paseos de una fecha.
type WalkDay struct {
	Date               string `json:"date"`
	MorningCompleted   bool   `json:"morningCompleted"`
	AfternoonCompleted bool   `json:"afternoonCompleted"`
	EveningCompleted   bool   `json:"eveningCompleted"`
}

func (d WalkDay) CompletionCount() int {
	n := 0
	for _, ok := range []bool{d.MorningCompleted, d.AfternoonCompleted, d.EveningCompleted} {
		if ok {
			n++
		}
	}
	return n
}

func (d WalkDay) AllCompleted() bool {
	return d.MorningCompleted && d.AfternoonCompleted && d.EveningCompleted
}

// Carpetas de blobs por tipo de imagen.
const (
	FolderDogImages  = "dog_images"
	FolderPoopImages = "poop_images"
)

var (
	dogsCollection = entity.Collection{
		Name: entity.CollectionDogs,
		Path: entity.UserRoot(entity.CollectionDogs),
	}
	notesCollection = entity.Collection{
		Name:      entity.CollectionNotes,
		Path:      entity.DogChild(entity.CollectionNotes),
		OrderBy:   "lastModified",
		Direction: remotestore.Descending,
	}
	poopCollection = entity.Collection{
		Name:      entity.CollectionPoop,
		Path:      entity.DogChild(entity.CollectionPoop),
		OrderBy:   "lastModified",
		Direction: remotestore.Descending,
	}
	weightsCollection = entity.Collection{
		Name:      entity.CollectionWeights,
		Path:      entity.DogChild(entity.CollectionWeights),
		OrderBy:   "lastModified",
		Direction: remotestore.Descending,
	}
	walksCollection = entity.Collection{
		Name: entity.CollectionWalks,
		Path: entity.DogChild(entity.CollectionWalks),
	}
)

// cascadeCollections son las subcolecciones que se vacían antes de borrar un perro.
// "reminders" es legacy: versiones viejas guardaban recordatorios bajo el perro.
var cascadeCollections = []string{
	entity.CollectionNotes,
	entity.CollectionPoop,
	entity.CollectionWeights,
	entity.CollectionWalks,
	entity.CollectionReminders,
}
