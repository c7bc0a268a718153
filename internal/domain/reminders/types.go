package reminders

import "strings"

// Type es el tipo de recordatorio (enum cerrado).
type Type string

const (
	TypeVetAppointment Type = "VET_APPOINTMENT"
	TypeVaccination    Type = "VACCINATION"
	TypeGrooming       Type = "GROOMING"
	TypeMedication     Type = "MEDICATION"
	TypeTraining       Type = "TRAINING"
	TypeWalking        Type = "WALKING"
	TypeFeeding        Type = "FEEDING"
	TypeBath           Type = "BATH"
	TypeNailClipping   Type = "NAIL_CLIPPING"
	TypeDeworming      Type = "DEWORMING"
	TypeCheckup        Type = "CHECKUP"
	TypeOther          Type = "OTHER"
)

type typeInfo struct {
	display string
	emoji   string
}

var typeCatalog = map[Type]typeInfo{
	TypeVetAppointment: {"Vet Appointment", "💉"},
	TypeVaccination:    {"Vaccination", "💉"},
	TypeGrooming:       {"Grooming", "✂️"},
	TypeMedication:     {"Medication", "💊"},
	TypeTraining:       {"Training", "🏅"},
	TypeWalking:        {"Walk", "🐾"},
	TypeFeeding:        {"Feeding", "🍽️"},
	TypeBath:           {"Bath", "🛁"},
	TypeNailClipping:   {"Nail Clipping", "🦶"},
	TypeDeworming:      {"Deworming", "🪱"},
	TypeCheckup:        {"Checkup", "👩‍⚕️"},
	TypeOther:          {"Other", "📝"},
}

// AllTypes en orden de presentación.
var AllTypes = []Type{
	TypeVetAppointment, TypeVaccination, TypeGrooming, TypeMedication,
	TypeTraining, TypeWalking, TypeFeeding, TypeBath,
	TypeNailClipping, TypeDeworming, TypeCheckup, TypeOther,
}

// ParseType: cualquier valor desconocido (o vacío) es OTHER.
func ParseType(s string) Type {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := typeCatalog[t]; ok {
		return t
	}
	return TypeOther
}

func (t Type) DisplayName() string { return typeCatalog[ParseType(string(t))].display }
func (t Type) Emoji() string       { return typeCatalog[ParseType(string(t))].emoji }

// UnmarshalText hace que documentos con tipos viejos/desconocidos se lean como OTHER.
func (t *Type) UnmarshalText(b []byte) error {
	*t = ParseType(string(b))
	return nil
}
