package reminders

// Reminder vive en users/{uid}/reminders/{id}: a nivel usuario y no bajo el
// perro, para poder consultar "los próximos N" de todos los perros de una vez.
//
// DogID es solo referencia (no ownership). DogName es una copia tomada al
// crear/editar y no se resincroniza si el perro cambia de nombre.
type Reminder struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ReminderType Type   `json:"reminderType"`
	DateTime     int64  `json:"dateTime"` // epoch ms
	Notes        string `json:"notes"`
	DogID        string `json:"dogId"`
	DogName      string `json:"dogName"`
	Location     string `json:"location"`
	IsCompleted  bool   `json:"isCompleted"`
	CreatedAt    int64  `json:"createdAt"`
}

func (r Reminder) EntityID() string { return r.ID }
func (r Reminder) WithID(id string) Reminder {
	r.ID = id
	return r
}
