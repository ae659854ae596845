// -----------------------------------------------------------------------------
// Train Model
// -----------------------------------------------------------------------------

package models

// Train holds a train's descriptive metadata. The train number is the
// primary key; the seat inventory is owned by the train and is created
// and destroyed with it.
type Train struct {
	TrainNumber   string `json:"train_number" db:"train_number"`
	Name          string `json:"name" db:"train_name"`
	DepartureDate string `json:"departure_date" db:"departure_date"` // YYYY-MM-DD
	Origin        string `json:"origin" db:"origin"`
	Destination   string `json:"destination" db:"destination"`
}
