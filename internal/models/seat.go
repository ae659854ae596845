// -----------------------------------------------------------------------------
// Seat Model
// -----------------------------------------------------------------------------
// A seat belongs to exactly one train and is identified by
// (train_number, seat_number). Its category is derived from the seat
// number once, at inventory creation, and never changes.
// -----------------------------------------------------------------------------

package models

// SeatCategory is the physical position class of a seat.
type SeatCategory string

const (
	SeatCategoryWindow SeatCategory = "Window"
	SeatCategoryAisle  SeatCategory = "Aisle"
	SeatCategoryMiddle SeatCategory = "Middle"
)

// TrainCapacity is the fixed number of seats every train carries.
// Seat numbers run 1..TrainCapacity.
const TrainCapacity = 50

// ParseSeatCategory validates a client-supplied category string.
func ParseSeatCategory(s string) (SeatCategory, bool) {
	switch SeatCategory(s) {
	case SeatCategoryWindow, SeatCategoryAisle, SeatCategoryMiddle:
		return SeatCategory(s), true
	}
	return "", false
}

// CategoryFor maps a seat number to its category. The rule is fixed:
// taking seatNumber mod 10, remainders 0/4/5/9 are window seats,
// 2/3/6/7 are aisle seats and 1/8 are middle seats. Total and
// deterministic over all positive seat numbers; allocation order
// depends on it, so it must not change.
func CategoryFor(seatNumber int) SeatCategory {
	switch seatNumber % 10 {
	case 0, 4, 5, 9:
		return SeatCategoryWindow
	case 2, 3, 6, 7:
		return SeatCategoryAisle
	default: // 1, 8
		return SeatCategoryMiddle
	}
}

// Gender is the fixed enumeration accepted for passengers.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender validates a client-supplied gender string.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), true
	}
	return "", false
}

// Passenger is the person occupying a booked seat. Present on a seat
// record if and only if the seat is booked.
type Passenger struct {
	Name   string `json:"name" db:"passenger_name"`
	Age    int    `json:"age" db:"passenger_age"`
	Gender Gender `json:"gender" db:"passenger_gender"`
}

// Seat is one seat row of a train's inventory.
type Seat struct {
	TrainNumber string       `json:"train_number" db:"train_number"`
	SeatNumber  int          `json:"seat_number" db:"seat_number"`
	Category    SeatCategory `json:"category" db:"category"`
	Booked      bool         `json:"booked" db:"booked"`
	Passenger   *Passenger   `json:"passenger,omitempty" db:"-"`
}

// IsFree reports whether the seat can be allocated.
func (s *Seat) IsFree() bool {
	return !s.Booked
}

// NewInventory builds the full, unbooked seat set for a train: seat
// numbers 1..TrainCapacity with their derived categories. The store
// persists exactly this set when a train is created.
func NewInventory(trainNumber string) []*Seat {
	seats := make([]*Seat, 0, TrainCapacity)
	for n := 1; n <= TrainCapacity; n++ {
		seats = append(seats, &Seat{
			TrainNumber: trainNumber,
			SeatNumber:  n,
			Category:    CategoryFor(n),
		})
	}
	return seats
}
