// -----------------------------------------------------------------------------
// Seat Repository (Seat Inventory Store)
// -----------------------------------------------------------------------------
// Owns the seats relation. Booking state changes only happen here, and
// the claim is a single conditional UPDATE so concurrent bookings can
// never both take the same seat (the loser sees zero affected rows).
// -----------------------------------------------------------------------------

package repositories

import (
	"database/sql"
	"fmt"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// InitializeSeats creates the full inventory for a train inside the
// caller's transaction. All 50 rows commit together with the train's
// metadata or not at all. Fails with ErrDuplicateTrain when seats
// already exist for the train.
func (r *SeatRepository) InitializeSeats(tx *sql.Tx, trainNumber string) error {
	var count int
	err := tx.QueryRow(`SELECT COUNT(*) FROM seats WHERE train_number = ?`, trainNumber).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count existing seats: %w", err)
	}
	if count > 0 {
		return models.ErrDuplicateTrain
	}

	stmt, err := tx.Prepare(`
		INSERT INTO seats (train_number, seat_number, category, booked)
		VALUES (?, ?, ?, 0)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare seat insert: %w", err)
	}
	defer stmt.Close()

	for _, seat := range models.NewInventory(trainNumber) {
		if _, err := stmt.Exec(seat.TrainNumber, seat.SeatNumber, seat.Category); err != nil {
			return fmt.Errorf("failed to insert seat %d: %w", seat.SeatNumber, err)
		}
	}

	return nil
}

// GetSeats returns the train's seats in ascending seat number order.
// An unknown train yields an empty slice, not an error.
func (r *SeatRepository) GetSeats(trainNumber string) ([]*models.Seat, error) {
	query := `
		SELECT train_number, seat_number, category, booked,
			passenger_name, passenger_age, passenger_gender
		FROM seats
		WHERE train_number = ?
		ORDER BY seat_number ASC
	`

	rows, err := r.db.Query(query, trainNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query seats: %w", err)
	}
	defer rows.Close()

	seats := []*models.Seat{}
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seats: %w", err)
	}

	return seats, nil
}

// FindFirstAvailable returns the lowest-numbered free seat of the given
// category. The lowest-number tie-break is the allocation policy;
// callers and tests rely on it.
func (r *SeatRepository) FindFirstAvailable(trainNumber string, category models.SeatCategory) (int, error) {
	query := `
		SELECT seat_number
		FROM seats
		WHERE train_number = ? AND category = ? AND booked = 0
		ORDER BY seat_number ASC
		LIMIT 1
	`

	var seatNumber int
	err := r.db.QueryRow(query, trainNumber, category).Scan(&seatNumber)
	if err == sql.ErrNoRows {
		return 0, models.ErrNoAvailableSeat
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find available seat: %w", err)
	}

	return seatNumber, nil
}

// Claim marks a seat booked and attaches the passenger, but only if the
// seat is still free. The WHERE booked = 0 predicate and the affected
// row count are what make concurrent allocation safe: a racer that lost
// gets ErrAlreadyBooked and can retry against the next candidate.
func (r *SeatRepository) Claim(trainNumber string, seatNumber int, passenger *models.Passenger) error {
	query := `
		UPDATE seats
		SET booked = 1, passenger_name = ?, passenger_age = ?, passenger_gender = ?
		WHERE train_number = ? AND seat_number = ? AND booked = 0
	`

	result, err := r.db.Exec(query,
		passenger.Name, passenger.Age, passenger.Gender,
		trainNumber, seatNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to claim seat: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 1 {
		return nil
	}

	// Zero rows: either the seat does not exist or someone else booked
	// it between the lookup and the claim.
	var booked bool
	err = r.db.QueryRow(
		`SELECT booked FROM seats WHERE train_number = ? AND seat_number = ?`,
		trainNumber, seatNumber,
	).Scan(&booked)
	if err == sql.ErrNoRows {
		return models.ErrSeatNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to inspect contested seat: %w", err)
	}

	return models.ErrAlreadyBooked
}

// Release clears the booking state of a seat. Releasing an already free
// seat is a no-op, which keeps cancellation retry-safe for clients.
func (r *SeatRepository) Release(trainNumber string, seatNumber int) error {
	query := `
		UPDATE seats
		SET booked = 0, passenger_name = NULL, passenger_age = NULL, passenger_gender = NULL
		WHERE train_number = ? AND seat_number = ?
	`

	if _, err := r.db.Exec(query, trainNumber, seatNumber); err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	return nil
}

// DropSeats removes every seat of a train inside the caller's
// transaction. Only the train registry calls this, as part of train
// deletion; the FK cascade covers the same ground but the registry
// keeps the drop explicit so teardown and metadata removal commit as
// one unit.
func (r *SeatRepository) DropSeats(tx *sql.Tx, trainNumber string) error {
	if _, err := tx.Exec(`DELETE FROM seats WHERE train_number = ?`, trainNumber); err != nil {
		return fmt.Errorf("failed to drop seats: %w", err)
	}

	return nil
}

func scanSeat(rows *sql.Rows) (*models.Seat, error) {
	seat := &models.Seat{}
	var (
		name   sql.NullString
		age    sql.NullInt64
		gender sql.NullString
	)

	err := rows.Scan(
		&seat.TrainNumber, &seat.SeatNumber, &seat.Category, &seat.Booked,
		&name, &age, &gender,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan seat: %w", err)
	}

	if seat.Booked {
		seat.Passenger = &models.Passenger{
			Name:   name.String,
			Age:    int(age.Int64),
			Gender: models.Gender(gender.String),
		}
	}

	return seat, nil
}
