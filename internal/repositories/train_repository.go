// -----------------------------------------------------------------------------
// Train Repository
// -----------------------------------------------------------------------------

package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

// mysqlDuplicateEntry is the server error code for a unique key violation.
const mysqlDuplicateEntry = 1062

type TrainRepository struct {
	db *sql.DB
}

func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

// Create inserts train metadata inside the caller's transaction. The
// train number is the primary key; a duplicate insert, including one
// lost to a concurrent creator, surfaces as ErrDuplicateTrain.
func (r *TrainRepository) Create(tx *sql.Tx, train *models.Train) error {
	query := `
		INSERT INTO trains (train_number, train_name, departure_date, origin, destination)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := tx.Exec(query,
		train.TrainNumber, train.Name, train.DepartureDate,
		train.Origin, train.Destination,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.ErrDuplicateTrain
		}
		return fmt.Errorf("failed to create train: %w", err)
	}

	return nil
}

// FindByNumber returns the train with the given number.
func (r *TrainRepository) FindByNumber(trainNumber string) (*models.Train, error) {
	query := `
		SELECT train_number, train_name, departure_date, origin, destination
		FROM trains
		WHERE train_number = ?
	`

	train := &models.Train{}
	err := r.db.QueryRow(query, trainNumber).Scan(
		&train.TrainNumber, &train.Name, &train.DepartureDate,
		&train.Origin, &train.Destination,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrTrainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find train: %w", err)
	}

	return train, nil
}

// Exists reports whether a train with the given number is registered.
func (r *TrainRepository) Exists(trainNumber string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM trains WHERE train_number = ?`, trainNumber).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check train existence: %w", err)
	}

	return count > 0, nil
}

// FindByRoute returns all trains running from origin to destination,
// ordered by departure date.
func (r *TrainRepository) FindByRoute(origin, destination string) ([]*models.Train, error) {
	query := `
		SELECT train_number, train_name, departure_date, origin, destination
		FROM trains
		WHERE origin = ? AND destination = ?
		ORDER BY departure_date ASC, train_number ASC
	`

	rows, err := r.db.Query(query, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}
	defer rows.Close()

	trains := []*models.Train{}
	for rows.Next() {
		train := &models.Train{}
		err := rows.Scan(
			&train.TrainNumber, &train.Name, &train.DepartureDate,
			&train.Origin, &train.Destination,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, train)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trains: %w", err)
	}

	return trains, nil
}

// Delete removes the train matching both the number and the departure
// date, inside the caller's transaction. Returns the number of rows
// removed so the registry can apply its missing-train policy.
func (r *TrainRepository) Delete(tx *sql.Tx, trainNumber, departureDate string) (int64, error) {
	result, err := tx.Exec(
		`DELETE FROM trains WHERE train_number = ? AND departure_date = ?`,
		trainNumber, departureDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete train: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
