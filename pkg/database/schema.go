// -----------------------------------------------------------------------------
// Schema Bootstrap
// -----------------------------------------------------------------------------
// Creates the three relations the service needs. A single seats table
// keyed (train_number, seat_number) holds every train's inventory;
// the FK cascade guarantees no seat ever outlives its train, and the
// (train_number, category, booked) index makes the lowest-free-seat
// lookup and the conditional claim indexed operations.
// -----------------------------------------------------------------------------

package database

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS trains (
		train_number VARCHAR(20) NOT NULL PRIMARY KEY,
		train_name VARCHAR(100) NOT NULL,
		departure_date VARCHAR(10) NOT NULL,
		origin VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		KEY idx_trains_route (origin, destination)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS seats (
		train_number VARCHAR(20) NOT NULL,
		seat_number INT NOT NULL,
		category VARCHAR(10) NOT NULL,
		booked TINYINT(1) NOT NULL DEFAULT 0,
		passenger_name VARCHAR(100) NULL,
		passenger_age INT NULL,
		passenger_gender VARCHAR(10) NULL,
		PRIMARY KEY (train_number, seat_number),
		KEY idx_seats_allocation (train_number, category, booked),
		CONSTRAINT fk_seats_train FOREIGN KEY (train_number)
			REFERENCES trains (train_number) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

// CreateSchema creates the users, trains and seats tables if they do
// not exist yet.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	return nil
}
