// -----------------------------------------------------------------------------
// Train Service (Train Registry)
// -----------------------------------------------------------------------------
// Owns train lifecycle. Creating a train and materializing its 50-seat
// inventory share one transaction, as do deleting it and dropping the
// seats, so no reader ever observes a half-initialized or half-deleted
// train.
// -----------------------------------------------------------------------------

package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/pkg/cache"
)

// TrainStore is the train metadata persistence contract. Mutations run
// inside the transaction the registry opens around them.
type TrainStore interface {
	Create(tx *sql.Tx, train *models.Train) error
	Delete(tx *sql.Tx, trainNumber, departureDate string) (int64, error)
	FindByNumber(trainNumber string) (*models.Train, error)
	FindByRoute(origin, destination string) ([]*models.Train, error)
	Exists(trainNumber string) (bool, error)
}

// SeatInventory is the slice of the seat store the registry drives:
// materializing the inventory on create and dropping it on delete.
type SeatInventory interface {
	InitializeSeats(tx *sql.Tx, trainNumber string) error
	DropSeats(tx *sql.Tx, trainNumber string) error
}

// TxRunner runs fn inside a transaction: commit when fn returns nil,
// rollback otherwise.
type TxRunner interface {
	RunTx(fn func(tx *sql.Tx) error) error
}

type TrainService struct {
	tx     TxRunner
	trains TrainStore
	seats  SeatInventory
	cache  cache.Cache
}

func NewTrainService(tx TxRunner, trains TrainStore, seats SeatInventory, c cache.Cache) *TrainService {
	return &TrainService{
		tx:     tx,
		trains: trains,
		seats:  seats,
		cache:  c,
	}
}

// CreateTrain registers a train and creates its full seat inventory in
// a single transaction. A duplicate train number fails with
// ErrDuplicateTrain and leaves nothing behind.
func (s *TrainService) CreateTrain(train *models.Train) error {
	// 1. Validate metadata.
	if err := validateTrain(train); err != nil {
		return err
	}

	// 2. Metadata insert and seat initialization commit together; a
	// failure in either rolls both back.
	err := s.tx.RunTx(func(tx *sql.Tx) error {
		if err := s.trains.Create(tx, train); err != nil {
			return err
		}
		return s.seats.InitializeSeats(tx, train.TrainNumber)
	})
	if err != nil {
		return err
	}

	log.Printf("train %s created with %d seats", train.TrainNumber, models.TrainCapacity)
	return nil
}

// DeleteTrain removes the train matching both number and departure
// date, together with all its seats. Deleting a train that does not
// exist is a no-op, mirroring the idempotent cancel policy.
func (s *TrainService) DeleteTrain(ctx context.Context, trainNumber, departureDate string) error {
	if strings.TrimSpace(trainNumber) == "" || strings.TrimSpace(departureDate) == "" {
		return fmt.Errorf("%w: train number and departure date are required", models.ErrInvalidTrain)
	}

	deleted := false
	err := s.tx.RunTx(func(tx *sql.Tx) error {
		rowsDeleted, err := s.trains.Delete(tx, trainNumber, departureDate)
		if err != nil {
			return err
		}
		if rowsDeleted == 0 {
			return nil
		}
		deleted = true

		// The FK cascade removes the seats with the train; the
		// explicit drop keeps the teardown visible in this
		// transaction either way.
		return s.seats.DropSeats(tx, trainNumber)
	})
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, seatCacheKey(trainNumber)); err != nil {
			log.Printf("failed to invalidate seat cache for %s: %v", trainNumber, err)
		}
	}

	log.Printf("train %s deleted", trainNumber)
	return nil
}

// Find returns the train with the given number.
func (s *TrainService) Find(trainNumber string) (*models.Train, error) {
	return s.trains.FindByNumber(trainNumber)
}

// FindByRoute returns all trains running between origin and
// destination.
func (s *TrainService) FindByRoute(origin, destination string) ([]*models.Train, error) {
	return s.trains.FindByRoute(origin, destination)
}

// Exists reports whether a train is registered. Satisfies the booking
// engine's TrainFinder.
func (s *TrainService) Exists(trainNumber string) (bool, error) {
	return s.trains.Exists(trainNumber)
}

func validateTrain(train *models.Train) error {
	if train == nil {
		return models.ErrInvalidTrain
	}
	switch {
	case strings.TrimSpace(train.TrainNumber) == "":
		return fmt.Errorf("%w: train number is required", models.ErrInvalidTrain)
	case strings.TrimSpace(train.Name) == "":
		return fmt.Errorf("%w: train name is required", models.ErrInvalidTrain)
	case strings.TrimSpace(train.DepartureDate) == "":
		return fmt.Errorf("%w: departure date is required", models.ErrInvalidTrain)
	case strings.TrimSpace(train.Origin) == "":
		return fmt.Errorf("%w: origin is required", models.ErrInvalidTrain)
	case strings.TrimSpace(train.Destination) == "":
		return fmt.Errorf("%w: destination is required", models.ErrInvalidTrain)
	}
	return nil
}
