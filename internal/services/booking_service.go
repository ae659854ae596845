// -----------------------------------------------------------------------------
// Booking Service (Booking Engine)
// -----------------------------------------------------------------------------
// The only entry point allowed to change seat booking state. Allocation
// is find-then-claim: the claim is atomic at the store, so a concurrent
// booking that takes the candidate first just costs us a retry against
// the next lowest seat. Every operation is all-or-nothing from the
// caller's point of view.
// -----------------------------------------------------------------------------

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
	"github.com/Atomicx56/Railway-Resevration/pkg/cache"
)

// claimAttempts bounds the find-and-claim retry loop. Losing the race
// this many times in a row means the category is draining faster than
// we can re-read it; the caller gets ErrNoAvailableSeat instead of an
// unbounded loop.
const claimAttempts = 3

// seatCacheTTL is how long a cached seat listing stays valid. Listings
// are also invalidated eagerly on every mutation.
const seatCacheTTL = 30 * time.Second

// TrainFinder is the slice of the train registry the engine needs.
type TrainFinder interface {
	Exists(trainNumber string) (bool, error)
}

// SeatStore is the seat inventory contract the engine operates
// against. Claim must be atomic per seat: it either transitions a free
// seat to booked or fails with ErrAlreadyBooked/ErrSeatNotFound.
type SeatStore interface {
	GetSeats(trainNumber string) ([]*models.Seat, error)
	FindFirstAvailable(trainNumber string, category models.SeatCategory) (int, error)
	Claim(trainNumber string, seatNumber int, passenger *models.Passenger) error
	Release(trainNumber string, seatNumber int) error
}

type BookingService struct {
	trains        TrainFinder
	seats         SeatStore
	cache         cache.Cache
	confirmations *ConfirmationFactory
}

// NewBookingService wires the engine. cache may be nil; listings are
// then always read from the store.
func NewBookingService(trains TrainFinder, seats SeatStore, c cache.Cache) *BookingService {
	return &BookingService{
		trains:        trains,
		seats:         seats,
		cache:         c,
		confirmations: NewConfirmationFactory(),
	}
}

// Book allocates the lowest-numbered free seat of the requested
// category and books it for the passenger.
func (s *BookingService) Book(ctx context.Context, trainNumber string, category models.SeatCategory, passenger *models.Passenger) (*BookingConfirmation, error) {
	// 1. Fail fast on bad input, before any seat lookup.
	if _, ok := models.ParseSeatCategory(string(category)); !ok {
		return nil, models.ErrInvalidCategory
	}
	if err := validatePassenger(passenger); err != nil {
		return nil, err
	}

	// 2. The train must exist.
	exists, err := s.trains.Exists(trainNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check train: %w", err)
	}
	if !exists {
		return nil, models.ErrTrainNotFound
	}

	// 3. Find-and-claim. A lost claim means another booking took the
	// candidate between our read and our write; re-read and try the
	// next lowest seat.
	for attempt := 0; attempt < claimAttempts; attempt++ {
		seatNumber, err := s.seats.FindFirstAvailable(trainNumber, category)
		if err != nil {
			if errors.Is(err, models.ErrNoAvailableSeat) {
				return nil, models.ErrNoAvailableSeat
			}
			return nil, fmt.Errorf("failed to find available seat: %w", err)
		}

		err = s.seats.Claim(trainNumber, seatNumber, passenger)
		if errors.Is(err, models.ErrAlreadyBooked) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to claim seat %d: %w", seatNumber, err)
		}

		s.invalidateSeatCache(ctx, trainNumber)

		confirmation, err := s.confirmations.New(trainNumber, seatNumber, category, passenger)
		if err != nil {
			// The seat is claimed but no confirmation can be issued;
			// undo the claim so the caller observes no state change.
			// The claim already committed, so this compensation is
			// best-effort rather than transactional: a crash between
			// claim and release leaves the seat booked with no
			// confirmation issued.
			if relErr := s.seats.Release(trainNumber, seatNumber); relErr != nil {
				log.Printf("failed to release seat %s/%d after confirmation error: %v", trainNumber, seatNumber, relErr)
			}
			s.invalidateSeatCache(ctx, trainNumber)
			return nil, err
		}

		return confirmation, nil
	}

	return nil, models.ErrNoAvailableSeat
}

// Cancel frees a seat. Cancelling a seat that is already free is a
// no-op, so clients can retry safely.
func (s *BookingService) Cancel(ctx context.Context, trainNumber string, seatNumber int) error {
	// 1. The train must exist and the seat number must be a real one.
	exists, err := s.trains.Exists(trainNumber)
	if err != nil {
		return fmt.Errorf("failed to check train: %w", err)
	}
	if !exists {
		return models.ErrTrainNotFound
	}
	if seatNumber < 1 || seatNumber > models.TrainCapacity {
		return models.ErrSeatNotFound
	}

	// 2. Release unconditionally; the store keeps this idempotent.
	if err := s.seats.Release(trainNumber, seatNumber); err != nil {
		return fmt.Errorf("failed to cancel seat %d: %w", seatNumber, err)
	}

	s.invalidateSeatCache(ctx, trainNumber)
	return nil
}

// ListSeats returns a train's seats ordered by seat number, serving
// from cache when possible.
func (s *BookingService) ListSeats(ctx context.Context, trainNumber string) ([]*models.Seat, error) {
	key := seatCacheKey(trainNumber)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var seats []*models.Seat
			if err := json.Unmarshal(data, &seats); err == nil {
				return seats, nil
			}
			// A corrupt entry is dropped and re-read from the store.
			s.cache.Delete(ctx, key)
		}
	}

	seats, err := s.seats.GetSeats(trainNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(seats); err == nil {
			if err := s.cache.Set(ctx, key, data, seatCacheTTL); err != nil {
				log.Printf("failed to cache seat listing for %s: %v", trainNumber, err)
			}
		}
	}

	return seats, nil
}

func (s *BookingService) invalidateSeatCache(ctx context.Context, trainNumber string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, seatCacheKey(trainNumber)); err != nil {
		log.Printf("failed to invalidate seat cache for %s: %v", trainNumber, err)
	}
}

func seatCacheKey(trainNumber string) string {
	return "seats:" + trainNumber
}

// validatePassenger enforces the passenger rules: non-empty name,
// positive age, gender from the fixed set.
func validatePassenger(p *models.Passenger) error {
	if p == nil {
		return models.ErrInvalidPassenger
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", models.ErrInvalidPassenger)
	}
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be a positive integer", models.ErrInvalidPassenger)
	}
	if _, ok := models.ParseGender(string(p.Gender)); !ok {
		return fmt.Errorf("%w: unknown gender %q", models.ErrInvalidPassenger, p.Gender)
	}
	return nil
}
