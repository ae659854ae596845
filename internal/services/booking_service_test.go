package services

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

// fakeTrainFinder is an in-memory TrainFinder.
type fakeTrainFinder struct {
	trains map[string]bool
}

func newFakeTrainFinder(trainNumbers ...string) *fakeTrainFinder {
	trains := make(map[string]bool)
	for _, n := range trainNumbers {
		trains[n] = true
	}
	return &fakeTrainFinder{trains: trains}
}

func (f *fakeTrainFinder) Exists(trainNumber string) (bool, error) {
	return f.trains[trainNumber], nil
}

// fakeSeatStore is an in-memory SeatStore honoring the same contract
// as the SQL repository: Claim is atomic per seat and fails with
// ErrAlreadyBooked when the seat was taken between find and claim.
type fakeSeatStore struct {
	mu    sync.Mutex
	seats map[string][]*models.Seat
}

func newFakeSeatStore(trainNumbers ...string) *fakeSeatStore {
	seats := make(map[string][]*models.Seat)
	for _, n := range trainNumbers {
		seats[n] = models.NewInventory(n)
	}
	return &fakeSeatStore{seats: seats}
}

func (f *fakeSeatStore) GetSeats(trainNumber string) ([]*models.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*models.Seat, 0, len(f.seats[trainNumber]))
	for _, s := range f.seats[trainNumber] {
		copied := *s
		if s.Passenger != nil {
			p := *s.Passenger
			copied.Passenger = &p
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSeatStore) FindFirstAvailable(trainNumber string, category models.SeatCategory) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.seats[trainNumber] {
		if s.Category == category && s.IsFree() {
			return s.SeatNumber, nil
		}
	}
	return 0, models.ErrNoAvailableSeat
}

func (f *fakeSeatStore) Claim(trainNumber string, seatNumber int, passenger *models.Passenger) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	seat := f.find(trainNumber, seatNumber)
	if seat == nil {
		return models.ErrSeatNotFound
	}
	if seat.Booked {
		return models.ErrAlreadyBooked
	}

	p := *passenger
	seat.Booked = true
	seat.Passenger = &p
	return nil
}

func (f *fakeSeatStore) Release(trainNumber string, seatNumber int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seat := f.find(trainNumber, seatNumber); seat != nil {
		seat.Booked = false
		seat.Passenger = nil
	}
	return nil
}

func (f *fakeSeatStore) find(trainNumber string, seatNumber int) *models.Seat {
	for _, s := range f.seats[trainNumber] {
		if s.SeatNumber == seatNumber {
			return s
		}
	}
	return nil
}

// fakeCache is an in-memory cache.Cache without TTL handling.
type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache: key not found")
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *fakeCache) Has(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok, nil
}

func newTestBookingService(trainNumbers ...string) (*BookingService, *fakeSeatStore) {
	seats := newFakeSeatStore(trainNumbers...)
	return NewBookingService(newFakeTrainFinder(trainNumbers...), seats, nil), seats
}

func testPassenger() *models.Passenger {
	return &models.Passenger{Name: "A", Age: 30, Gender: models.GenderMale}
}

func TestBookAllocatesLowestWindowSeat(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, testPassenger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Seat 4 is the lowest window seat (4 mod 10 = 4).
	if conf.SeatNumber != 4 {
		t.Errorf("Expected seat 4, got %d", conf.SeatNumber)
	}

	// Subsequent window bookings walk the remaining window seats in
	// ascending order.
	wantNext := []int{5, 9, 10, 14}
	for _, want := range wantNext {
		conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, testPassenger())
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if conf.SeatNumber != want {
			t.Errorf("Expected seat %d, got %d", want, conf.SeatNumber)
		}
	}
}

func TestBookRecordsPassengerOnSeat(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	passenger := testPassenger()
	conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, passenger)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	seats, err := svc.ListSeats(context.Background(), "T1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	seat := seats[conf.SeatNumber-1]
	if !seat.Booked {
		t.Fatalf("seat %d should be booked", conf.SeatNumber)
	}
	if seat.Passenger == nil || seat.Passenger.Name != passenger.Name ||
		seat.Passenger.Age != passenger.Age || seat.Passenger.Gender != passenger.Gender {
		t.Errorf("seat %d passenger = %+v, want %+v", conf.SeatNumber, seat.Passenger, passenger)
	}
}

func TestBookConfirmation(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryAisle, testPassenger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if conf.Reference == "" {
		t.Error("Expected a non-empty booking reference")
	}
	if len(conf.QRCode) == 0 {
		t.Error("Expected a QR code image")
	}
	if conf.TrainNumber != "T1" || conf.Category != models.SeatCategoryAisle {
		t.Errorf("confirmation carries wrong train/category: %+v", conf)
	}
}

func TestBookUnknownTrain(t *testing.T) {
	svc, seats := newTestBookingService("T1")

	before, _ := seats.GetSeats("T1")

	_, err := svc.Book(context.Background(), "T9", models.SeatCategoryWindow, testPassenger())
	if !errors.Is(err, models.ErrTrainNotFound) {
		t.Fatalf("Expected ErrTrainNotFound, got: %v", err)
	}

	after, _ := seats.GetSeats("T1")
	if !reflect.DeepEqual(before, after) {
		t.Error("booking against an unknown train must not mutate any seat")
	}
}

func TestBookInvalidPassenger(t *testing.T) {
	svc, seats := newTestBookingService("T1")

	tests := []struct {
		name      string
		passenger *models.Passenger
	}{
		{"nil passenger", nil},
		{"empty name", &models.Passenger{Name: "  ", Age: 30, Gender: models.GenderMale}},
		{"zero age", &models.Passenger{Name: "A", Age: 0, Gender: models.GenderMale}},
		{"negative age", &models.Passenger{Name: "A", Age: -1, Gender: models.GenderMale}},
		{"unknown gender", &models.Passenger{Name: "A", Age: 30, Gender: "Robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, tt.passenger)
			if !errors.Is(err, models.ErrInvalidPassenger) {
				t.Fatalf("Expected ErrInvalidPassenger, got: %v", err)
			}
		})
	}

	_, err := svc.Book(context.Background(), "T1", "Recliner", testPassenger())
	if !errors.Is(err, models.ErrInvalidCategory) {
		t.Fatalf("Expected ErrInvalidCategory, got: %v", err)
	}

	all, _ := seats.GetSeats("T1")
	for _, seat := range all {
		if seat.Booked {
			t.Fatalf("seat %d booked after failed validations", seat.SeatNumber)
		}
	}
}

func TestBookCategoryExhausted(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	// Ten middle seats per train (remainders 1 and 8).
	for i := 0; i < 10; i++ {
		if _, err := svc.Book(context.Background(), "T1", models.SeatCategoryMiddle, testPassenger()); err != nil {
			t.Fatalf("booking middle seat %d: %v", i+1, err)
		}
	}

	_, err := svc.Book(context.Background(), "T1", models.SeatCategoryMiddle, testPassenger())
	if !errors.Is(err, models.ErrNoAvailableSeat) {
		t.Fatalf("Expected ErrNoAvailableSeat, got: %v", err)
	}
}

func TestBookCancelRoundTrip(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	before, err := svc.ListSeats(context.Background(), "T1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, testPassenger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := svc.Cancel(context.Background(), "T1", conf.SeatNumber); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	after, err := svc.ListSeats(context.Background(), "T1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(before, after) {
		t.Error("book then cancel must restore the pre-booking seat state")
	}
}

func TestCancelIdempotent(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	before, _ := svc.ListSeats(context.Background(), "T1")

	// Seat 4 was never booked; cancelling it twice is still fine.
	for i := 0; i < 2; i++ {
		if err := svc.Cancel(context.Background(), "T1", 4); err != nil {
			t.Fatalf("Expected no error on cancel #%d, got: %v", i+1, err)
		}
	}

	after, _ := svc.ListSeats(context.Background(), "T1")
	if !reflect.DeepEqual(before, after) {
		t.Error("cancelling a free seat must not change state")
	}
}

func TestCancelErrors(t *testing.T) {
	svc, _ := newTestBookingService("T1")

	if err := svc.Cancel(context.Background(), "T9", 4); !errors.Is(err, models.ErrTrainNotFound) {
		t.Errorf("Expected ErrTrainNotFound, got: %v", err)
	}
	if err := svc.Cancel(context.Background(), "T1", 0); !errors.Is(err, models.ErrSeatNotFound) {
		t.Errorf("Expected ErrSeatNotFound for seat 0, got: %v", err)
	}
	if err := svc.Cancel(context.Background(), "T1", models.TrainCapacity+1); !errors.Is(err, models.ErrSeatNotFound) {
		t.Errorf("Expected ErrSeatNotFound for seat %d, got: %v", models.TrainCapacity+1, err)
	}
}

// TestConcurrentBookingNoDoubleAllocation drives more bookings than the
// category holds through the engine at once. Every claimed seat must be
// unique, winners and losers must add up, and the store must end with
// exactly as many booked seats as there were successes.
func TestConcurrentBookingNoDoubleAllocation(t *testing.T) {
	const (
		windowSeats = 20
		requests    = 24
	)

	svc, seats := newTestBookingService("T1")

	var wg sync.WaitGroup
	results := make(chan int, requests)
	failures := make(chan error, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conf, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, testPassenger())
			if err != nil {
				failures <- err
				return
			}
			results <- conf.SeatNumber
		}()
	}
	wg.Wait()
	close(results)
	close(failures)

	claimed := map[int]bool{}
	for seatNumber := range results {
		if claimed[seatNumber] {
			t.Fatalf("seat %d was claimed twice", seatNumber)
		}
		claimed[seatNumber] = true
	}

	failed := 0
	for err := range failures {
		if !errors.Is(err, models.ErrNoAvailableSeat) {
			t.Fatalf("Expected only ErrNoAvailableSeat failures, got: %v", err)
		}
		failed++
	}

	if len(claimed)+failed != requests {
		t.Fatalf("results do not add up: %d claimed + %d failed != %d", len(claimed), failed, requests)
	}
	if len(claimed) > windowSeats {
		t.Fatalf("claimed %d seats but only %d window seats exist", len(claimed), windowSeats)
	}

	booked := 0
	all, _ := seats.GetSeats("T1")
	for _, seat := range all {
		if seat.Booked {
			if seat.Category != models.SeatCategoryWindow {
				t.Errorf("non-window seat %d booked by a window request", seat.SeatNumber)
			}
			if !claimed[seat.SeatNumber] {
				t.Errorf("seat %d booked in store but reported to no caller", seat.SeatNumber)
			}
			booked++
		}
	}
	if booked != len(claimed) {
		t.Fatalf("store has %d booked seats, callers claimed %d", booked, len(claimed))
	}
}

func TestListSeatsServedFromCache(t *testing.T) {
	trains := newFakeTrainFinder("T1")
	seats := newFakeSeatStore("T1")
	c := newFakeCache()
	svc := NewBookingService(trains, seats, c)

	if _, err := svc.ListSeats(context.Background(), "T1"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok, _ := c.Has(context.Background(), seatCacheKey("T1")); !ok {
		t.Fatal("Expected the listing to be cached after the first read")
	}

	// Mutate the store behind the cache's back: the second read still
	// sees the cached snapshot.
	if err := seats.Claim("T1", 4, testPassenger()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	listed, _ := svc.ListSeats(context.Background(), "T1")
	if listed[3].Booked {
		t.Error("Expected cached (stale) listing, got a fresh read")
	}

	// A cancellation invalidates the entry, so the next read is fresh.
	if err := svc.Cancel(context.Background(), "T1", 10); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok, _ := c.Has(context.Background(), seatCacheKey("T1")); ok {
		t.Error("Expected cancel to invalidate the cached listing")
	}
}

// failingQRGenerator always fails, forcing the compensation path.
type failingQRGenerator struct{}

func (failingQRGenerator) Generate(data string) ([]byte, error) {
	return nil, errors.New("qr: encode failed")
}

func TestBookReleasesSeatOnConfirmationFailure(t *testing.T) {
	svc, store := newTestBookingService("T1")
	svc.confirmations = NewConfirmationFactoryWithQR(failingQRGenerator{})

	_, err := svc.Book(context.Background(), "T1", models.SeatCategoryWindow, testPassenger())
	if err == nil {
		t.Fatal("Expected an error when the confirmation cannot be issued")
	}

	// The compensating release must leave the inventory untouched.
	seats, err := store.GetSeats("T1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for _, seat := range seats {
		if seat.Booked {
			t.Errorf("Expected seat %d to be released after the confirmation failure", seat.SeatNumber)
		}
		if seat.Passenger != nil {
			t.Errorf("Expected no passenger left on seat %d", seat.SeatNumber)
		}
	}
}
