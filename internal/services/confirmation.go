// -----------------------------------------------------------------------------
// Booking Confirmation
// -----------------------------------------------------------------------------
// Every successful booking gets a unique reference and a QR code image
// encoding it, for the caller's display layer to render or print.
// -----------------------------------------------------------------------------

package services

import (
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Atomicx56/Railway-Resevration/internal/models"
)

// QRCodeGenerator produces QR code images for confirmation payloads.
type QRCodeGenerator interface {
	Generate(data string) ([]byte, error)
}

// DefaultQRCodeGenerator implements QRCodeGenerator with go-qrcode.
type DefaultQRCodeGenerator struct{}

func (g *DefaultQRCodeGenerator) Generate(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}

// BookingConfirmation is the result of a successful booking.
type BookingConfirmation struct {
	Reference   string              `json:"reference"`
	TrainNumber string              `json:"train_number"`
	SeatNumber  int                 `json:"seat_number"`
	Category    models.SeatCategory `json:"category"`
	Passenger   *models.Passenger   `json:"passenger"`
	QRCode      []byte              `json:"qr_code"` // PNG image
}

// ConfirmationFactory builds booking confirmations.
type ConfirmationFactory struct {
	qrGenerator QRCodeGenerator
}

func NewConfirmationFactory() *ConfirmationFactory {
	return &ConfirmationFactory{qrGenerator: &DefaultQRCodeGenerator{}}
}

// NewConfirmationFactoryWithQR creates a factory with a custom QR
// generator (used in tests).
func NewConfirmationFactoryWithQR(qrGenerator QRCodeGenerator) *ConfirmationFactory {
	return &ConfirmationFactory{qrGenerator: qrGenerator}
}

// New builds a confirmation for a claimed seat.
func (f *ConfirmationFactory) New(trainNumber string, seatNumber int, category models.SeatCategory, passenger *models.Passenger) (*BookingConfirmation, error) {
	reference := uuid.NewString()

	payload := fmt.Sprintf("RAIL|%s|%s|%d", reference, trainNumber, seatNumber)
	image, err := f.qrGenerator.Generate(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &BookingConfirmation{
		Reference:   reference,
		TrainNumber: trainNumber,
		SeatNumber:  seatNumber,
		Category:    category,
		Passenger:   passenger,
		QRCode:      image,
	}, nil
}
