package services

import (
	"fmt"
	"log"
	"time"

	"hotel-frontdesk/models"
)

// BookingService drives the two room transitions and the paperwork
// around them. Transitions run under the registry write lock so the
// availability check and the state change are one atomic step.
type BookingService struct {
	inventory *InventoryService
	documents *DocumentService
}

func NewBookingService(inventory *InventoryService, documents *DocumentService) *BookingService {
	return &BookingService{inventory: inventory, documents: documents}
}

// BookingResult reports a completed booking back to the caller.
type BookingResult struct {
	Room        *models.Room `json:"room"`
	TotalPrice  float64      `json:"total_price"`
	InvoicePath string       `json:"invoice_path"`
}

// CheckoutResult reports a completed checkout.
type CheckoutResult struct {
	RoomNumber   string  `json:"room_number"`
	GuestName    string  `json:"guest_name"`
	Nights       int     `json:"nights"`
	TotalAmount  float64 `json:"total_amount"`
	ReceiptPath  string  `json:"receipt_path"`
	CheckoutTime string  `json:"checkout_time"`
}

// Book places a guest in the room and generates the invoice. An
// occupied room yields ErrRoomOccupied with nothing mutated and no
// invoice written. Input validation (nights > 0, non-empty guest name)
// belongs to the controller; this layer only owns the domain conflict.
func (s *BookingService) Book(roomNumber string, nights int, guest GuestDetails) (*BookingResult, error) {
	var result *BookingResult

	err := s.inventory.withRoom(roomNumber, func(room *models.Room) error {
		if !room.Book(nights, guest.GuestName) {
			return ErrRoomOccupied
		}

		snapshot := room.Clone()
		invoicePath, err := s.documents.GenerateInvoice(snapshot, guest)
		if err != nil {
			// No invoice, no booking.
			room.Release()
			return fmt.Errorf("generate invoice: %w", err)
		}

		result = &BookingResult{
			Room:        snapshot,
			TotalPrice:  snapshot.CalculatePrice(),
			InvoicePath: invoicePath,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Room %s booked for %q, %d night(s)", roomNumber, guest.GuestName, nights)
	return result, nil
}

// Checkout computes the final bill, writes the receipt and only then
// releases the room, since release wipes the nights and guest data the
// receipt is built from.
func (s *BookingService) Checkout(roomNumber string) (*CheckoutResult, error) {
	var result *CheckoutResult

	err := s.inventory.withRoom(roomNumber, func(room *models.Room) error {
		if room.IsAvailable {
			return ErrRoomNotOccupied
		}

		checkoutTime := time.Now()
		total := room.CalculatePrice()

		receiptPath, err := s.documents.GenerateReceipt(room.Clone(), checkoutTime, total)
		if err != nil {
			return fmt.Errorf("generate receipt: %w", err)
		}

		result = &CheckoutResult{
			RoomNumber:   room.RoomNumber,
			GuestName:    room.GuestName,
			Nights:       room.Nights,
			TotalAmount:  total,
			ReceiptPath:  receiptPath,
			CheckoutTime: checkoutTime.Format(models.TimestampLayout),
		}
		room.Release()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Room %s checked out, guest %q", result.RoomNumber, result.GuestName)
	return result, nil
}

// Quote returns the current stay total for an occupied room without
// touching its state.
func (s *BookingService) Quote(roomNumber string) (float64, error) {
	room, ok := s.inventory.GetRoomByNumber(roomNumber)
	if !ok {
		return 0, ErrRoomNotFound
	}
	if room.IsAvailable {
		return 0, ErrRoomNotOccupied
	}
	return room.CalculatePrice(), nil
}
