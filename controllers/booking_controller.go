package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

type createBookingRequest struct {
	RoomNumber      string `json:"room_number" binding:"required"`
	Nights          int    `json:"nights" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking books a room and returns the invoice path.
// (POST /api/bookings)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.GuestName == "" {
		utils.JSONError(c, http.StatusBadRequest, "Guest name is required.")
		return
	}
	if req.Nights <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Nights must be greater than zero.")
		return
	}

	result, err := bc.bookings.Book(req.RoomNumber, req.Nights, services.GuestDetails{
		GuestName:       req.GuestName,
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	})
	if err != nil {
		bc.writeBookingError(c, req.RoomNumber, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, result)
}

// CheckoutRoom settles the bill, writes the receipt and releases the
// room. (POST /api/bookings/:number/checkout)
func (bc *BookingController) CheckoutRoom(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	result, err := bc.bookings.Checkout(number)
	if err != nil {
		bc.writeBookingError(c, number, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetQuote returns the current stay total for an occupied room.
// (GET /api/bookings/:number/quote)
func (bc *BookingController) GetQuote(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	total, err := bc.bookings.Quote(number)
	if err != nil {
		bc.writeBookingError(c, number, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"room_number": number, "total_price": total})
}

func (bc *BookingController) writeBookingError(c *gin.Context, number string, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Room "+number+" not found.")
	case errors.Is(err, services.ErrRoomOccupied):
		utils.JSONError(c, http.StatusConflict, "Room "+number+" is no longer available.")
	case errors.Is(err, services.ErrRoomNotOccupied):
		utils.JSONError(c, http.StatusConflict, "Room "+number+" is not occupied.")
	default:
		log.Printf("❌ Booking operation failed for room %s: %v", number, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal error")
	}
}
