package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomController struct {
	inventory *services.InventoryService
}

func NewRoomController(inventory *services.InventoryService) *RoomController {
	return &RoomController{inventory: inventory}
}

type createRoomRequest struct {
	RoomType   string   `json:"room_type" binding:"required"`
	RoomNumber string   `json:"room_number" binding:"required"`
	Price      float64  `json:"price" binding:"required"`
	Amenities  []string `json:"amenities"`
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------

// GetRooms lists the registry; ?available=true narrows to bookable
// rooms and ?type=Suite filters by tier.
func (rc *RoomController) GetRooms(c *gin.Context) {
	if c.Query("available") == "true" {
		tier := models.Tier("")
		if typeFilter := strings.TrimSpace(c.Query("type")); typeFilter != "" {
			parsed, err := models.ParseTier(typeFilter)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, err.Error())
				return
			}
			tier = parsed
		}
		utils.JSONSuccess(c, http.StatusOK, rc.inventory.AvailableRooms(tier))
		return
	}

	utils.JSONSuccess(c, http.StatusOK, rc.inventory.Rooms())
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	if req.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room Number is required.")
		return
	}
	if req.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price must be greater than zero.")
		return
	}

	tier, err := models.ParseTier(req.RoomType)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	extras := make([]string, 0, len(req.Amenities))
	for _, amenity := range req.Amenities {
		if a := strings.TrimSpace(amenity); a != "" {
			extras = append(extras, a)
		}
	}

	room := rc.inventory.AddRoom(tier, req.RoomNumber, req.Price, extras)
	log.Printf("✅ Room %s (%s) added", room.RoomNumber, room.RoomType)
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Get Room (GET /api/rooms/:number)
// ----------------------------------------------------

func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	room, ok := rc.inventory.GetRoomByNumber(number)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %s not found.", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:number)
// ----------------------------------------------------

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	removed := rc.inventory.RemoveRoom(number)
	if removed == 0 {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %s not found.", number))
		return
	}

	log.Printf("✅ Room %s removed (%d record(s))", number, removed)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": removed})
}

// ----------------------------------------------------
// 5. Statistics (GET /api/statistics)
// ----------------------------------------------------

func (rc *RoomController) GetStatistics(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.inventory.Statistics())
}
