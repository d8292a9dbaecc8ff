package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/models"
	"hotel-frontdesk/repository"
	"hotel-frontdesk/services"
)

func newRoomTestRouter(t *testing.T) (*gin.Engine, *services.InventoryService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewRoomStore(filepath.Join(t.TempDir(), "rooms.json"))
	inv := services.NewInventoryService(store)
	inv.Load()

	rc := NewRoomController(inv)
	r := gin.New()
	r.GET("/api/rooms", rc.GetRooms)
	r.POST("/api/rooms", rc.CreateRoom)
	r.GET("/api/rooms/:number", rc.GetRoomByNumber)
	r.DELETE("/api/rooms/:number", rc.DeleteRoom)
	r.GET("/api/statistics", rc.GetStatistics)
	return r, inv
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateRoom_Handler_Success(t *testing.T) {
	r, inv := newRoomTestRouter(t)

	body := `{"room_type":"Suite","room_number":"301","price":250000,"amenities":["Piano"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	room, ok := inv.GetRoomByNumber("301")
	require.True(t, ok)
	assert.Equal(t, models.TierSuite, room.RoomType)
	assert.Equal(t, 4, room.MaxOccupancy)
	assert.Contains(t, room.Amenities, "Piano")
}

func TestCreateRoom_Handler_Validation(t *testing.T) {
	r, _ := newRoomTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"room_number":"101"}`},
		{"unknown tier", `{"room_type":"Penthouse","room_number":"101","price":100000}`},
		{"negative price", `{"room_type":"Standard","room_number":"101","price":-5}`},
		{"blank number", `{"room_type":"Standard","room_number":"   ","price":100000}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetRooms_Handler_AvailableFilter(t *testing.T) {
	r, inv := newRoomTestRouter(t)
	inv.AddRoom(models.TierStandard, "101", 100000, nil)
	inv.AddRoom(models.TierSuite, "301", 250000, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms?available=true&type=Suite", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rooms []models.Room
	envelope := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(envelope["data"], &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "301", rooms[0].RoomNumber)
}

func TestDeleteRoom_Handler(t *testing.T) {
	r, inv := newRoomTestRouter(t)
	inv.AddRoom(models.TierStandard, "101", 100000, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/rooms/101", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, inv.Rooms())

	req = httptest.NewRequest(http.MethodDelete, "/api/rooms/101", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStatistics_Handler(t *testing.T) {
	r, _ := newRoomTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.BookingStatistics
	envelope := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(envelope["data"], &stats))
	assert.Zero(t, stats.TotalRooms)
	assert.Zero(t, stats.OccupancyRate)
}
