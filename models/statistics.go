package models

// BookingStatistics is the aggregate snapshot shown on the admin panel.
//
// TotalRevenue sums rate x nights over occupied rooms only and does NOT
// include tier surcharges; per-room invoices do. The divergence matches
// the reporting behavior this system replaces and is kept on purpose.
type BookingStatistics struct {
	TotalRooms     int     `json:"total_rooms"`
	OccupiedRooms  int     `json:"occupied_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	TotalRevenue   float64 `json:"total_revenue"`
}
