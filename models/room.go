package models

import "time"

// Room is one physical room plus its current occupancy state.
// JSON tags are the persisted field names; the whole struct is written
// to the rooms document as-is.
//
// Invariant: while IsAvailable is true, CheckinTime is nil, Nights is 0
// and GuestName is empty; while false, all three are populated.
type Room struct {
	RoomNumber   string     `json:"room_number"`
	RoomType     Tier       `json:"room_type"`
	Price        float64    `json:"price"`
	Amenities    []string   `json:"amenities"`
	MaxOccupancy int        `json:"max_occupancy"`
	IsAvailable  bool       `json:"is_available"`
	CheckinTime  *Timestamp `json:"checkin_time"`
	Nights       int        `json:"nights"`
	GuestName    string     `json:"guest_name"`
}

// NewRoom builds an available room for the given tier. The tier's seed
// amenities come first, admin-entered extras are appended after them.
func NewRoom(tier Tier, number string, price float64, extraAmenities []string) *Room {
	amenities := append([]string{}, tier.SeedAmenities()...)
	amenities = append(amenities, extraAmenities...)

	return &Room{
		RoomNumber:   number,
		RoomType:     tier,
		Price:        price,
		Amenities:    amenities,
		MaxOccupancy: tier.MaxOccupancy(),
		IsAvailable:  true,
	}
}

// Book moves the room to occupied. It reports false without mutating
// anything when the room is already taken. Booking a suite appends the
// welcome items to the amenity list; they are not removed on release.
func (r *Room) Book(nights int, guestName string) bool {
	if !r.IsAvailable {
		return false
	}

	r.IsAvailable = false
	r.CheckinTime = NewTimestamp(time.Now())
	r.Nights = nights
	r.GuestName = guestName

	if r.RoomType == TierSuite {
		r.Amenities = append(r.Amenities, suiteWelcomeAmenities...)
	}
	return true
}

// Release resets the occupancy fields. Calling it on an available room
// is a harmless no-op.
func (r *Room) Release() {
	r.IsAvailable = true
	r.CheckinTime = nil
	r.Nights = 0
	r.GuestName = ""
}

// CalculatePrice returns the stay total: nightly rate times nights,
// adjusted by the tier surcharge rule.
func (r *Room) CalculatePrice() float64 {
	return r.RoomType.AdjustPrice(r.Price * float64(r.Nights))
}

// BasePrice is the surcharge-free amount, used for the charges breakdown
// on invoices and for the aggregate revenue statistic.
func (r *Room) BasePrice() float64 {
	return r.Price * float64(r.Nights)
}

// Clone returns a deep copy, used to hand snapshots past the registry
// lock without aliasing the amenity slice.
func (r *Room) Clone() *Room {
	cp := *r
	cp.Amenities = append([]string{}, r.Amenities...)
	if r.CheckinTime != nil {
		ct := *r.CheckinTime
		cp.CheckinTime = &ct
	}
	return &cp
}
