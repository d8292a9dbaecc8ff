package services

import "errors"

var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomOccupied    = errors.New("room_not_available")
	ErrRoomNotOccupied = errors.New("room_not_occupied")
)
