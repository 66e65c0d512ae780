package event_bus

const (
	// TripDeletedEvent is published after a trip has been removed from its
	// owning collection. Session state listens for it to drop a dangling
	// active-trip reference.
	TripDeletedEvent EventType = "trip.deleted"

	// TripCreatedEvent is published after a new trip has been stored.
	TripCreatedEvent EventType = "trip.created"
)

type TripDeleted struct {
	TripID string
	UserID string
}

type TripCreated struct {
	TripID string
	UserID string
	Name   string
}
