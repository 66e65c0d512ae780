package session

import (
	"sync"

	"github.com/globetrotter/globetrotter/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is a user's per-session UI state. It is ephemeral and scoped to the
// signed-in user; it never touches the database.
type State struct {
	ActiveTripID string
	Theme        string
	SearchQuery  string
}

func defaultState() State {
	return State{Theme: ThemeDark}
}

// Store keeps session state per user. Deleting a trip elsewhere in the app
// clears it as the active trip here, so the store subscribes to the bus.
type Store struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewStore(bus *event_bus.EventBus) *Store {
	s := &Store{states: map[string]State{}}
	event_bus.SubscribeTyped(bus, event_bus.TripDeletedEvent, func(e event_bus.EventT[event_bus.TripDeleted]) error {
		s.clearActiveTrip(e.Data.UserID, e.Data.TripID)
		return nil
	})
	return s
}

func (s *Store) Get(userID string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.states[userID]; ok {
		return state
	}
	return defaultState()
}

func (s *Store) SetActiveTrip(userID, tripID string) State {
	return s.update(userID, func(state *State) {
		state.ActiveTripID = tripID
	})
}

func (s *Store) ClearActiveTrip(userID string) State {
	return s.update(userID, func(state *State) {
		state.ActiveTripID = ""
	})
}

// ToggleTheme flips between dark and light.
func (s *Store) ToggleTheme(userID string) State {
	return s.update(userID, func(state *State) {
		if state.Theme == ThemeDark {
			state.Theme = ThemeLight
		} else {
			state.Theme = ThemeDark
		}
	})
}

func (s *Store) SetSearchQuery(userID, query string) State {
	return s.update(userID, func(state *State) {
		state.SearchQuery = query
	})
}

// Clear drops the user's session state entirely, used on logout.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

func (s *Store) update(userID string, mutate func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok {
		state = defaultState()
	}
	mutate(&state)
	s.states[userID] = state
	return state
}

func (s *Store) clearActiveTrip(userID, tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok || state.ActiveTripID != tripID {
		return
	}
	log.Debugf("clearing active trip %s for user %s", tripID, userID)
	state.ActiveTripID = ""
	s.states[userID] = state
}
