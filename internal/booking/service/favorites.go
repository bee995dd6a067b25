package service

import (
	"context"
	"sync"

	"homehive/pkg/logger"
	"homehive/pkg/model"
)

// FavoriteAPI is the slice of the API facade the favorite set needs.
type FavoriteAPI interface {
	GetAll(ctx context.Context) ([]*model.Property, error)
	Add(ctx context.Context, propertyID string) error
	Remove(ctx context.Context, propertyID string) error
}

// FavoriteSet keeps the local view of the user's favorites. Toggles are
// optimistic: membership flips locally first and rolls back when the call
// fails; Reload reconciles with the backend.
type FavoriteSet struct {
	api FavoriteAPI
	log *logger.Logger

	mu  sync.Mutex
	ids map[string]bool
}

func NewFavoriteSet(api FavoriteAPI, log *logger.Logger) *FavoriteSet {
	return &FavoriteSet{
		api: api,
		log: log,
		ids: map[string]bool{},
	}
}

func (s *FavoriteSet) Contains(propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[propertyID]
}

// Toggle flips membership and reports the new state.
func (s *FavoriteSet) Toggle(ctx context.Context, propertyID string) (bool, error) {
	s.mu.Lock()
	wasFavorite := s.ids[propertyID]
	if wasFavorite {
		delete(s.ids, propertyID)
	} else {
		s.ids[propertyID] = true
	}
	s.mu.Unlock()

	var err error
	if wasFavorite {
		err = s.api.Remove(ctx, propertyID)
	} else {
		err = s.api.Add(ctx, propertyID)
	}

	if err != nil {
		// Roll the optimistic flip back.
		s.mu.Lock()
		if wasFavorite {
			s.ids[propertyID] = true
		} else {
			delete(s.ids, propertyID)
		}
		s.mu.Unlock()
		s.log.Warn("Favorite toggle failed, rolled back", "property_id", propertyID, "error", err)
		return wasFavorite, err
	}

	return !wasFavorite, nil
}

// Reload replaces the local view with the backend's.
func (s *FavoriteSet) Reload(ctx context.Context) error {
	favorites, err := s.api.GetAll(ctx)
	if err != nil {
		return err
	}

	ids := make(map[string]bool, len(favorites))
	for _, property := range favorites {
		ids[property.ID] = true
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()
	return nil
}
