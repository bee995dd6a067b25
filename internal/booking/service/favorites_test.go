package service

import (
	"context"
	"errors"
	"testing"

	"homehive/pkg/logger"
	"homehive/pkg/model"
)

type fakeFavoriteAPI struct {
	remote  map[string]bool
	addErr  error
	rmErr   error
	listErr error
}

func (f *fakeFavoriteAPI) GetAll(_ context.Context) ([]*model.Property, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*model.Property
	for id := range f.remote {
		out = append(out, &model.Property{ID: id})
	}
	return out, nil
}

func (f *fakeFavoriteAPI) Add(_ context.Context, propertyID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.remote[propertyID] = true
	return nil
}

func (f *fakeFavoriteAPI) Remove(_ context.Context, propertyID string) error {
	if f.rmErr != nil {
		return f.rmErr
	}
	delete(f.remote, propertyID)
	return nil
}

func newTestFavorites(api *fakeFavoriteAPI) *FavoriteSet {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	return NewFavoriteSet(api, log)
}

func TestFavoriteToggle(t *testing.T) {
	api := &fakeFavoriteAPI{remote: map[string]bool{}}
	favorites := newTestFavorites(api)

	nowFavorite, err := favorites.Toggle(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !nowFavorite || !favorites.Contains("prop-1") {
		t.Error("first toggle should add the favorite")
	}

	nowFavorite, err = favorites.Toggle(context.Background(), "prop-1")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if nowFavorite || favorites.Contains("prop-1") {
		t.Error("second toggle should remove the favorite")
	}
}

func TestFavoriteToggleRollsBackOnFailure(t *testing.T) {
	api := &fakeFavoriteAPI{remote: map[string]bool{}, addErr: errors.New("boom")}
	favorites := newTestFavorites(api)

	nowFavorite, err := favorites.Toggle(context.Background(), "prop-1")
	if err == nil {
		t.Fatal("Toggle() succeeded, want error")
	}
	if nowFavorite || favorites.Contains("prop-1") {
		t.Error("failed add should roll back the optimistic flip")
	}
}

func TestFavoriteReloadReconciles(t *testing.T) {
	api := &fakeFavoriteAPI{remote: map[string]bool{"prop-1": true, "prop-2": true}}
	favorites := newTestFavorites(api)

	if err := favorites.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if !favorites.Contains("prop-1") || !favorites.Contains("prop-2") {
		t.Error("reload should mirror the backend's favorites")
	}
	if favorites.Contains("prop-3") {
		t.Error("reload should not invent favorites")
	}
}
