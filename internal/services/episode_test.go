package services

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/types"
)

func newEpisodeFixture() (EpisodeService, *episodeStore) {
	episodes := &episodeStore{}
	return NewEpisodeService(episodes, logger.NewNop()), episodes
}

func intPtr(i int) *int { return &i }

func TestEpisodeCreate_DefaultsPlotPoints(t *testing.T) {
	svc, _ := newEpisodeFixture()
	created, err := svc.Create(context.Background(), types.EpisodeInput{
		Title:  "Day 1",
		Date:   "2024-01-01",
		Rating: intPtr(7),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PlotPoints == nil || len(created.PlotPoints) != 0 {
		t.Fatalf("expected empty plot_points, got %#v", created.PlotPoints)
	}
	if created.SeasonID != nil {
		t.Fatalf("expected nil season_id")
	}
	if created.ID.IsZero() {
		t.Fatalf("expected a generated id")
	}
}

func TestEpisodeCreate_KeepsDanglingSeasonReference(t *testing.T) {
	svc, _ := newEpisodeFixture()
	dangling := bson.NewObjectID().Hex()
	created, err := svc.Create(context.Background(), types.EpisodeInput{
		Title:    "Day 1",
		Date:     "2024-01-01",
		Rating:   intPtr(7),
		SeasonID: strPtr(dangling),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.SeasonID == nil || *created.SeasonID != dangling {
		t.Fatalf("expected the weak reference to be stored as-is")
	}
}

func TestEpisodeList_Filters(t *testing.T) {
	svc, episodes := newEpisodeFixture()
	ctx := context.Background()
	sid := bson.NewObjectID().Hex()

	episodes.docs = []types.Episode{
		{ID: bson.NewObjectID(), Title: "In season", Date: "2024-01-01", Rating: 7, PlotPoints: []string{}, SeasonID: strPtr(sid)},
		{ID: bson.NewObjectID(), Title: "Unsorted", Date: "2024-01-02", Rating: 5, PlotPoints: []string{}},
	}

	all, err := svc.List(ctx, EpisodeFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(all))
	}

	bySeason, err := svc.List(ctx, EpisodeFilter{SeasonID: sid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bySeason) != 1 || bySeason[0].Title != "In season" {
		t.Fatalf("unexpected season filter result: %#v", bySeason)
	}

	unsorted, err := svc.List(ctx, EpisodeFilter{Unsorted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unsorted) != 1 || unsorted[0].Title != "Unsorted" {
		t.Fatalf("unexpected unsorted result: %#v", unsorted)
	}
}

func TestEpisodeList_UnsortedWinsOverSeasonID(t *testing.T) {
	svc, episodes := newEpisodeFixture()
	sid := bson.NewObjectID().Hex()

	episodes.docs = []types.Episode{
		{ID: bson.NewObjectID(), Title: "In season", Date: "2024-01-01", Rating: 7, PlotPoints: []string{}, SeasonID: strPtr(sid)},
		{ID: bson.NewObjectID(), Title: "Unsorted", Date: "2024-01-02", Rating: 5, PlotPoints: []string{}},
	}

	got, err := svc.List(context.Background(), EpisodeFilter{SeasonID: sid, Unsorted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Unsorted" {
		t.Fatalf("unsorted should take precedence, got %#v", got)
	}
}

func TestEpisodeUpdate_ReplacesWholeDocument(t *testing.T) {
	svc, _ := newEpisodeFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, types.EpisodeInput{
		Title:      "Day 1",
		Date:       "2024-01-01",
		Rating:     intPtr(7),
		PlotPoints: []string{"met a dog"},
	})

	updated, err := svc.Update(ctx, created.ID.Hex(), types.EpisodeInput{
		Title:  "Day 1, revised",
		Date:   "2024-01-01",
		Rating: intPtr(9),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("replace must keep the id")
	}
	if updated.Rating != 9 || updated.Title != "Day 1, revised" {
		t.Fatalf("unexpected document: %#v", updated)
	}
	if len(updated.PlotPoints) != 0 {
		t.Fatalf("full replace should drop old plot_points, got %#v", updated.PlotPoints)
	}
}

func TestEpisodeUpdateDelete_Errors(t *testing.T) {
	svc, _ := newEpisodeFixture()
	ctx := context.Background()
	in := types.EpisodeInput{Title: "x", Date: "2024-01-01", Rating: intPtr(5)}

	_, err := svc.Update(ctx, "bogus", in)
	assertStatus(t, err, http.StatusBadRequest)
	_, err = svc.Update(ctx, bson.NewObjectID().Hex(), in)
	assertStatus(t, err, http.StatusNotFound)

	assertStatus(t, svc.Delete(ctx, "bogus"), http.StatusBadRequest)
	assertStatus(t, svc.Delete(ctx, bson.NewObjectID().Hex()), http.StatusNotFound)
}

func TestEpisodeDelete_RemovesDocument(t *testing.T) {
	svc, episodes := newEpisodeFixture()
	ctx := context.Background()

	created, _ := svc.Create(ctx, types.EpisodeInput{Title: "Day 1", Date: "2024-01-01", Rating: intPtr(7)})
	if err := svc.Delete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(episodes.docs) != 0 {
		t.Fatalf("expected store to be empty")
	}
}
