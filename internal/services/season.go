package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/yungbote/lifestory-backend/internal/platform/apierr"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/repos"
	"github.com/yungbote/lifestory-backend/internal/types"
)

type SeasonService interface {
	List(ctx context.Context) ([]types.Season, error)
	Create(ctx context.Context, in types.SeasonInput) (*types.Season, error)
	Update(ctx context.Context, id string, in types.SeasonInput) (*types.Season, error)
	Delete(ctx context.Context, id string) error
}

type seasonService struct {
	seasons  repos.Repository[types.Season]
	episodes repos.Repository[types.Episode]
	log      *logger.Logger
}

func NewSeasonService(seasons repos.Repository[types.Season], episodes repos.Repository[types.Episode], baseLog *logger.Logger) SeasonService {
	return &seasonService{
		seasons:  seasons,
		episodes: episodes,
		log:      baseLog.With("service", "SeasonService"),
	}
}

func (s *seasonService) List(ctx context.Context) ([]types.Season, error) {
	return s.seasons.FindMany(ctx, bson.M{})
}

func (s *seasonService) Create(ctx context.Context, in types.SeasonInput) (*types.Season, error) {
	doc := in.Document()
	if doc.IsActive {
		if err := s.deactivateAll(ctx); err != nil {
			return nil, err
		}
	}
	id, err := s.seasons.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

func (s *seasonService) Update(ctx context.Context, id string, in types.SeasonInput) (*types.Season, error) {
	oid, err := repos.ParseID("season", id)
	if err != nil {
		return nil, err
	}
	if in.Active() {
		if err := s.deactivateAll(ctx); err != nil {
			return nil, err
		}
	}
	replaced, err := s.seasons.ReplaceByID(ctx, oid, in.Document())
	if err != nil {
		return nil, err
	}
	if replaced == nil {
		return nil, apierr.NotFound("season")
	}
	return replaced, nil
}

func (s *seasonService) Delete(ctx context.Context, id string) error {
	oid, err := repos.ParseID("season", id)
	if err != nil {
		return err
	}
	deleted, err := s.seasons.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apierr.NotFound("season")
	}
	// Episodes keep existing; they just become unsorted.
	orphaned, err := s.episodes.UpdateMany(ctx,
		bson.M{"season_id": oid.Hex()},
		bson.M{"$set": bson.M{"season_id": nil}},
	)
	if err != nil {
		s.log.Error("Season deleted but episode cleanup failed", "season_id", oid.Hex(), "error", err)
		return err
	}
	if orphaned > 0 {
		s.log.Info("Orphaned episodes after season delete", "season_id", oid.Hex(), "count", orphaned)
	}
	return nil
}

// deactivateAll clears is_active on every season. Not atomic with the
// write that follows it: a concurrent active write can slip in between
// and leave two active seasons.
func (s *seasonService) deactivateAll(ctx context.Context) error {
	_, err := s.seasons.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"is_active": false}})
	return err
}
