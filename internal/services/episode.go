package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/yungbote/lifestory-backend/internal/platform/apierr"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
	"github.com/yungbote/lifestory-backend/internal/repos"
	"github.com/yungbote/lifestory-backend/internal/types"
)

// EpisodeFilter narrows a listing. Unsorted wins over SeasonID when
// both are supplied; an empty SeasonID means no season filter.
type EpisodeFilter struct {
	SeasonID string
	Unsorted bool
}

type EpisodeService interface {
	List(ctx context.Context, f EpisodeFilter) ([]types.Episode, error)
	Create(ctx context.Context, in types.EpisodeInput) (*types.Episode, error)
	Update(ctx context.Context, id string, in types.EpisodeInput) (*types.Episode, error)
	Delete(ctx context.Context, id string) error
}

type episodeService struct {
	episodes repos.Repository[types.Episode]
	log      *logger.Logger
}

func NewEpisodeService(episodes repos.Repository[types.Episode], baseLog *logger.Logger) EpisodeService {
	return &episodeService{
		episodes: episodes,
		log:      baseLog.With("service", "EpisodeService"),
	}
}

func (s *episodeService) List(ctx context.Context, f EpisodeFilter) ([]types.Episode, error) {
	filter := bson.M{}
	if f.Unsorted {
		filter["season_id"] = nil
	} else if f.SeasonID != "" {
		filter["season_id"] = f.SeasonID
	}
	return s.episodes.FindMany(ctx, filter)
}

func (s *episodeService) Create(ctx context.Context, in types.EpisodeInput) (*types.Episode, error) {
	// season_id is a weak reference: it may point at a season that no
	// longer exists and is stored as-is.
	doc := in.Document()
	id, err := s.episodes.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	return doc, nil
}

func (s *episodeService) Update(ctx context.Context, id string, in types.EpisodeInput) (*types.Episode, error) {
	oid, err := repos.ParseID("episode", id)
	if err != nil {
		return nil, err
	}
	replaced, err := s.episodes.ReplaceByID(ctx, oid, in.Document())
	if err != nil {
		return nil, err
	}
	if replaced == nil {
		return nil, apierr.NotFound("episode")
	}
	return replaced, nil
}

func (s *episodeService) Delete(ctx context.Context, id string) error {
	oid, err := repos.ParseID("episode", id)
	if err != nil {
		return err
	}
	deleted, err := s.episodes.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apierr.NotFound("episode")
	}
	return nil
}
