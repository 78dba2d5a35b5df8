package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/yungbote/lifestory-backend/internal/types"
)

// In-memory stand-ins for the mongo repositories. They understand only
// the filters and updates the services actually issue.

type seasonStore struct {
	docs []types.Season
}

func (s *seasonStore) Insert(_ context.Context, doc *types.Season) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	stored := *doc
	stored.ID = id
	s.docs = append(s.docs, stored)
	return id, nil
}

func (s *seasonStore) FindMany(_ context.Context, _ bson.M) ([]types.Season, error) {
	out := []types.Season{}
	out = append(out, s.docs...)
	return out, nil
}

func (s *seasonStore) ReplaceByID(_ context.Context, id bson.ObjectID, doc *types.Season) (*types.Season, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			stored := *doc
			stored.ID = id
			s.docs[i] = stored
			return &stored, nil
		}
	}
	return nil, nil
}

func (s *seasonStore) DeleteByID(_ context.Context, id bson.ObjectID) (bool, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *seasonStore) UpdateMany(_ context.Context, _ bson.M, update bson.M) (int64, error) {
	set, _ := update["$set"].(bson.M)
	active, ok := set["is_active"].(bool)
	if !ok {
		return 0, nil
	}
	var n int64
	for i := range s.docs {
		if s.docs[i].IsActive != active {
			s.docs[i].IsActive = active
			n++
		}
	}
	return n, nil
}

type episodeStore struct {
	docs []types.Episode
}

func (s *episodeStore) Insert(_ context.Context, doc *types.Episode) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	stored := *doc
	stored.ID = id
	s.docs = append(s.docs, stored)
	return id, nil
}

func (s *episodeStore) FindMany(_ context.Context, filter bson.M) ([]types.Episode, error) {
	out := []types.Episode{}
	for _, d := range s.docs {
		if matchEpisode(d, filter) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *episodeStore) ReplaceByID(_ context.Context, id bson.ObjectID, doc *types.Episode) (*types.Episode, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			stored := *doc
			stored.ID = id
			s.docs[i] = stored
			return &stored, nil
		}
	}
	return nil, nil
}

func (s *episodeStore) DeleteByID(_ context.Context, id bson.ObjectID) (bool, error) {
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *episodeStore) UpdateMany(_ context.Context, filter, update bson.M) (int64, error) {
	set, _ := update["$set"].(bson.M)
	if _, present := set["season_id"]; !present {
		return 0, nil
	}
	var n int64
	for i := range s.docs {
		if matchEpisode(s.docs[i], filter) {
			s.docs[i].SeasonID = nil
			n++
		}
	}
	return n, nil
}

func matchEpisode(d types.Episode, filter bson.M) bool {
	v, ok := filter["season_id"]
	if !ok {
		return true
	}
	if v == nil {
		return d.SeasonID == nil
	}
	sid, _ := v.(string)
	return d.SeasonID != nil && *d.SeasonID == sid
}
