package types

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Episode is a single dated journal entry. SeasonID is a weak
// reference: it is never checked against the season collection and a
// null value means the episode is unsorted.
type Episode struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string        `bson:"title" json:"title"`
	Date       string        `bson:"date" json:"date"`
	Rating     int           `bson:"rating" json:"rating"`
	PlotPoints []string      `bson:"plot_points" json:"plot_points"`
	SeasonID   *string       `bson:"season_id" json:"season_id"`
}

// EpisodeInput is the request body for episode create/replace. Rating
// is a pointer so that an absent field fails "required" instead of
// silently binding to zero.
type EpisodeInput struct {
	Title      string   `json:"title" binding:"required"`
	Date       string   `json:"date" binding:"required,datetime=2006-01-02"`
	Rating     *int     `json:"rating" binding:"required,min=1,max=10"`
	PlotPoints []string `json:"plot_points"`
	SeasonID   *string  `json:"season_id"`
}

// Document builds the stored shape from the input. PlotPoints is
// always non-nil so it serializes as [] rather than null.
func (in EpisodeInput) Document() *Episode {
	points := in.PlotPoints
	if points == nil {
		points = []string{}
	}
	return &Episode{
		Title:      in.Title,
		Date:       in.Date,
		Rating:     *in.Rating,
		PlotPoints: points,
		SeasonID:   in.SeasonID,
	}
}
