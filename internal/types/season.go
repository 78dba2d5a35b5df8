package types

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Season is a named, time-bounded grouping of episodes. At most one
// season in the collection may be active at a time; writes that set
// is_active enforce that by deactivating every other season first.
type Season struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description *string       `bson:"description" json:"description"`
	StartDate   *string       `bson:"start_date" json:"start_date"`
	EndDate     *string       `bson:"end_date" json:"end_date"`
	IsActive    bool          `bson:"is_active" json:"is_active"`
}

// SeasonInput is the request body for season create/replace. Dates are
// ISO calendar dates (YYYY-MM-DD). IsActive defaults to true when the
// field is absent.
type SeasonInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"is_active"`
}

// Active resolves the is_active default.
func (in SeasonInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

// Document builds the stored shape from the input. The id is left
// empty; the store assigns it on insert.
func (in SeasonInput) Document() *Season {
	return &Season{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    in.Active(),
	}
}
