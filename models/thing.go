package models

import "time"

// Thing is a reviewable item listed by the service.
type Thing struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	Content string `json:"content"`

	// AverageReviewRating is computed at query time from the thing's reviews;
	// zero when the thing has no reviews yet.
	AverageReviewRating float64 `json:"average_review_rating"`

	DateCreated time.Time `json:"date_created"`
}

func (t Thing) TableName() string {
	return "thingful_things"
}
