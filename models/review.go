package models

import "time"

// Review is a single user review of a thing. UserName is the reviewer's
// login, joined in at query time; the hash or any other credential data of
// the reviewer is never part of a review row.
type Review struct {
	ID          int64     `json:"id"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	ThingID     int64     `json:"thing_id"`
	UserName    string    `json:"user_name"`
	DateCreated time.Time `json:"date_created"`
}

func (r Review) TableName() string {
	return "thingful_reviews"
}
