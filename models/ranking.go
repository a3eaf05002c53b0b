package models

import "time"

// PlaceholderImageURL is rendered in place of Ranking.ImageURL when the
// record has no image of its own.
const PlaceholderImageURL = "/placeholder.svg?height=40&width=40"

// Ranking represents one influencer's tracked profile and metadata.
// Records are created and mutated by admins and consumed read-only by the
// public ranking view, ordered by Followers descending.
type Ranking struct {
	// ID is the store-assigned unique identifier. Immutable after creation.
	ID int64 `json:"id"`

	// AccountName is the influencer's handle. Required; expected to begin
	// with "@" (enforced at the form layer, not by the store).
	AccountName string `json:"accountName"`

	// ProfileURL is an optional link to the influencer's profile page.
	// When present it is expected to begin with "http".
	ProfileURL string `json:"profileUrl"`

	// Followers is the tracked follower count. The form layer requires a
	// positive value on submission.
	Followers int64 `json:"followers"`

	// ImageURL is an optional avatar link. Empty means "use the placeholder".
	ImageURL string `json:"imageUrl"`

	// Area is optional free text describing the influencer's region.
	Area string `json:"area"`

	// StoreName is optional free text naming the affiliated store.
	StoreName string `json:"storeName"`

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DisplayImageURL returns ImageURL or the placeholder when the record
// carries no image.
func (r Ranking) DisplayImageURL() string {
	if r.ImageURL == "" {
		return PlaceholderImageURL
	}
	return r.ImageURL
}

// TableName returns the name of the database table
// associated with the Ranking model.
func (r Ranking) TableName() string {
	return "rankings"
}

// RankingDraft is the typed form draft for creating or editing a Ranking.
// Values arrive as submitted strings and are coerced exactly once at the
// input boundary; no implicit coercion happens downstream.
type RankingDraft struct {
	AccountName string
	ProfileURL  string
	Followers   int64
	ImageURL    string
	Area        string
	StoreName   string
}

// Ranking converts the draft into a Ranking value with the given id.
// Pass zero for records that have not been persisted yet.
func (d RankingDraft) Ranking(id int64) Ranking {
	return Ranking{
		ID:          id,
		AccountName: d.AccountName,
		ProfileURL:  d.ProfileURL,
		Followers:   d.Followers,
		ImageURL:    d.ImageURL,
		Area:        d.Area,
		StoreName:   d.StoreName,
	}
}
