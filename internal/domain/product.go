package domain

import "time"

// Product publication statuses.
const (
	ProductDraft     = "draft"
	ProductPublished = "published"
)

// CreatorInfo is the denormalized display info of the product's creator,
// stored on the product document itself.
type CreatorInfo struct {
	Username       string `json:"username" dynamodbav:"username"`
	ProfilePicture string `json:"profile_picture,omitempty" dynamodbav:"profile_picture"`
}

// Product is owned by a user and mutated by external product surfaces;
// this service only reads it, except for the logo reference.
type Product struct {
	ProductID   string      `json:"id" dynamodbav:"product_id"`
	Name        string      `json:"name" dynamodbav:"name"`
	Tagline     string      `json:"tagline" dynamodbav:"tagline"`
	Logo        string      `json:"logo" dynamodbav:"logo"`
	Status      string      `json:"status" dynamodbav:"status"` // "draft" | "published"
	// Stored as epoch seconds (N) so the GSI range key sorts chronologically;
	// RFC3339 strings with variable fractional digits do not.
	LaunchDate *time.Time `json:"launch_date" dynamodbav:"launch_date,unixtime"`
	UpvoteCount int         `json:"upvote_count" dynamodbav:"upvote_count"`
	CreatedBy   string      `json:"created_by" dynamodbav:"created_by"`
	Creator     CreatorInfo `json:"creator_info" dynamodbav:"creator_info"`
	CreatedAt   time.Time   `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time   `json:"updated" dynamodbav:"updated_at"`
}
