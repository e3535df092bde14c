package domain

import "time"

// RankingSnapshot is the persisted daily trending leaderboard, keyed by the
// UTC calendar date it covers (YYYY-MM-DD). Rebuilding a date merges into the
// same document, so regeneration is idempotent.
type RankingSnapshot struct {
	DateID        string         `json:"id" dynamodbav:"date_id"`
	Date          time.Time      `json:"date" dynamodbav:"date"`
	GeneratedAt   time.Time      `json:"generated_at" dynamodbav:"generated_at"`
	Period        string         `json:"period" dynamodbav:"period"`
	TopProducts   []RankingEntry `json:"top_products" dynamodbav:"top_products"`
	TotalProducts int            `json:"total_products" dynamodbav:"total_products"`
}

// RankingEntry is one ranked product inside a snapshot. Product fields are
// denormalized at build time; entries are never persisted on their own.
type RankingEntry struct {
	ProductID         string     `json:"product_id" dynamodbav:"product_id"`
	Rank              int        `json:"rank" dynamodbav:"rank"`
	UpvoteCount       int        `json:"upvote_count" dynamodbav:"upvote_count"`
	ProductName       string     `json:"product_name" dynamodbav:"product_name"`
	ProductTagline    string     `json:"product_tagline" dynamodbav:"product_tagline"`
	ProductLogo       string     `json:"product_logo" dynamodbav:"product_logo"`
	CreatorUsername   string     `json:"creator_username" dynamodbav:"creator_username"`
	ProductLaunchDate *time.Time `json:"product_launch_date" dynamodbav:"product_launch_date"`
}
