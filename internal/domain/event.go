package domain

// EventKind discriminates the user actions this service reacts to.
type EventKind string

const (
	EventComment EventKind = "comment"
	EventUpvote  EventKind = "upvote"
)

// ActorInfo is the display info the event delivery attaches to the acting user.
// Both fields are optional; the notifier substitutes documented fallbacks.
type ActorInfo struct {
	DisplayName    string `json:"display_name" dynamodbav:"display_name"`
	ProfilePicture string `json:"profile_picture" dynamodbav:"profile_picture"`
}

// Event is an immutable record of a user action against a product.
type Event struct {
	Kind      EventKind
	ProductID string
	ActorID   string
	Actor     ActorInfo
}

// CommentCreatedRequest is the hook payload delivered when a comment
// sub-record is created under a product.
type CommentCreatedRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	CommentID string    `json:"comment_id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	Body      string    `json:"body"`
	UserInfo  ActorInfo `json:"user_info"`
}

// UpvoteCreatedRequest is the hook payload delivered when an upvote
// sub-record is created under a product. The sub-record is keyed by the
// upvoting user, so there is no separate event id.
type UpvoteCreatedRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	UserID    string    `json:"user_id" validate:"required"`
	UserInfo  ActorInfo `json:"user_info"`
}
