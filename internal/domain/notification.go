package domain

import "time"

// Notification tells a product owner that another user acted on their product.
// Created exactly once per qualifying event; read/unread toggling belongs to
// the notification read surface, never to the fan-out path.
type Notification struct {
	NotificationID string    `json:"id" dynamodbav:"notification_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"` // recipient (product owner)
	Type           EventKind `json:"type" dynamodbav:"type"`
	ProductID      string    `json:"product_id" dynamodbav:"product_id"`
	ActorID        string    `json:"actor_id" dynamodbav:"actor_id"`
	ActorName      string    `json:"actor_name" dynamodbav:"actor_name"`
	ActorPhoto     string    `json:"actor_photo" dynamodbav:"actor_photo"`
	Message        string    `json:"message" dynamodbav:"message"`
	Read           bool      `json:"read" dynamodbav:"read"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}
