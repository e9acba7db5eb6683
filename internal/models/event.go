package models

// Recommendation lifecycle event types.
const (
	EventRecommendationCreated = "recommendation.created"
	EventRecommendationDeleted = "recommendation.deleted"
)

// RecommendationEvent is published whenever a recommendation is created or withdrawn.
type RecommendationEvent struct {
	EventID          string `json:"event_id"`          // Unique event identifier
	Type             string `json:"type"`              // One of the EventRecommendation* constants
	RecommendationID string `json:"recommendation_id"` // Hex id of the recommendation
	QueryID          string `json:"query_id"`          // Hex id of the target query
	Timestamp        int64  `json:"timestamp"`         // Unix seconds
}
