package models

// RateEvent represents a dataset mutation published to Kafka after commit.
type RateEvent struct {
	EventID   string  `json:"event_id"`  // EventID is a unique identifier for the event.
	Operation string  `json:"operation"` // Operation is the mutation type, "create" or "delete".
	Count     int64   `json:"count"`     // Count is the number of records affected.
	Timestamp int64   `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the mutation.
	Ids       []int64 `json:"ids,omitempty"`
}
