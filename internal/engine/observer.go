package engine

import "time"

// EventType represents different lifecycle phases of a query
type EventType string

const (
	EventLookupStart    EventType = "lookup_start"
	EventLookupEnd      EventType = "lookup_end"
	EventFilterStart    EventType = "filter_start"
	EventFilterEnd      EventType = "filter_end"
	EventAggregateStart EventType = "aggregate_start"
	EventAggregateEnd   EventType = "aggregate_end"
)

// Event represents a lifecycle event of a single query
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Shared by the start/end pair of one query
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (table name, match counts, result)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
