package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/csvtables/internal/catalog"
	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/domain/schema"
	"github.com/leengari/csvtables/internal/planner/predicate"
	"github.com/leengari/csvtables/internal/query/aggregate"
)

// Engine runs filter and aggregate queries against the tables of a catalog
type Engine struct {
	catalog *catalog.Catalog

	mu        sync.RWMutex
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine over the given catalog
func New(cat *catalog.Catalog) *Engine {
	if cat == nil {
		cat = catalog.New()
	}
	return &Engine{
		catalog:   cat,
		observers: make([]Observer, 0),
	}
}

// Table looks a table up by name
func (e *Engine) Table(name string) (*schema.Table, error) {
	queryID := uuid.New().String()

	e.notify(Event{Type: EventLookupStart, QueryID: queryID, Data: name})
	table, err := e.catalog.Search(name)
	if err != nil {
		e.notify(Event{Type: EventLookupEnd, QueryID: queryID, Data: map[string]interface{}{
			"table": name,
			"error": err.Error(),
		}})
		return nil, err
	}
	e.notify(Event{Type: EventLookupEnd, QueryID: queryID, Data: table.String()})

	return table, nil
}

// Filter returns the rows of table matching pred
func (e *Engine) Filter(table *schema.Table, pred predicate.PredicateFunc) []data.Record {
	queryID := uuid.New().String()
	start := time.Now()

	e.notify(Event{Type: EventFilterStart, QueryID: queryID, Data: table.Name})
	rows := table.Filter(pred)
	e.notify(Event{Type: EventFilterEnd, QueryID: queryID, Data: map[string]interface{}{
		"table":    table.Name,
		"scanned":  len(table.Rows),
		"matched":  len(rows),
		"duration": time.Since(start).String(),
	}})

	return rows
}

// Aggregate reduces column over rows with the given reducer
func (e *Engine) Aggregate(column string, reducer aggregate.Reducer, rows []data.Record) (float64, error) {
	queryID := uuid.New().String()

	e.notify(Event{Type: EventAggregateStart, QueryID: queryID, Data: map[string]interface{}{
		"column": column,
		"rows":   len(rows),
	}})
	result, err := schema.Aggregate(column, reducer, rows)
	if err != nil {
		e.notify(Event{Type: EventAggregateEnd, QueryID: queryID, Data: map[string]interface{}{
			"column": column,
			"error":  err.Error(),
		}})
		return 0, err
	}
	e.notify(Event{Type: EventAggregateEnd, QueryID: queryID, Data: map[string]interface{}{
		"column": column,
		"result": result,
	}})

	return result, nil
}

// ListTables returns the names of all registered tables
func (e *Engine) ListTables() []string {
	return e.catalog.Names()
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()

	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
