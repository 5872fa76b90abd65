// Package trace provides types for JNI call-event collection: tags,
// events and a concurrency-safe Collector. No other package in this
// module imports it.
package trace

import (
	"sync"
	"time"
)

// Tag represents a trace event category. Tags are stored without the '#'
// prefix; the prefix is added on rendering.
type Tag string

// Standard tags for trace events.
const (
	Class     Tag = "class"
	Method    Tag = "method"
	Field     Tag = "field"
	Array     Tag = "array"
	JString   Tag = "string"
	Ref       Tag = "ref"
	Exception Tag = "exception"
	Attach    Tag = "attach"
	Frame     Tag = "frame"
	Envelope  Tag = "envelope"
)

// Tags is a collection of tags with helper methods.
type Tags []Tag

// Has returns true if the tag collection contains the given tag.
func (t Tags) Has(tag Tag) bool {
	for _, x := range t {
		if x == tag {
			return true
		}
	}
	return false
}

// Add adds a tag if not already present.
func (t *Tags) Add(tag Tag) {
	if !t.Has(tag) {
		*t = append(*t, tag)
	}
}

// Strings returns tags as strings with '#' prefix for display.
func (t Tags) Strings() []string {
	out := make([]string, len(t))
	for i, tag := range t {
		out[i] = "#" + string(tag)
	}
	return out
}

// Primary returns the first tag or empty string if none.
func (t Tags) Primary() Tag {
	if len(t) > 0 {
		return t[0]
	}
	return ""
}

// Annotations holds key-value metadata for trace events.
type Annotations map[string]string

// Set adds or updates an annotation.
func (a Annotations) Set(k, v string) {
	a[k] = v
}

// Get retrieves an annotation value.
func (a Annotations) Get(k string) string {
	return a[k]
}

// Event represents one JNI call-surface event: a method/field/array/string
// operation, a reference lifecycle transition, or an attachment transition.
type Event struct {
	Thread      uint64      // OS thread identifier the event occurred on
	Tags        Tags        // Multiple hashtags, first is primary
	Name        string      // Operation name (e.g. "CallIntMethod", "NewGlobalRef")
	Detail      string      // Additional detail (e.g. "Math.abs(I)I")
	Annotations Annotations // Key-value metadata
	Timestamp   time.Time   // When the event occurred
}

// NewEvent creates a new trace event with the given parameters.
func NewEvent(thread uint64, category, name, detail string) *Event {
	return &Event{
		Thread:      thread,
		Tags:        Tags{Tag(category)},
		Name:        name,
		Detail:      detail,
		Annotations: make(Annotations),
		Timestamp:   time.Now(),
	}
}

// AddTag adds a tag to the event.
func (e *Event) AddTag(tag Tag) {
	e.Tags.Add(tag)
}

// Annotate sets an annotation on the event.
func (e *Event) Annotate(k, v string) {
	if e.Annotations == nil {
		e.Annotations = make(Annotations)
	}
	e.Annotations.Set(k, v)
}

// PrimaryTag returns the primary (first) tag with '#' prefix.
func (e *Event) PrimaryTag() string {
	if len(e.Tags) > 0 {
		return "#" + string(e.Tags[0])
	}
	return ""
}

// Collector accumulates events from concurrent threads; GetAndClear
// hands them back in the order they were added.
type Collector struct {
	mu     sync.Mutex
	events []*Event
}

// Add appends an event to the collector.
func (c *Collector) Add(e *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// GetAndClear returns the accumulated events and resets the collector.
func (c *Collector) GetAndClear() []*Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := c.events
	c.events = nil
	return events
}
