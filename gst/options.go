package gst

import "github.com/google/uuid"

// options holds the frozen construction-time configuration for a Tree:
// plain functions applied left to right by NewTree, over a private
// struct that is never mutated again afterwards.
type options struct {
	instanceID string
}

// Option configures a Tree at construction time.
type Option func(*options)

func defaultOptions() options {
	return options{instanceID: uuid.NewString()}
}

// WithInstanceID attaches a correlation id to every log line the Tree
// emits for its lifetime. If not supplied, NewTree generates one.
func WithInstanceID(id string) Option {
	return func(o *options) {
		o.instanceID = id
	}
}
