// Package census maintains a running counter of registrations per location.
package census

import (
	"context"
	"fmt"

	"github.com/uniaodigital/learnhub/internal/logging"
	"github.com/uniaodigital/learnhub/internal/store"
)

// Document maps a free-text location to the number of users that registered
// with it. It is an independently maintained running counter, incremented
// exactly once per successful registration and never recomputed from the user
// directory, so a registration that fails halfway can leave it out of step.
type Document map[string]int

// Census counts registrations per location.
type Census struct {
	store *store.Store[Document]
	log   logging.Logger
}

func New(s *store.Store[Document], log logging.Logger) *Census {
	return &Census{store: s, log: log.With("component", "census")}
}

// Increment adds one registration for location, initializing the counter for
// a previously unseen location.
func (c *Census) Increment(ctx context.Context, location string) error {
	doc, err := c.store.Load(ctx, Document{})
	if err != nil {
		return fmt.Errorf("load census: %w", err)
	}

	if _, ok := doc[location]; !ok {
		doc[location] = 0
	}
	doc[location]++

	if err := c.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save census: %w", err)
	}

	c.log.Debug(ctx, "location counted", "location", location, "count", doc[location])
	return nil
}

// All returns the full location→count mapping, possibly empty.
func (c *Census) All(ctx context.Context) (Document, error) {
	doc, err := c.store.Load(ctx, Document{})
	if err != nil {
		return nil, fmt.Errorf("load census: %w", err)
	}
	return doc, nil
}
