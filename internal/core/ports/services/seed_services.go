package services

import "context"

// SeedSvc (re)populates the store from the upstream feed
type SeedSvc interface {
	// Initialize replaces the whole dataset and returns the number of records stored
	Initialize(ctx context.Context) (int, error)
}
