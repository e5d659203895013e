// Package roles persists role assignments (user_roles).
package roles

import "context"

type Repository interface {
	// ListByUser returns the roles held by userID.
	ListByUser(ctx context.Context, userID string) ([]string, error)
	// ListAll returns every assignment grouped by user id.
	ListAll(ctx context.Context) (map[string][]string, error)
	// Upsert assigns role to userID; an existing (user_id, role) pair is kept.
	Upsert(ctx context.Context, userID, role string) error
	// Insert assigns role to userID and fails on a duplicate pair.
	Insert(ctx context.Context, userID, role string) error
	// DeleteOthers removes every role of userID except keep.
	DeleteOthers(ctx context.Context, userID, keep string) error
	// DeleteAll removes every role of userID.
	DeleteAll(ctx context.Context, userID string) error
}
