package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Store reads and writes the tracked collections of a single user.
type Store struct {
	client *supabase.Client
	userID string
}

// Query describes a filtered, ordered read. The owner filter is always added.
type Query struct {
	Filters   map[string]string
	OrderBy   string
	Ascending bool
	Limit     int
}

func NewStore(client *supabase.Client, userID string) *Store {
	return &Store{client: client, userID: userID}
}

func (s *Store) UserID() string {
	return s.userID
}

// profiles are keyed by the user id itself
func ownerColumn(collection string) string {
	if collection == config.CollectionProfiles {
		return "id"
	}
	return "user_id"
}

func insertOne[T any](s *Store, collection string, record T) (T, error) {
	var zero T
	rows := []T{record}

	resp, _, err := s.client.From(collection).Insert(rows, false, "", "", "").Execute()
	if err != nil {
		return zero, &types.StoreWriteError{Collection: collection, Op: "insert", Err: err}
	}

	var created []T
	if err := json.Unmarshal(resp, &created); err != nil {
		return zero, &types.StoreWriteError{Collection: collection, Op: "insert", Err: fmt.Errorf("failed to parse insert result: %w", err)}
	}
	if len(created) == 0 {
		return zero, &types.StoreWriteError{Collection: collection, Op: "insert", Err: fmt.Errorf("insert returned no rows")}
	}
	return created[0], nil
}

func (s *Store) update(collection, id string, patch any) error {
	resp, _, err := s.client.From(collection).
		Update(patch, "", "").
		Eq("id", id).
		Eq(ownerColumn(collection), s.userID).
		Execute()
	if err != nil {
		return &types.StoreWriteError{Collection: collection, Op: "update", Err: err}
	}

	var updated []map[string]any
	if err := json.Unmarshal(resp, &updated); err != nil {
		return &types.StoreWriteError{Collection: collection, Op: "update", Err: fmt.Errorf("failed to parse update result: %w", err)}
	}
	if len(updated) == 0 {
		return &types.StoreWriteError{Collection: collection, Op: "update", Err: types.ErrNotFound}
	}
	return nil
}

func (s *Store) query(collection string, q Query, out any) error {
	builder := s.client.From(collection).
		Select("*", "", false).
		Eq(ownerColumn(collection), s.userID)

	for column, value := range q.Filters {
		builder = builder.Eq(column, value)
	}
	if q.OrderBy != "" {
		builder = builder.Order(q.OrderBy, &postgrest.OrderOpts{Ascending: q.Ascending})
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit, "")
	}

	resp, _, err := builder.Execute()
	if err != nil {
		return &types.StoreReadError{Collection: collection, Err: err}
	}
	if err := json.Unmarshal(resp, out); err != nil {
		return &types.StoreReadError{Collection: collection, Err: fmt.Errorf("failed to decode %s data: %w", collection, err)}
	}
	return nil
}

func (s *Store) count(collection string, filters map[string]string) (int, error) {
	builder := s.client.From(collection).
		Select("*", "exact", true).
		Eq(ownerColumn(collection), s.userID)

	for column, value := range filters {
		builder = builder.Eq(column, value)
	}

	_, count, err := builder.Execute()
	if err != nil {
		return 0, &types.StoreReadError{Collection: collection, Err: err}
	}
	return int(count), nil
}
