package auth

import (
	"encoding/json"
	"fmt"

	"github.com/hunkymanie/shoply/internal/kv"
	"github.com/hunkymanie/shoply/internal/model"
)

const usersKey = "shoply_users"

// userCollection reads and writes the user records stored as a single JSON
// array under shoply_users. Mutations are whole-collection read-modify-write;
// the manager's lock is the only writer.
type userCollection struct {
	store kv.Store
}

func (c userCollection) load() ([]model.UserRecord, error) {
	raw, found, err := c.store.Get(usersKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var users []model.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	return users, nil
}

func (c userCollection) save(users []model.UserRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return c.store.Set(usersKey, string(raw))
}

// indexByEmail returns the position of the record with the given email, or -1.
// Emails compare case-sensitively, as stored.
func indexByEmail(users []model.UserRecord, emailAddr string) int {
	for i := range users {
		if users[i].Email == emailAddr {
			return i
		}
	}
	return -1
}

func indexByID(users []model.UserRecord, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
