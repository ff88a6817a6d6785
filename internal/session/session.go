// Package session tracks which user is currently authenticated. The whole
// session is one pointer: the user's email, kept in its own storage slot,
// independent of the store. It can outlive or dangle relative to the user
// record it names; resolving it is the caller's job.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/storage"
)

// SessionKey is the storage slot holding the current user's email.
const SessionKey = "currentUserEmail"

// Manager reads and writes the session pointer.
type Manager struct {
	storage storage.Storage
}

func NewManager(st storage.Storage) *Manager {
	return &Manager{storage: st}
}

// Set records email as the current session.
func (m *Manager) Set(ctx context.Context, email string) error {
	if err := m.storage.Set(ctx, SessionKey, []byte(email)); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Clear removes the session pointer. Clearing an absent session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.storage.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Email returns the current session's email, or common.ErrNotFound when
// logged out.
func (m *Manager) Email(ctx context.Context) (string, error) {
	data, err := m.storage.Get(ctx, SessionKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return string(data), nil
}
