package sessionstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/common"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
)

// MemoryStore keeps the pair in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string
	log     logging.Logger
}

func NewMemoryStore(log logging.Logger) *MemoryStore {
	return &MemoryStore{entries: make(map[string]string), log: log}
}

func (m *MemoryStore) Save(_ context.Context, token string, user models.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[common.AuthTokenKey] = token
	m.entries[common.UserDataKey] = string(data)
	return nil
}

func (m *MemoryStore) Load(ctx context.Context) (*Entry, error) {
	m.mu.Lock()
	token := m.entries[common.AuthTokenKey]
	user := m.entries[common.UserDataKey]
	m.mu.Unlock()

	return resolve(ctx, m.log, token, []byte(user), m.Clear)
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, common.AuthTokenKey)
	delete(m.entries, common.UserDataKey)
	return nil
}

// Put writes a raw key, bypassing validation.
func (m *MemoryStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Len reports how many keys are held.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
