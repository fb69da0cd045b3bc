package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/transfeera/receiver-api/internal/models"
)

// MemoryReceiverRepository is an in-memory repository.ReceiverRepository for tests
type MemoryReceiverRepository struct {
	mu        sync.Mutex
	receivers map[int64]models.Receiver
	seq       int64

	// Err, when set, is returned by every operation
	Err error
}

// NewMemoryReceiverRepository creates an empty in-memory repository
func NewMemoryReceiverRepository() *MemoryReceiverRepository {
	return &MemoryReceiverRepository{receivers: make(map[int64]models.Receiver)}
}

// Len returns the number of stored receivers
func (m *MemoryReceiverRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.receivers)
}

// Put stores a receiver as is, bypassing id assignment
func (m *MemoryReceiverRepository) Put(receiver models.Receiver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receivers[receiver.ID] = receiver
	if receiver.ID > m.seq {
		m.seq = receiver.ID
	}
}

func (m *MemoryReceiverRepository) Create(_ context.Context, receiver *models.Receiver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.seq++
	receiver.ID = m.seq
	m.receivers[receiver.ID] = *receiver
	return nil
}

func (m *MemoryReceiverRepository) FindByID(_ context.Context, id int64) (*models.Receiver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	receiver, ok := m.receivers[id]
	if !ok {
		return nil, models.ErrReceiverNotFound
	}
	return &receiver, nil
}

func (m *MemoryReceiverRepository) Search(_ context.Context, q string, skip, limit int64) ([]models.Receiver, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}

	matches := make([]models.Receiver, 0)
	for _, receiver := range m.receivers {
		if matchesQuery(receiver, q) {
			matches = append(matches, receiver)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	count := int64(len(matches))
	if skip < 0 {
		skip = 0
	}
	if skip >= count {
		return []models.Receiver{}, count, nil
	}
	end := skip + limit
	if end > count {
		end = count
	}
	return matches[skip:end], count, nil
}

func matchesQuery(receiver models.Receiver, q string) bool {
	return strings.Contains(string(receiver.Status), q) ||
		strings.Contains(receiver.CompletedName, q) ||
		strings.Contains(string(receiver.PixKeyType), q) ||
		strings.Contains(receiver.PixKey, q)
}

func (m *MemoryReceiverRepository) Update(_ context.Context, id int64, changes models.ReceiverChanges) (*models.Receiver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	receiver, ok := m.receivers[id]
	if !ok {
		return nil, models.ErrReceiverNotFound
	}
	receiver.Apply(changes)
	receiver.BeforeUpdate()
	m.receivers[id] = receiver
	return &receiver, nil
}

func (m *MemoryReceiverRepository) Delete(_ context.Context, id int64) (*models.Receiver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	receiver, ok := m.receivers[id]
	if !ok {
		return nil, models.ErrReceiverNotFound
	}
	delete(m.receivers, id)
	return &receiver, nil
}

func (m *MemoryReceiverRepository) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var deleted int64
	for _, id := range ids {
		if _, ok := m.receivers[id]; ok {
			delete(m.receivers, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryReceiverRepository) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}
