package songrequest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	profilesvc "github.com/melodicname/api/internal/service/profile"
)

// MockService implements Service in memory for unit tests. It shares quota
// state with a profile mock so submission semantics match the Firestore
// transaction: check and decrement are one step under the same lock.
type MockService struct {
	mu       sync.RWMutex
	requests map[string]*SongRequest
	profiles *profilesvc.MockService
	seq      int
	watchers map[int]chan Event
	watchSeq int
}

// NewMockService creates a mock backed by the given profile mock.
func NewMockService(profiles *profilesvc.MockService) *MockService {
	return &MockService{
		requests: make(map[string]*SongRequest),
		profiles: profiles,
		watchers: make(map[int]chan Event),
	}
}

func (m *MockService) Submit(ctx context.Context, uid string, params SubmitParams) (*SongRequest, error) {
	if !ValidGenre(params.Genre) {
		return nil, ErrInvalidGenre
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.profiles.Get(ctx, uid)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	if !p.Entitled() {
		return nil, ErrQuotaExhausted
	}

	m.seq++
	now := time.Now().UTC()
	r := &SongRequest{
		ID:              fmt.Sprintf("req-%d", m.seq),
		UserID:          uid,
		ArtistName:      params.ArtistName,
		Recipient:       params.Recipient,
		Genre:           params.Genre,
		SongName:        params.SongName,
		Whatsapp:        params.Whatsapp,
		Email:           params.Email,
		PhotoURL:        params.PhotoURL,
		AdditionalNotes: params.AdditionalNotes,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.requests[r.ID] = r

	if !p.IsPremium {
		m.profiles.Set(&profilesvc.Profile{
			ID:                 p.ID,
			Email:              p.Email,
			FreeSongsRemaining: p.FreeSongsRemaining - 1,
			IsPremium:          p.IsPremium,
			CreatedAt:          p.CreatedAt,
			UpdatedAt:          now,
		})
	}

	m.notify(Event{Type: EventAdded, RequestID: r.ID})
	cp := *r
	return &cp, nil
}

func (m *MockService) List(_ context.Context, uid string) ([]*SongRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*SongRequest
	for _, r := range m.requests {
		if r.UserID == uid {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockService) MarkReceived(_ context.Context, uid, id string) (*SongRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.requests[id]
	if !exists || r.UserID != uid {
		return nil, ErrNotFound
	}
	if r.Status != StatusCompleted {
		r.Status = StatusCompleted
		r.UpdatedAt = time.Now().UTC()
		m.notify(Event{Type: EventModified, RequestID: r.ID})
	}
	cp := *r
	return &cp, nil
}

func (m *MockService) Watch(ctx context.Context, _ string) (<-chan Event, error) {
	m.mu.Lock()
	m.watchSeq++
	key := m.watchSeq
	ch := make(chan Event, 16)
	m.watchers[key] = ch
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, key)
		close(ch)
		m.mu.Unlock()
	}()
	return ch, nil
}

// notify fans an event out to all watchers. Callers must hold m.mu.
func (m *MockService) notify(ev Event) {
	for _, ch := range m.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
