package selection

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

// Session сессия выбора диапазона дат в календаре артиста
type Session struct {
	ID        string
	OwnerID   int64
	ArtistID  int64
	Selector  *domain.RangeSelector
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot копия сессии, безопасная для чтения вне хранилища
type Snapshot struct {
	ID        string
	OwnerID   int64
	ArtistID  int64
	Selection domain.RangeSelection
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		ArtistID:  s.ArtistID,
		Selection: s.Selector.Snapshot(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Store хранит сессии выбора в памяти процесса.
// Сессия удаляется после ttl бездействия.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	newID    func() string
}

// NewStore создает хранилище сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		newID:    uuid.NewString,
	}
}

// Create создает пустую сессию выбора
func (s *Store) Create(ownerID, artistID int64, lowerBound *time.Time, now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:        s.newID(),
		OwnerID:   ownerID,
		ArtistID:  artistID,
		Selector:  domain.NewRangeSelector(lowerBound),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[session.ID] = session

	return session.snapshot()
}

// Get возвращает сессию по ID
func (s *Store) Get(id string, now time.Time) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id, now)
	if err != nil {
		return Snapshot{}, err
	}
	return session.snapshot(), nil
}

// Update выполняет fn над сессией под блокировкой хранилища и продлевает её жизнь.
// Если fn вернула ошибку, время обновления не меняется.
func (s *Store) Update(id string, now time.Time, fn func(session *Session) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id, now)
	if err != nil {
		return Snapshot{}, err
	}

	if err := fn(session); err != nil {
		return session.snapshot(), err
	}

	session.UpdatedAt = now
	return session.snapshot(), nil
}

// Delete удаляет сессию. Если fn не nil, она выполняется под той же блокировкой,
// и ошибка fn отменяет удаление.
func (s *Store) Delete(id string, now time.Time, fn func(session *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id, now)
	if err != nil {
		return err
	}
	if fn != nil {
		if err := fn(session); err != nil {
			return err
		}
	}
	delete(s.sessions, id)
	return nil
}

// Sweep удаляет истёкшие сессии и возвращает их количество
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len количество живых и ещё не вычищенных сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// lookup вызывается под s.mu
func (s *Store) lookup(id string, now time.Time) (*Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(session, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) expired(session *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.UpdatedAt) > s.ttl
}
