package authstub

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEmailTaken   = errors.New("email already registered")
	errInvalidLogin = errors.New("incorrect email or password")
)

// User is the account record returned by signup and /auth/me.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	passwordHash []byte
}

type memoryStore struct {
	mu    sync.RWMutex
	users map[string]User
	cost  int
}

func newMemoryStore(cost int) *memoryStore {
	return &memoryStore{
		users: make(map[string]User),
		cost:  cost,
	}
}

// create hashes password and stores a new user keyed by normalised email.
func (s *memoryStore) create(email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, err
	}
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[key]; ok {
		return User{}, errEmailTaken
	}
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		passwordHash: hash,
	}
	s.users[key] = u
	return u, nil
}

// authenticate returns the user when password matches the stored hash.
func (s *memoryStore) authenticate(email, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.users[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return User{}, errInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return User{}, errInvalidLogin
	}
	return u, nil
}

func (s *memoryStore) get(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[normalizeEmail(email)]
	return u, ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
