package database

import (
	"sync"

	"goose-bumps-backend/model"
)

// UserStore in-memory user store. State lives for the process lifetime only;
// all access goes through the mutex and returned users are snapshot clones.
type UserStore struct {
	mu           sync.Mutex
	users        map[string]model.User
	tokenCounter uint32
}

// NewUserStore create an empty user store
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]model.User),
	}
}

// Insert stores the user under its ID, overwriting any existing entry.
func (s *UserStore) Insert(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user.Clone()
}

// Get returns a snapshot of the user, or ErrUserNotFound.
func (s *UserStore) Get(userID string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user.Clone(), nil
}

// AppendChapter appends chapterID to the user's progress under a single lock
// acquisition and returns the updated snapshot. Duplicate chapter IDs are kept
// as-is. Unknown users leave the store unchanged.
func (s *UserStore) AppendChapter(userID, chapterID string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	updated := user.Clone()
	updated.ChapterIDs = append(updated.ChapterIDs, chapterID)
	s.users[userID] = updated
	return updated.Clone(), nil
}

// NextTokenID returns the default NFT token id for transfers that omit one.
// The counter is read-only for now; advancing it is mint-then-transfer
// bookkeeping that is not wired up yet.
func (s *UserStore) NextTokenID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenCounter
}
