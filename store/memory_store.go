package store

import (
	"sort"
	"sync"
	"time"

	"fitmatch_server/models"

	"github.com/google/uuid"
)

// MemoryStore holds all three collections in process memory. Lookups miss
// with a nil result, never an error. Each collection keeps an insertion-order
// index because scans must return records in storage order and Go maps do not
// iterate deterministically.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	userOrder    []string
	matches      map[string]*models.Match
	matchOrder   []string
	messages     map[string]*models.Message
	messageOrder []string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*models.User),
		matches:  make(map[string]*models.Match),
		messages: make(map[string]*models.Message),
	}
}

// CreateUser assigns an id, stamps creation and last-seen timestamps, stores
// and returns the full user. Email uniqueness is not checked here.
func (s *MemoryStore) CreateUser(input models.CreateUserInput) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := &models.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Age:           input.Age,
		Bio:           input.Bio,
		Location:      input.Location,
		ProfilePhoto:  input.ProfilePhoto,
		WorkoutTypes:  input.WorkoutTypes,
		PreferredTime: input.PreferredTime,
		IsOnline:      input.IsOnline,
		LastSeen:      now,
		CreatedAt:     now,
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return *user
}

func (s *MemoryStore) GetUser(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil
	}
	u := *user
	return &u
}

// GetUserByEmail scans all users and returns the first with a matching email.
func (s *MemoryStore) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			u := *s.users[id]
			return &u
		}
	}
	return nil
}

// UpdateUser merges the non-nil fields into the existing record. Timestamps
// are not touched.
func (s *MemoryStore) UpdateUser(id string, updates models.UpdateUserInput) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Age != nil {
		user.Age = *updates.Age
	}
	if updates.Bio != nil {
		user.Bio = *updates.Bio
	}
	if updates.Location != nil {
		user.Location = *updates.Location
	}
	if updates.ProfilePhoto != nil {
		user.ProfilePhoto = *updates.ProfilePhoto
	}
	if updates.WorkoutTypes != nil {
		user.WorkoutTypes = *updates.WorkoutTypes
	}
	if updates.PreferredTime != nil {
		user.PreferredTime = *updates.PreferredTime
	}
	if updates.IsOnline != nil {
		user.IsOnline = *updates.IsOnline
	}
	u := *user
	return &u
}

func (s *MemoryStore) GetAllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, *s.users[id])
	}
	return users
}

// GetUsersNearby returns every user except the given one. There is no real
// geospatial filtering; "nearby" is everybody else.
func (s *MemoryStore) GetUsersNearby(userID string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		if id == userID {
			continue
		}
		users = append(users, *s.users[id])
	}
	return users
}

// UpdateUserOnlineStatus sets the online flag and refreshes last-seen.
// Unknown ids are a silent no-op.
func (s *MemoryStore) UpdateUserOnlineStatus(id string, isOnline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return
	}
	user.IsOnline = isOnline
	user.LastSeen = time.Now()
}

// CreateMatch stores a new match with the pair in canonical order. The
// duplicate-pair check is the caller's responsibility.
func (s *MemoryStore) CreateMatch(userID1, userID2, status string) models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID1, userID2 = canonicalPair(userID1, userID2)
	match := &models.Match{
		ID:        uuid.NewString(),
		UserID1:   userID1,
		UserID2:   userID2,
		Status:    status,
		CreatedAt: time.Now(),
	}
	s.matches[match.ID] = match
	s.matchOrder = append(s.matchOrder, match.ID)
	return *match
}

func (s *MemoryStore) GetMatch(id string) *models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, ok := s.matches[id]
	if !ok {
		return nil
	}
	m := *match
	return &m
}

// GetMatchBetweenUsers returns the match for the unordered pair, in either
// argument order.
func (s *MemoryStore) GetMatchBetweenUsers(userID1, userID2 string) *models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID1, userID2 = canonicalPair(userID1, userID2)
	for _, id := range s.matchOrder {
		match := s.matches[id]
		if match.UserID1 == userID1 && match.UserID2 == userID2 {
			m := *match
			return &m
		}
	}
	return nil
}

// UpdateMatchStatus mutates the status in place. The store does not restrict
// transitions; the allowed set is enforced at the boundary.
func (s *MemoryStore) UpdateMatchStatus(id, status string) *models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[id]
	if !ok {
		return nil
	}
	match.Status = status
	m := *match
	return &m
}

func (s *MemoryStore) GetUserMatches(userID string) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Match
	for _, id := range s.matchOrder {
		if s.matches[id].Involves(userID) {
			matches = append(matches, *s.matches[id])
		}
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches
}

// CreateMessage stores a new message. It does not verify that the match or
// sender exist.
func (s *MemoryStore) CreateMessage(matchID, senderID, content string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := &models.Message{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.messages[message.ID] = message
	s.messageOrder = append(s.messageOrder, message.ID)
	return *message
}

func (s *MemoryStore) GetMessage(id string) *models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[id]
	if !ok {
		return nil
	}
	m := *message
	return &m
}

// GetMatchMessages returns the match's messages sorted ascending by
// timestamp. The sort is stable so insertion order breaks timestamp ties.
func (s *MemoryStore) GetMatchMessages(matchID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.matchMessagesLocked(matchID)
}

func (s *MemoryStore) matchMessagesLocked(matchID string) []models.Message {
	messages := []models.Message{}
	for _, id := range s.messageOrder {
		if s.messages[id].MatchID == matchID {
			messages = append(messages, *s.messages[id])
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages
}

// GetUserConversations assembles the inbox view: for every accepted match
// involving the user that has at least one message, the match, its most
// recent message and the other participant, most recent conversation first.
// Matches without messages have nothing to preview and are skipped.
func (s *MemoryStore) GetUserConversations(userID string) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversations := []models.Conversation{}
	for _, id := range s.matchOrder {
		match := s.matches[id]
		if !match.Involves(userID) || match.Status != models.MatchStatusAccepted {
			continue
		}
		messages := s.matchMessagesLocked(match.ID)
		if len(messages) == 0 {
			continue
		}
		otherUser, ok := s.users[match.OtherUser(userID)]
		if !ok {
			continue
		}
		conversations = append(conversations, models.Conversation{
			Match:       *match,
			LastMessage: messages[len(messages)-1],
			OtherUser:   *otherUser,
		})
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})
	return conversations
}

// canonicalPair orders two user ids so the unordered pair has a single
// stored representation.
func canonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
