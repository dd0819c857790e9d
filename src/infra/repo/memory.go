package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"photoboard/src/core/domain"
	"photoboard/src/core/ports"
)

// MemoryRepository is an in-memory BoardRepository for tests and local
// development. It reproduces the Postgres classification behavior:
// malformed ids fail validation, duplicate emails conflict, and the liker
// set is a set.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	cards map[string]domain.Card
	likes map[string]map[string]bool
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]domain.User),
		cards: make(map[string]domain.Card),
		likes: make(map[string]map[string]bool),
	}
}

var _ ports.BoardRepository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) CreateUser(ctx context.Context, nu ports.NewUser) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == nu.Email {
			return nil, domain.NewConflictError("an account with that email already exists")
		}
	}

	u := domain.User{
		ID:           uuid.New().String(),
		Name:         nu.Name,
		About:        nu.About,
		Avatar:       nu.Avatar,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u

	out := u
	out.PasswordHash = ""
	return &out, nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[key]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	u.PasswordHash = ""
	return &u, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *MemoryRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		u.PasswordHash = ""
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *MemoryRepository) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[key]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	u.Name = name
	u.About = about
	r.users[key] = u

	u.PasswordHash = ""
	return &u, nil
}

func (r *MemoryRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[key]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	u.Avatar = avatar
	r.users[key] = u

	u.PasswordHash = ""
	return &u, nil
}

func (r *MemoryRepository) ListCards(ctx context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]domain.Card, 0, len(r.cards))
	for id := range r.cards {
		cards = append(cards, r.cardLocked(id))
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].CreatedAt.Before(cards[j].CreatedAt) })
	return cards, nil
}

func (r *MemoryRepository) CreateCard(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[owner]; !ok {
		return nil, domain.NewNotFoundError("user")
	}

	card := domain.Card{
		ID:        uuid.New().String(),
		Name:      name,
		Link:      link,
		OwnerID:   owner,
		Likes:     []string{},
		CreatedAt: time.Now(),
	}
	r.cards[card.ID] = card
	r.likes[card.ID] = make(map[string]bool)
	return &card, nil
}

func (r *MemoryRepository) GetCardByID(ctx context.Context, id string) (*domain.Card, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.cards[key]; !ok {
		return nil, domain.NewNotFoundError("card")
	}
	card := r.cardLocked(key)
	return &card, nil
}

func (r *MemoryRepository) DeleteCard(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[key]; !ok {
		return domain.NewNotFoundError("card")
	}
	delete(r.cards, key)
	delete(r.likes, key)
	return nil
}

func (r *MemoryRepository) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	cardKey, err := parseID(cardID)
	if err != nil {
		return nil, err
	}
	userKey, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[cardKey]; !ok {
		return nil, domain.NewNotFoundError("card")
	}
	r.likes[cardKey][userKey] = true
	card := r.cardLocked(cardKey)
	return &card, nil
}

func (r *MemoryRepository) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	cardKey, err := parseID(cardID)
	if err != nil {
		return nil, err
	}
	userKey, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[cardKey]; !ok {
		return nil, domain.NewNotFoundError("card")
	}
	delete(r.likes[cardKey], userKey)
	card := r.cardLocked(cardKey)
	return &card, nil
}

// cardLocked assembles a card with its liker set. Callers must hold the lock.
func (r *MemoryRepository) cardLocked(id string) domain.Card {
	card := r.cards[id]
	card.Likes = make([]string, 0, len(r.likes[id]))
	for userID := range r.likes[id] {
		card.Likes = append(card.Likes, userID)
	}
	sort.Strings(card.Likes)
	return card
}
