package usecase

import (
	"context"
	"log/slog"

	"photoboard/src/core/domain"
	"photoboard/src/core/ports"
)

// CardService handles the shared card collection.
type CardService struct {
	repo ports.BoardRepository
	log  *slog.Logger
}

func NewCardService(repo ports.BoardRepository, log *slog.Logger) *CardService {
	return &CardService{repo: repo, log: log}
}

func (s *CardService) List(ctx context.Context) ([]domain.Card, error) {
	return s.repo.ListCards(ctx)
}

func (s *CardService) Create(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	return s.repo.CreateCard(ctx, ownerID, name, link)
}

// Delete removes a card. Only the owner may delete; the ownership check
// runs before the delete is issued, so a forbidden outcome leaves the
// card in storage.
func (s *CardService) Delete(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	card, err := s.repo.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.OwnerID != userID {
		return nil, domain.NewForbiddenError("cannot delete another user's card")
	}
	if err := s.repo.DeleteCard(ctx, cardID); err != nil {
		return nil, err
	}
	return card, nil
}

// Like adds the user to the card's liker set. Liking the same card twice
// has no additional effect.
func (s *CardService) Like(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	return s.repo.AddLike(ctx, cardID, userID)
}

// Unlike removes the user from the card's liker set. Removing an absent
// entry is a no-op, not an error.
func (s *CardService) Unlike(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	return s.repo.RemoveLike(ctx, cardID, userID)
}
