package handler

import (
	"github.com/gin-gonic/gin"

	"photoboard/src/app/http/dto"
	"photoboard/src/app/http/response"
	"photoboard/src/core/usecase"
)

// CardsHandler handles the shared card collection endpoints.
type CardsHandler struct {
	cards *usecase.CardService
}

func NewCardsHandler(cards *usecase.CardService) *CardsHandler {
	return &CardsHandler{cards: cards}
}

// List handles GET /cards.
func (h *CardsHandler) List(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, cards)
}

// Create handles POST /cards.
func (h *CardsHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cards.Create(c.Request.Context(), userID, req.Name, req.Link)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, card)
}

// Delete handles DELETE /cards/:id.
func (h *CardsHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	card, err := h.cards.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, card)
}

// Like handles PUT /cards/:id/likes.
func (h *CardsHandler) Like(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	card, err := h.cards.Like(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, card)
}

// Unlike handles DELETE /cards/:id/likes.
func (h *CardsHandler) Unlike(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	card, err := h.cards.Unlike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, card)
}
