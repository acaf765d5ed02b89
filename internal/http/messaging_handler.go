package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nouvalryhn/reboxed-web/internal/messaging"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

type MessagingHandler struct {
	repo  messaging.Repository
	store *store.Store
}

func NewMessagingHandler(repo messaging.Repository, st *store.Store) *MessagingHandler {
	return &MessagingHandler{repo: repo, store: st}
}

func (h *MessagingHandler) userID() string {
	if u, ok := h.store.User(); ok {
		return u.ID
	}
	return ""
}

func (h *MessagingHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.repo.ListConversations(r.Context(), h.userID())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load conversations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversations": convs})
}

func (h *MessagingHandler) Messages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationId")

	msgs, err := h.repo.Messages(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, messaging.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}

	// opening a thread clears its unread badge
	_ = h.repo.MarkRead(r.Context(), conversationID)

	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

func (h *MessagingHandler) Send(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationId")

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Content == "" {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	m, err := h.repo.Send(r.Context(), conversationID, h.userID(), body.Content)
	if err != nil {
		if errors.Is(err, messaging.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, m)
}
