package api

import (
	"sync"

	"marketboard/internal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionStore keeps one selection tree per session id. Sessions live in
// memory only; a restart starts everyone fresh.
type SessionStore struct {
	mu    *sync.Mutex
	trees map[string]internal.SelectionTree
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		mu:    &sync.Mutex{},
		trees: map[string]internal.SelectionTree{},
	}
}

// With runs fn against the request's selection tree while holding the store
// lock, creating the session on first use. The session id is echoed back on
// the response so clients can pick it up on their first request.
func (s *SessionStore) With(c *gin.Context, fn func(internal.SelectionTree)) string {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(sessionHeader, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[sessionID]
	if !ok {
		tree = internal.NewSelectionTree()
		s.trees[sessionID] = tree
	}
	fn(tree)
	return sessionID
}
