package auth

import "sync"

var _ TokenStore = (*TokenCell)(nil)

// TokenCell is an in-memory TokenStore guarded by a read/write lock. The lock
// covers the memory access only; it is never held across network I/O.
type TokenCell struct {
	mu         sync.RWMutex
	token      string
	generation uint64
}

// NewTokenCell returns an empty cell.
func NewTokenCell() *TokenCell {
	return &TokenCell{}
}

func (c *TokenCell) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *TokenCell) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.generation++
	c.mu.Unlock()
}

// Snapshot returns the token together with the number of writes that produced it.
func (c *TokenCell) Snapshot() (string, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.generation
}

// Generation reports how many times the token has been replaced.
func (c *TokenCell) Generation() uint64 {
	_, gen := c.Snapshot()
	return gen
}
