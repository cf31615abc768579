package auth_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/spounge-ai/handicap/internal/infra/auth"
	"github.com/stretchr/testify/assert"
)

func TestTokenCell_EmptyAtStart(t *testing.T) {
	cell := auth.NewTokenCell()

	assert.Equal(t, "", cell.Token())
	assert.Equal(t, uint64(0), cell.Generation())
}

func TestTokenCell_SetTokenReplacesValue(t *testing.T) {
	cell := auth.NewTokenCell()

	cell.SetToken("first")
	cell.SetToken("second")

	token, gen := cell.Snapshot()
	assert.Equal(t, "second", token)
	assert.Equal(t, uint64(2), gen)
}

func TestTokenCell_ConcurrentReadersObserveWholeValues(t *testing.T) {
	cell := auth.NewTokenCell()
	cell.SetToken("token-0")

	valid := make(map[string]bool)
	for i := 0; i <= 50; i++ {
		valid[fmt.Sprintf("token-%d", i)] = true
	}

	var wg sync.WaitGroup
	observed := make(chan string, 20*200)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 50; i++ {
			cell.SetToken(fmt.Sprintf("token-%d", i))
		}
	}()

	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				observed <- cell.Token()
			}
		}()
	}

	wg.Wait()
	close(observed)

	for tok := range observed {
		assert.True(t, valid[tok], "unexpected token %q", tok)
	}
	assert.Equal(t, "token-50", cell.Token())
	assert.Equal(t, uint64(51), cell.Generation())
}
