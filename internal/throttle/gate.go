// Package throttle decides whether a repeated menu press arrived too
// soon after the previous identical one.
package throttle

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DmitryFreeLance/waterbot/internal/storage"
)

// Log is the slice of the store the gate needs.
type Log interface {
	LastCallbackAt(chatID int64, action string) (time.Time, error)
	LogCallback(chatID int64, action string, at time.Time) error
}

// Gate admits or rejects interactions per (chat, action) pair using a
// time window. Admitted presses are recorded; rejected ones are not, so
// the window stays anchored at the last admitted press.
type Gate struct {
	log    Log
	window time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGate(l Log, window time.Duration) *Gate {
	return &Gate{
		log:    l,
		window: window,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Admit reports whether the press may be processed. The check and the
// record of an admitted press happen under a per-(chat, action) lock so
// two rapid duplicate presses cannot both pass.
//
// A storage fault fails open: skipping delivery is worse than an
// occasional double-send.
func (g *Gate) Admit(chatID int64, action string, now time.Time) bool {
	l := g.keyLock(chatID, action)
	l.Lock()
	defer l.Unlock()

	last, err := g.log.LastCallbackAt(chatID, action)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// never seen, admit
	case err != nil:
		log.Printf("throttle: lookup failed for chat %d action %q: %v", chatID, action, err)
	default:
		if now.Sub(last) < g.window {
			return false
		}
	}

	if err := g.log.LogCallback(chatID, action, now); err != nil {
		log.Printf("throttle: failed to record interaction for chat %d action %q: %v", chatID, action, err)
	}
	return true
}

func (g *Gate) keyLock(chatID int64, action string) *sync.Mutex {
	key := fmt.Sprintf("%d|%s", chatID, action)
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	return l
}
