// Package maintenance runs the periodic cleanup of the callback log,
// which otherwise grows without bound.
package maintenance

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Store interface {
	TrimCallbackLog(olderThan time.Time) (int64, error)
}

// Trimmer deletes callback-log rows older than the retention period on a
// cron schedule. A zero retention disables trimming entirely, matching
// the default keep-everything behavior.
type Trimmer struct {
	cron      *cron.Cron
	store     Store
	schedule  string
	retention time.Duration
}

func New(store Store, schedule string, retention time.Duration) *Trimmer {
	return &Trimmer{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		store:     store,
		schedule:  schedule,
		retention: retention,
	}
}

func (t *Trimmer) Start() error {
	if t.retention <= 0 {
		log.Println("callback log retention disabled, trimmer will not run")
		return nil
	}

	_, err := t.cron.AddFunc(t.schedule, t.trim)
	if err != nil {
		return err
	}

	t.cron.Start()
	log.Printf("callback log trimmer started: schedule %q, retention %v", t.schedule, t.retention)
	return nil
}

func (t *Trimmer) trim() {
	n, err := t.store.TrimCallbackLog(time.Now().Add(-t.retention))
	if err != nil {
		log.Printf("callback log trim failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("callback log trimmed: %d rows removed", n)
	}
}

func (t *Trimmer) Stop() {
	if t.cron != nil {
		ctx := t.cron.Stop()
		<-ctx.Done()
	}
}
