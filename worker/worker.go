package worker

import (
	"sync"

	"github.com/getsentry/sentry-go"
)

// Group runs background goroutines for the host, such as the settings watcher. A panic in one of them is
// reported to sentry when it is initialised, and recovered either way.
type Group struct {
	wg sync.WaitGroup
}

// Go runs f in a new goroutine.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer sentry.Recover()

		f()
	}()
}

// Wait blocks until every goroutine started by Go returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
