package service

import "sync"

// SessionWorkers serializes all mutating work for a session on a single
// goroutine per session id. Jobs run strictly in enqueue order, so overlapping
// socket events and background evaluations for the same session can never race
// on the session record. Idle workers are torn down once their last job
// finishes.
type SessionWorkers struct {
	mu      sync.Mutex
	workers map[string]*sessionWorker
}

type sessionWorker struct {
	jobs chan func()
	refs int
}

func NewSessionWorkers() *SessionWorkers {
	return &SessionWorkers{workers: make(map[string]*sessionWorker)}
}

func (w *SessionWorkers) acquire(sessionID string) *sessionWorker {
	w.mu.Lock()
	defer w.mu.Unlock()

	sw, ok := w.workers[sessionID]
	if !ok {
		sw = &sessionWorker{jobs: make(chan func(), 32)}
		w.workers[sessionID] = sw
		go func() {
			for job := range sw.jobs {
				job()
			}
		}()
	}
	sw.refs++
	return sw
}

func (w *SessionWorkers) release(sessionID string, sw *sessionWorker) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sw.refs--
	if sw.refs == 0 {
		close(sw.jobs)
		delete(w.workers, sessionID)
	}
}

// Do enqueues fn on the session's worker and waits for it to finish.
func (w *SessionWorkers) Do(sessionID string, fn func()) {
	sw := w.acquire(sessionID)
	done := make(chan struct{})
	sw.jobs <- func() {
		defer close(done)
		fn()
	}
	<-done
	w.release(sessionID, sw)
}

// Go enqueues fn without waiting. Ordering relative to other jobs for the
// same session is still preserved.
func (w *SessionWorkers) Go(sessionID string, fn func()) {
	sw := w.acquire(sessionID)
	sw.jobs <- func() {
		defer w.release(sessionID, sw)
		fn()
	}
}
