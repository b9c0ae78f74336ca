package docstore

import "sync"

// Listener is the handle of a snapshot subscription. Stop must be called
// when the owner goes away, nothing stops it automatically except the
// subscription context.
type Listener struct {
	stop     func()
	stopOnce sync.Once
	doneOnce sync.Once
	done     chan struct{}

	mu  sync.Mutex
	err error
}

func NewListener(stop func()) *Listener {
	return &Listener{
		stop: stop,
		done: make(chan struct{}),
	}
}

func (l *Listener) Stop() {
	l.stopOnce.Do(l.stop)
}

// Done is closed once no more batches will be delivered.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Err is the reason delivery ended, nil after a regular Stop.
func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Finish is called by store implementations when delivery ends.
func (l *Listener) Finish(err error) {
	l.doneOnce.Do(func() {
		l.mu.Lock()
		l.err = err
		l.mu.Unlock()
		close(l.done)
	})
}
