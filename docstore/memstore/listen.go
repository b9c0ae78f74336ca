package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/klipach/traveloracle/docstore"
)

// listener delivers batches in commit order from its own goroutine, so a
// slow callback never blocks writers.
type listener struct {
	query  docstore.Query
	fn     func(docstore.Batch)
	handle *docstore.Listener
	known  map[string]bool

	mu     sync.Mutex
	queue  []docstore.Batch
	signal chan struct{}
}

func (s *Store) Subscribe(ctx context.Context, q docstore.Query, fn func(docstore.Batch)) (*docstore.Listener, error) {
	ctx, cancel := context.WithCancel(ctx)
	l := &listener{
		query:  q,
		fn:     fn,
		handle: docstore.NewListener(cancel),
		known:  make(map[string]bool),
		signal: make(chan struct{}, 1),
	}

	s.mu.Lock()
	var initial docstore.Batch
	for path, doc := range s.docs {
		if matches(q, doc) {
			l.known[path] = true
			initial.Added = append(initial.Added, newSnapshot(doc))
		}
	}
	sortSnapshots(initial.Added)
	l.enqueue(initial)
	s.listeners[l] = struct{}{}
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.listeners, l)
			s.mu.Unlock()
			l.handle.Finish(nil)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.signal:
			}
			for _, b := range l.drain() {
				if ctx.Err() != nil {
					return
				}
				l.fn(b)
			}
		}
	}()
	return l.handle, nil
}

// notify diffs the changed paths against what each listener has seen.
// Callers hold s.mu.
func (s *Store) notify(paths ...string) {
	for l := range s.listeners {
		var b docstore.Batch
		for _, path := range paths {
			doc, exists := s.docs[path]
			match := exists && matches(l.query, doc)
			seen := l.known[path]
			switch {
			case match && !seen:
				l.known[path] = true
				b.Added = append(b.Added, newSnapshot(doc))
			case match && seen:
				b.Modified = append(b.Modified, newSnapshot(doc))
			case !match && seen:
				delete(l.known, path)
				b.Removed = append(b.Removed, removedSnapshot(path))
			}
		}
		if !b.Empty() {
			l.enqueue(b)
		}
	}
}

// enqueue always queues the first batch, even when empty, so subscribers
// observe the initial state.
func (l *listener) enqueue(b docstore.Batch) {
	l.mu.Lock()
	l.queue = append(l.queue, b)
	l.mu.Unlock()
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *listener) drain() []docstore.Batch {
	l.mu.Lock()
	defer l.mu.Unlock()
	batches := l.queue
	l.queue = nil
	return batches
}

func removedSnapshot(path string) *docstore.Snapshot {
	ref := refFromPath(path)
	return docstore.NewSnapshot(ref, func(any) error {
		return docstore.ErrNotFound
	})
}

func refFromPath(path string) docstore.Ref {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return docstore.Collection(path[:i]).Doc(path[i+1:])
		}
	}
	return docstore.Ref{ID: path}
}

func sortSnapshots(snapshots []*docstore.Snapshot) {
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Ref.ID < snapshots[j].Ref.ID })
}
