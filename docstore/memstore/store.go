// Package memstore is an in-process docstore.Store. It keeps Firestore
// semantics that the sync layer depends on: struct tags, server timestamps,
// merge writes, atomic transactions whose updates need existing documents,
// and ordered snapshot listeners. It also lets tests inject failures.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/klipach/traveloracle/docstore"
)

var errReadAfterWrite = errors.New("transaction reads must happen before writes")

type document struct {
	ref  docstore.Ref
	data map[string]any
}

// Stats counts operations issued against the store.
type Stats struct {
	Gets    int
	Queries int
	Sets    int
	Commits int
	Aborts  int
}

type Store struct {
	mu        sync.Mutex
	docs      map[string]*document
	listeners map[*listener]struct{}
	last      time.Time
	stats     Stats

	txErr   error
	getErrs map[string]error
	getHook func(docstore.Ref)
}

func New() *Store {
	return &Store{
		docs:      make(map[string]*document),
		listeners: make(map[*listener]struct{}),
		getErrs:   make(map[string]error),
	}
}

// now returns a strictly increasing commit time with Firestore precision.
// Callers hold s.mu.
func (s *Store) now() time.Time {
	t := time.Now().UTC().Truncate(time.Microsecond)
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) Get(_ context.Context, ref docstore.Ref) (*docstore.Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.stats.Gets++
	hook := s.getHook
	if err, ok := s.getErrs[ref.Path()]; ok {
		s.mu.Unlock()
		return nil, err
	}
	doc, ok := s.docs[ref.Path()]
	var snapshot *docstore.Snapshot
	if ok {
		snapshot = newSnapshot(doc)
	}
	s.mu.Unlock()

	if hook != nil {
		hook(ref)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", docstore.ErrNotFound, ref)
	}
	return snapshot, nil
}

func (s *Store) Query(_ context.Context, q docstore.Query) ([]*docstore.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Queries++

	var docs []*document
	for _, doc := range s.docs {
		if matches(q, doc) {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ref.ID < docs[j].ref.ID })

	snapshots := make([]*docstore.Snapshot, 0, len(docs))
	for _, doc := range docs {
		snapshots = append(snapshots, newSnapshot(doc))
	}
	return snapshots, nil
}

func (s *Store) Set(_ context.Context, ref docstore.Ref, data any, opts ...docstore.SetOption) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Sets++

	encoded, err := encodeDoc(data, s.now())
	if err != nil {
		return err
	}
	next, err := applySet(s.docs[ref.Path()], ref, encoded, docstore.MergeFields(opts...))
	if err != nil {
		return err
	}
	s.docs[ref.Path()] = next
	s.notify(ref.Path())
	return nil
}

func (s *Store) NewRef(c docstore.Collection) (docstore.Ref, error) {
	if err := c.Validate(); err != nil {
		return docstore.Ref{}, err
	}
	return c.Doc(uuid.NewString()), nil
}

// Put seeds a document, data may be a struct or a raw map.
func (s *Store) Put(ref docstore.Ref, data any) error {
	return s.Set(context.Background(), ref, data)
}

// Delete removes a document, listeners see it as removed.
func (s *Store) Delete(ref docstore.Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[ref.Path()]; !ok {
		return
	}
	delete(s.docs, ref.Path())
	s.notify(ref.Path())
}

// Data returns a copy of the raw stored fields.
func (s *Store) Data(ref docstore.Ref) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[ref.Path()]
	if !ok {
		return nil, false
	}
	return clone(doc.data).(map[string]any), true
}

// Exists reports whether the document is stored.
func (s *Store) Exists(ref docstore.Ref) bool {
	_, ok := s.Data(ref)
	return ok
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// FailTransactions makes every commit fail with err after the body ran.
// A nil err restores normal commits.
func (s *Store) FailTransactions(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txErr = err
}

// FailGet makes Get of ref fail with err. A nil err clears it.
func (s *Store) FailGet(ref docstore.Ref, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.getErrs, ref.Path())
		return
	}
	s.getErrs[ref.Path()] = err
}

// OnGet registers fn to run after every successful or missing Get, outside
// the store lock. Tests use it to force interleavings.
func (s *Store) OnGet(fn func(docstore.Ref)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getHook = fn
}

func newSnapshot(doc *document) *docstore.Snapshot {
	data := clone(doc.data).(map[string]any)
	return docstore.NewSnapshot(doc.ref, func(p any) error {
		return decodeDoc(data, p)
	})
}

func applySet(prev *document, ref docstore.Ref, data map[string]any, merge []string) (*document, error) {
	if len(merge) == 0 {
		return &document{ref: ref, data: data}, nil
	}
	next := &document{ref: ref, data: make(map[string]any)}
	if prev != nil {
		next.data = clone(prev.data).(map[string]any)
	}
	for _, field := range merge {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("merge field %q not present in data", field)
		}
		next.data[field] = v
	}
	return next, nil
}

func matches(q docstore.Query, doc *document) bool {
	if doc.ref.Parent != q.Collection {
		return false
	}
	if q.Field == "" {
		return true
	}
	value, ok := doc.data[q.Field]
	if !ok {
		return false
	}
	want, err := encodeValue(reflect.ValueOf(q.Value), time.Time{})
	if err != nil {
		return false
	}
	switch q.Op {
	case docstore.OpEqual:
		return reflect.DeepEqual(value, want)
	case docstore.OpArrayContains:
		arr, ok := value.([]any)
		if !ok {
			return false
		}
		for _, v := range arr {
			if reflect.DeepEqual(v, want) {
				return true
			}
		}
	}
	return false
}
