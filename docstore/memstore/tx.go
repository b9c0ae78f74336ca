package memstore

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/klipach/traveloracle/docstore"
)

type writeKind int

const (
	writeSet writeKind = iota
	writeUpdate
)

type write struct {
	kind    writeKind
	ref     docstore.Ref
	data    any
	merge   []string
	updates []docstore.Update
}

type transaction struct {
	store  *Store
	writes []write
}

func (t *transaction) Get(ref docstore.Ref) (*docstore.Snapshot, error) {
	if len(t.writes) > 0 {
		return nil, errReadAfterWrite
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Gets++
	if err, ok := s.getErrs[ref.Path()]; ok {
		return nil, err
	}
	doc, ok := s.docs[ref.Path()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", docstore.ErrNotFound, ref)
	}
	return newSnapshot(doc), nil
}

func (t *transaction) Set(ref docstore.Ref, data any, opts ...docstore.SetOption) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	t.writes = append(t.writes, write{kind: writeSet, ref: ref, data: data, merge: docstore.MergeFields(opts...)})
	return nil
}

func (t *transaction) Update(ref docstore.Ref, updates ...docstore.Update) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	t.writes = append(t.writes, write{kind: writeUpdate, ref: ref, updates: updates})
	return nil
}

// RunTransaction buffers the writes of fn and applies them together. Either
// every write lands or none does.
func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx docstore.Tx) error) error {
	tx := &transaction{store: s}
	if err := fn(ctx, tx); err != nil {
		s.abort()
		return fmt.Errorf("%w: %w", docstore.ErrTransaction, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		s.stats.Aborts++
		return fmt.Errorf("%w: %w", docstore.ErrTransaction, err)
	}
	if s.txErr != nil {
		s.stats.Aborts++
		return fmt.Errorf("%w: %w", docstore.ErrTransaction, s.txErr)
	}

	now := s.now()
	staged := make(map[string]*document)
	var order []string
	lookup := func(path string) *document {
		if doc, ok := staged[path]; ok {
			return doc
		}
		return s.docs[path]
	}
	for _, w := range tx.writes {
		path := w.ref.Path()
		var (
			next *document
			err  error
		)
		switch w.kind {
		case writeSet:
			var encoded map[string]any
			encoded, err = encodeDoc(w.data, now)
			if err == nil {
				next, err = applySet(lookup(path), w.ref, encoded, w.merge)
			}
		case writeUpdate:
			next, err = applyUpdate(lookup(path), w.ref, w.updates, now)
		}
		if err != nil {
			s.stats.Aborts++
			return fmt.Errorf("%w: %w", docstore.ErrTransaction, err)
		}
		if _, ok := staged[path]; !ok {
			order = append(order, path)
		}
		staged[path] = next
	}

	for _, path := range order {
		s.docs[path] = staged[path]
	}
	s.stats.Commits++
	s.notify(order...)
	return nil
}

func (s *Store) abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Aborts++
}

func applyUpdate(prev *document, ref docstore.Ref, updates []docstore.Update, now time.Time) (*document, error) {
	if prev == nil {
		return nil, fmt.Errorf("%w: %s", docstore.ErrNotFound, ref)
	}
	next := &document{ref: ref, data: clone(prev.data).(map[string]any)}
	for _, u := range updates {
		if u.Field == "" {
			return nil, fmt.Errorf("update of %s has an empty field", ref)
		}
		if values, ok := docstore.ArrayUnionValues(u.Value); ok {
			merged, err := arrayUnion(next.data[u.Field], values, now)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", u.Field, err)
			}
			next.data[u.Field] = merged
			continue
		}
		v, err := encodeValue(reflect.ValueOf(u.Value), now)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", u.Field, err)
		}
		next.data[u.Field] = v
	}
	return next, nil
}

func arrayUnion(current any, values []any, now time.Time) ([]any, error) {
	var out []any
	if current != nil {
		arr, ok := current.([]any)
		if !ok {
			return nil, fmt.Errorf("array union on non-array value %T", current)
		}
		out = append(out, arr...)
	}
	for _, value := range values {
		v, err := encodeValue(reflect.ValueOf(value), now)
		if err != nil {
			return nil, err
		}
		if !containsValue(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func containsValue(arr []any, v any) bool {
	for _, x := range arr {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}
