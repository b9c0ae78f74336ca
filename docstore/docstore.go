// Package docstore is a small client-side contract over a document store:
// single document reads, field queries, writes, transactions and snapshot
// listeners. Firestore implements it in production, memstore in tests.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrDecode      = errors.New("document does not match expected shape")
	ErrTransaction = errors.New("transaction failed")
	ErrInvalidRef  = errors.New("invalid reference")
)

// Collection is a slash separated collection path such as
// "Conversations" or "Conversations/{id}/Messages".
type Collection string

func (c Collection) Doc(id string) Ref {
	return Ref{Parent: c, ID: id}
}

// Validate reports an error unless c alternates non-empty collection and
// document segments, ending on a collection.
func (c Collection) Validate() error {
	segments := strings.Split(string(c), "/")
	if len(segments)%2 == 0 || slices.Contains(segments, "") {
		return fmt.Errorf("%w: collection %q", ErrInvalidRef, string(c))
	}
	return nil
}

// Ref addresses a single document.
type Ref struct {
	Parent Collection
	ID     string
}

func (r Ref) Path() string {
	return string(r.Parent) + "/" + r.ID
}

// Sub returns the named subcollection of the document.
func (r Ref) Sub(name string) Collection {
	return Collection(r.Path() + "/" + name)
}

func (r Ref) String() string {
	return r.Path()
}

func (r Ref) valid() bool {
	return r.Parent.Validate() == nil && r.ID != "" && !strings.Contains(r.ID, "/")
}

// Validate reports an error for refs that cannot address a document.
func (r Ref) Validate() error {
	if !r.valid() {
		return fmt.Errorf("%w: document %q", ErrInvalidRef, r.Path())
	}
	return nil
}

type Op string

const (
	OpEqual         Op = "=="
	OpArrayContains Op = "array-contains"
)

// Query selects documents of one collection. An empty Field selects the
// whole collection.
type Query struct {
	Collection Collection
	Field      string
	Op         Op
	Value      any
}

func Where(c Collection, field string, op Op, value any) Query {
	return Query{Collection: c, Field: field, Op: op, Value: value}
}

func All(c Collection) Query {
	return Query{Collection: c}
}

// Update is a single top-level field write used by Tx.Update.
type Update struct {
	Field string
	Value any
}

type serverTimestamp struct{}

// ServerTimestamp as a field value is replaced by the commit time.
var ServerTimestamp = serverTimestamp{}

type arrayUnion struct {
	values []any
}

// ArrayUnion adds the values to an array field unless already present.
func ArrayUnion(values ...any) any {
	return arrayUnion{values: values}
}

// IsServerTimestamp and ArrayUnionValues let store implementations resolve
// sentinel field values.
func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

func ArrayUnionValues(v any) ([]any, bool) {
	au, ok := v.(arrayUnion)
	return au.values, ok
}

type setOptions struct {
	merge []string
}

type SetOption func(*setOptions)

// Merge restricts a write to the named top-level fields, leaving the rest of
// an existing document untouched.
func Merge(fields ...string) SetOption {
	return func(o *setOptions) {
		o.merge = append(o.merge, fields...)
	}
}

// MergeFields returns the fields collected from opts, nil for a full
// overwrite.
func MergeFields(opts ...SetOption) []string {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o.merge
}

// Batch is one delivery of a snapshot listener.
type Batch struct {
	Added    []*Snapshot
	Modified []*Snapshot
	Removed  []*Snapshot
}

func (b Batch) Empty() bool {
	return len(b.Added) == 0 && len(b.Modified) == 0 && len(b.Removed) == 0
}

type Store interface {
	Get(ctx context.Context, ref Ref) (*Snapshot, error)
	Query(ctx context.Context, q Query) ([]*Snapshot, error)
	Set(ctx context.Context, ref Ref, data any, opts ...SetOption) error
	NewRef(c Collection) (Ref, error)
	// RunTransaction may run fn more than once, fn must not have external
	// side effects.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Subscribe delivers batches to fn in arrival order until the returned
	// listener is stopped or ctx ends.
	Subscribe(ctx context.Context, q Query, fn func(Batch)) (*Listener, error)
}

type Tx interface {
	Get(ref Ref) (*Snapshot, error)
	Set(ref Ref, data any, opts ...SetOption) error
	// Update fails the transaction when the document does not exist.
	Update(ref Ref, updates ...Update) error
}
