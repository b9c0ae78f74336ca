package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store over a Firestore client.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) doc(ref Ref) (*firestore.DocumentRef, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	dr := f.client.Doc(ref.Path())
	if dr == nil {
		return nil, fmt.Errorf("%w: document %q", ErrInvalidRef, ref.Path())
	}
	return dr, nil
}

func (f *Firestore) Get(ctx context.Context, ref Ref) (*Snapshot, error) {
	dr, err := f.doc(ref)
	if err != nil {
		return nil, err
	}
	doc, err := dr.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return nil, err
	}
	return fromFirestore(ref.Parent, doc), nil
}

func (f *Firestore) query(q Query) firestore.Query {
	coll := f.client.Collection(string(q.Collection))
	if q.Field == "" {
		return coll.Query
	}
	return coll.Where(q.Field, string(q.Op), q.Value)
}

func (f *Firestore) Query(ctx context.Context, q Query) ([]*Snapshot, error) {
	iter := f.query(q).Documents(ctx)
	defer iter.Stop()

	var snapshots []*Snapshot
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, fromFirestore(q.Collection, doc))
	}
	return snapshots, nil
}

func (f *Firestore) Set(ctx context.Context, ref Ref, data any, opts ...SetOption) error {
	dr, err := f.doc(ref)
	if err != nil {
		return err
	}
	_, err = dr.Set(ctx, toFirestoreValue(data), firestoreSetOptions(opts)...)
	return err
}

func (f *Firestore) NewRef(c Collection) (Ref, error) {
	if err := c.Validate(); err != nil {
		return Ref{}, err
	}
	coll := f.client.Collection(string(c))
	if coll == nil {
		return Ref{}, fmt.Errorf("%w: collection %q", ErrInvalidRef, string(c))
	}
	return c.Doc(coll.NewDoc().ID), nil
}

func (f *Firestore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(ctx, &firestoreTx{store: f, tx: tx})
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransaction, err)
	}
	return nil
}

func (f *Firestore) Subscribe(ctx context.Context, q Query, fn func(Batch)) (*Listener, error) {
	ctx, cancel := context.WithCancel(ctx)
	iter := f.query(q).Snapshots(ctx)
	listener := NewListener(cancel)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) || ctx.Err() != nil || status.Code(err) == codes.Canceled {
					listener.Finish(nil)
				} else {
					listener.Finish(err)
				}
				return
			}
			fn(batchFromChanges(q.Collection, snap.Changes))
		}
	}()
	return listener, nil
}

func batchFromChanges(c Collection, changes []firestore.DocumentChange) Batch {
	var b Batch
	for _, change := range changes {
		snapshot := fromFirestore(c, change.Doc)
		switch change.Kind {
		case firestore.DocumentAdded:
			b.Added = append(b.Added, snapshot)
		case firestore.DocumentModified:
			b.Modified = append(b.Modified, snapshot)
		case firestore.DocumentRemoved:
			b.Removed = append(b.Removed, snapshot)
		}
	}
	return b
}

type firestoreTx struct {
	store *Firestore
	tx    *firestore.Transaction
}

func (t *firestoreTx) Get(ref Ref) (*Snapshot, error) {
	dr, err := t.store.doc(ref)
	if err != nil {
		return nil, err
	}
	doc, err := t.tx.Get(dr)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return nil, err
	}
	return fromFirestore(ref.Parent, doc), nil
}

func (t *firestoreTx) Set(ref Ref, data any, opts ...SetOption) error {
	dr, err := t.store.doc(ref)
	if err != nil {
		return err
	}
	return t.tx.Set(dr, toFirestoreValue(data), firestoreSetOptions(opts)...)
}

func (t *firestoreTx) Update(ref Ref, updates ...Update) error {
	dr, err := t.store.doc(ref)
	if err != nil {
		return err
	}
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for _, u := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: u.Field, Value: toFirestoreValue(u.Value)})
	}
	return t.tx.Update(dr, fsUpdates)
}

func fromFirestore(c Collection, doc *firestore.DocumentSnapshot) *Snapshot {
	return NewSnapshot(c.Doc(doc.Ref.ID), doc.DataTo)
}

func firestoreSetOptions(opts []SetOption) []firestore.SetOption {
	fields := MergeFields(opts...)
	if len(fields) == 0 {
		return nil
	}
	paths := make([]firestore.FieldPath, 0, len(fields))
	for _, field := range fields {
		paths = append(paths, firestore.FieldPath{field})
	}
	return []firestore.SetOption{firestore.Merge(paths...)}
}

// toFirestoreValue swaps docstore sentinels for their firestore
// counterparts. Structs are passed through, firestore handles their tags.
func toFirestoreValue(v any) any {
	switch x := v.(type) {
	case serverTimestamp:
		return firestore.ServerTimestamp
	case arrayUnion:
		return firestore.ArrayUnion(x.values...)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = toFirestoreValue(val)
		}
		return out
	}
	return v
}
