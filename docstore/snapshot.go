package docstore

import "fmt"

type validator interface {
	Validate() error
}

// Snapshot is a read copy of one document.
type Snapshot struct {
	Ref    Ref
	decode func(p any) error
}

func NewSnapshot(ref Ref, decode func(p any) error) *Snapshot {
	return &Snapshot{Ref: ref, decode: decode}
}

// DataTo decodes the document into p. When p has a Validate method it is
// called after decoding, both failures are reported as ErrDecode.
func (s *Snapshot) DataTo(p any) error {
	if err := s.decode(p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, s.Ref, err)
	}
	if v, ok := p.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, s.Ref, err)
		}
	}
	return nil
}

// Decode is DataTo for a freshly allocated T.
func Decode[T any](s *Snapshot) (*T, error) {
	v := new(T)
	if err := s.DataTo(v); err != nil {
		return nil, err
	}
	return v, nil
}
