// Package hashid turns negocio ids into the short hashes used in guard login
// links. The encoding is reversible and only hides sequential ids; it is not
// an access control.
package hashid

import (
	"errors"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidHash = errors.New("invalid hash")

type Codec struct {
	h *hashids.HashID
}

func New(salt string, minLength int) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("hashid: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("hashid: id must be positive, got %d", id)
	}
	return c.h.EncodeInt64([]int64{id})
}

// Decode returns the id behind hash, or ErrInvalidHash when the hash does not
// decode to exactly one id.
func (c *Codec) Decode(hash string) (int64, error) {
	if hash == "" {
		return 0, ErrInvalidHash
	}
	ids, err := c.h.DecodeInt64WithError(hash)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrInvalidHash
	}
	return ids[0], nil
}
