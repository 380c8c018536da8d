package store

import (
	"context"
	"fmt"

	"github.com/expensex/expensex-api/utils"
)

// SealedSlots encrypts slot values before handing them to the inner Slots.
// A value that cannot be opened reads as a malformed slot, so callers fall
// back the same way they do for bad JSON.
type SealedSlots struct {
	inner Slots
	key   []byte
}

func NewSealedSlots(inner Slots, key string) (*SealedSlots, error) {
	if len(key) != utils.SealKeySize {
		return nil, utils.ErrSealKeySize
	}
	return &SealedSlots{inner: inner, key: []byte(key)}, nil
}

func (s *SealedSlots) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	plain, err := utils.Open(s.key, sealed)
	if err != nil {
		utils.SafeWarn("Slot %s could not be decrypted: %v", key, err)
		return "", true, nil
	}
	return string(plain), true, nil
}

func (s *SealedSlots) Set(ctx context.Context, key, value string) error {
	sealed, err := utils.Seal(s.key, []byte(value))
	if err != nil {
		return fmt.Errorf("seal slot %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SealedSlots) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}
