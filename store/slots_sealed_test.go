package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSealKey = "0123456789abcdef0123456789abcdef"

func TestSealedSlots_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := NewMemorySlots()
	slots, err := NewSealedSlots(inner, testSealKey)
	require.NoError(t, err)

	require.NoError(t, slots.Set(ctx, AccountsSlot, `[{"email":"a@example.com","password":"secret1"}]`))

	raw, ok, err := inner.Get(ctx, AccountsSlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "secret1")

	value, ok, err := slots.Get(ctx, AccountsSlot)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, strings.Contains(value, "secret1"))

	require.NoError(t, slots.Remove(ctx, AccountsSlot))
	_, ok, err = slots.Get(ctx, AccountsSlot)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSealedSlots_RejectsBadKey(t *testing.T) {
	_, err := NewSealedSlots(NewMemorySlots(), "short")
	assert.Error(t, err)
}

func TestSealedSlots_TamperedValueIsIgnored(t *testing.T) {
	ctx := context.Background()
	inner := NewMemorySlots()
	slots, err := NewSealedSlots(inner, testSealKey)
	require.NoError(t, err)

	s := New(Options{Slots: slots})
	require.NoError(t, s.Init(ctx))
	_, err = s.Login(ctx, "admin@example.com", DefaultBuiltinPassword)
	require.NoError(t, err)

	require.NoError(t, inner.Set(ctx, IdentitySlot, "not-a-sealed-value"))

	restored := New(Options{Slots: slots})
	require.NoError(t, restored.Init(ctx))
	_, ok := restored.CurrentIdentity()
	assert.False(t, ok)
}
