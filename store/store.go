// Package store holds the session identity and the in-memory ledger that back
// the dashboard. Only the identity and the registered accounts are persisted;
// ledger collections are reseeded on every start.
package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/utils"
)

type Options struct {
	Slots    Slots
	Codec    IdentityCodec
	Notifier Notifier
	Clock    func() time.Time

	// Delay is applied to login and signup. Zero disables it.
	Delay time.Duration

	BuiltinAccounts []models.Identity
	BuiltinPassword string
}

// Store is the single holder of the session identity and the ledger.
type Store struct {
	slots    Slots
	codec    IdentityCodec
	notifier Notifier
	clock    func() time.Time
	delay    time.Duration

	builtins        []models.Identity
	builtinPassword string

	mu         sync.RWMutex
	loading    bool
	identity   *models.Identity
	categories []models.Category
	projects   []models.Project
	expenses   []models.Expense
	incomes    []models.Income

	// serializes read-modify-write of the accounts slot
	accountsMu sync.Mutex
}

func New(opts Options) *Store {
	s := &Store{
		slots:           opts.Slots,
		codec:           opts.Codec,
		notifier:        opts.Notifier,
		clock:           opts.Clock,
		delay:           opts.Delay,
		builtins:        opts.BuiltinAccounts,
		builtinPassword: opts.BuiltinPassword,
		loading:         true,
		categories:      seedCategories(),
		projects:        seedProjects(),
		expenses:        seedExpenses(),
		incomes:         seedIncomes(),
	}
	if s.slots == nil {
		s.slots = NewMemorySlots()
	}
	if s.codec == nil {
		s.codec = JSONCodec{}
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.builtins == nil {
		s.builtins = builtinAccounts
	}
	if s.builtinPassword == "" {
		s.builtinPassword = DefaultBuiltinPassword
	}
	return s
}

// Init restores a persisted identity, if any, and clears the loading flag.
// A blob that does not decode is ignored. Storage errors are returned but
// still end the loading phase.
func (s *Store) Init(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	blob, ok, err := s.slots.Get(ctx, IdentitySlot)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	id, err := s.codec.Decode(blob)
	if err != nil {
		if errors.Is(err, ErrMalformedIdentity) {
			utils.SafeWarn("Ignoring persisted session: %v", err)
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()

	utils.SafeInfo("Restored session for %s", id.Email)
	return nil
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CurrentIdentity returns the active identity, if any.
func (s *Store) CurrentIdentity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// newID derives an id from the creation time in milliseconds. Two creations
// within the same millisecond collide.
func (s *Store) newID() string {
	return strconv.FormatInt(s.clock().UnixMilli(), 10)
}

func (s *Store) wait() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
