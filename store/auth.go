package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/utils"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailRegistered    = "Email already registered"
)

// Login checks the built-in accounts, then the registered ones. Emails and
// passwords are compared exactly. Bad credentials are reported in the result;
// the error is reserved for storage failures.
func (s *Store) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	s.wait()

	for _, b := range s.builtins {
		if b.Email == email && password == s.builtinPassword {
			if err := s.startSession(ctx, b); err != nil {
				return models.AuthResult{}, err
			}
			utils.LogAuthAction("login", email, true)
			return models.AuthResult{Success: true, User: &b}, nil
		}
	}

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return models.AuthResult{}, err
	}
	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			id := models.Identity{
				ID:       a.ID,
				Email:    a.Email,
				FullName: a.FullName,
				Role:     models.RoleUser,
			}
			if err := s.startSession(ctx, id); err != nil {
				return models.AuthResult{}, err
			}
			utils.LogAuthAction("login", email, true)
			return models.AuthResult{Success: true, User: &id}, nil
		}
	}

	utils.LogAuthAction("login", email, false)
	return models.AuthResult{Success: false, Error: MsgInvalidCredentials}, nil
}

func (s *Store) startSession(ctx context.Context, id models.Identity) error {
	blob, err := s.codec.Encode(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.slots.Set(ctx, IdentitySlot, blob); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()

	s.notifier.Notify(Event{Type: EventSessionLogin, ID: id.ID})
	return nil
}

// Signup appends a registered account. It never signs the new account in.
func (s *Store) Signup(ctx context.Context, email, password, fullName string) (models.AuthResult, error) {
	s.wait()

	for _, b := range s.builtins {
		if b.Email == email {
			utils.LogAuthAction("signup", email, false)
			return models.AuthResult{Success: false, Error: MsgEmailRegistered}, nil
		}
	}

	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		return models.AuthResult{}, err
	}
	for _, a := range accounts {
		if a.Email == email {
			utils.LogAuthAction("signup", email, false)
			return models.AuthResult{Success: false, Error: MsgEmailRegistered}, nil
		}
	}

	accounts = append(accounts, models.RegisteredAccount{
		ID:       s.newID(),
		Email:    email,
		Password: password,
		FullName: fullName,
	})
	b, err := json.Marshal(accounts)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.slots.Set(ctx, AccountsSlot, string(b)); err != nil {
		return models.AuthResult{}, err
	}

	utils.LogAuthAction("signup", email, true)
	return models.AuthResult{Success: true}, nil
}

// Logout clears the session in memory, then drops the persisted identity.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	var id string
	if s.identity != nil {
		id = s.identity.ID
	}
	s.identity = nil
	s.mu.Unlock()

	s.notifier.Notify(Event{Type: EventSessionLogout, ID: id})
	return s.slots.Remove(ctx, IdentitySlot)
}

// RegisteredAccounts returns the persisted signup records.
func (s *Store) RegisteredAccounts(ctx context.Context) ([]models.RegisteredAccount, error) {
	return s.readAccounts(ctx)
}

// readAccounts treats a missing or unreadable list as empty.
func (s *Store) readAccounts(ctx context.Context) ([]models.RegisteredAccount, error) {
	raw, ok, err := s.slots.Get(ctx, AccountsSlot)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var accounts []models.RegisteredAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		utils.SafeWarn("Registered accounts slot is malformed, treating as empty: %v", err)
		return nil, nil
	}
	return accounts, nil
}
