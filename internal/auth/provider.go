// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth is the identity provider boundary for the Connectify client.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to the auth screen.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountExists      = errors.New("an account with that username already exists")
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// =============================================================================
// ACCOUNT
// =============================================================================

// Account is the signed-in identity as the chat layer sees it.
// It carries no credential material.
type Account struct {
	ID       string
	Username string
	FullName string
	Avatar   string
}

// DisplayName returns the name stamped onto authored messages: the full
// name when set, otherwise the username, otherwise "Anonymous".
func (a Account) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	if a.Username != "" {
		return a.Username
	}
	return "Anonymous"
}

// =============================================================================
// PROVIDER INTERFACE
// =============================================================================

// Provider is what the presentation shell depends on. The concrete local
// provider below satisfies it; tests substitute their own.
type Provider interface {
	// CurrentAccount returns the signed-in account, if any.
	CurrentAccount() (Account, bool)
	// SignIn authenticates an existing account and starts a session.
	SignIn(username, password string) (Account, error)
	// SignUp registers a new account and starts a session.
	SignUp(username, fullName, password string) (Account, error)
	// SignOut ends the session. Safe to call when signed out.
	SignOut()
}

// =============================================================================
// LOCAL PROVIDER
// =============================================================================

// accountRecord is the persisted form of an account.
type accountRecord struct {
	ID           string `toml:"id"`
	Username     string `toml:"username"`
	FullName     string `toml:"full_name,omitempty"`
	Avatar       string `toml:"avatar,omitempty"`
	PasswordHash string `toml:"password_hash"`
}

// accountsFile is the on-disk accounts document.
type accountsFile struct {
	Accounts []accountRecord `toml:"accounts"`
}

// LocalProvider stores accounts in a TOML file and keeps the session in
// memory. All methods are safe for concurrent use.
type LocalProvider struct {
	mu       sync.Mutex
	path     string
	accounts map[string]accountRecord // keyed by lowercase username
	current  *Account
}

// NewLocalProvider loads (or lazily creates) the accounts file at path.
func NewLocalProvider(path string) (*LocalProvider, error) {
	p := &LocalProvider{
		path:     path,
		accounts: make(map[string]accountRecord),
	}

	if _, err := os.Stat(path); err == nil {
		var doc accountsFile
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return nil, fmt.Errorf("parsing accounts file %s: %w", path, err)
		}
		for _, rec := range doc.Accounts {
			p.accounts[strings.ToLower(rec.Username)] = rec
		}
	}

	return p, nil
}

// CurrentAccount returns the signed-in account, if any.
func (p *LocalProvider) CurrentAccount() (Account, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return Account{}, false
	}
	return *p.current, true
}

// SignIn authenticates against the stored bcrypt hash.
// Unknown usernames and wrong passwords return the same error.
func (p *LocalProvider) SignIn(username, password string) (Account, error) {
	username = strings.TrimSpace(username)

	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.accounts[strings.ToLower(username)]
	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	acct := recordAccount(rec)
	p.current = &acct
	return acct, nil
}

// SignUp registers a new account, persists it, and signs it in.
func (p *LocalProvider) SignUp(username, fullName, password string) (Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Account{}, ErrEmptyUsername
	}
	if len(password) < 8 {
		return Account{}, ErrWeakPassword
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(username)
	if _, exists := p.accounts[key]; exists {
		return Account{}, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hashing password: %w", err)
	}

	rec := accountRecord{
		ID:           "acct_" + uuid.NewString(),
		Username:     username,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
	}
	p.accounts[key] = rec

	if err := p.save(); err != nil {
		delete(p.accounts, key)
		return Account{}, err
	}

	acct := recordAccount(rec)
	p.current = &acct
	return acct, nil
}

// SignOut ends the in-memory session.
func (p *LocalProvider) SignOut() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
}

// save writes the accounts file. Caller holds the lock.
func (p *LocalProvider) save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("creating accounts directory: %w", err)
	}

	doc := accountsFile{Accounts: make([]accountRecord, 0, len(p.accounts))}
	for _, rec := range p.accounts {
		doc.Accounts = append(doc.Accounts, rec)
	}

	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("writing accounts file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(doc)
}

// recordAccount strips credential material from a stored record.
func recordAccount(rec accountRecord) Account {
	return Account{
		ID:       rec.ID,
		Username: rec.Username,
		FullName: rec.FullName,
		Avatar:   rec.Avatar,
	}
}
