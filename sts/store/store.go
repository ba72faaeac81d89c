// Package store loads, queries and persists Chrome's TransportSecurity file:
// a single JSON object mapping storage keys (see the keys package) to STS
// policy entries.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akgood/chrome-sts/sts/keys"
)

// Filename is the name of the store inside a Chrome profile directory.
const Filename = "TransportSecurity"

// ErrMalformedStore is returned when an existing TransportSecurity file
// cannot be parsed. No partial recovery is attempted.
var ErrMalformedStore = errors.New("malformed TransportSecurity file")

// ModeStrict is the only policy mode this tool writes.
const ModeStrict = "strict"

// ExpiryFarFuture is the expiry sentinel written on Set, far enough in the
// future to never lapse in practice. Expiry is not checked during lookup.
const ExpiryFarFuture = float64(0x7FFFFFFF)

// Entry is one STS policy record. Field names and types are bit-compatible
// with the objects Chrome writes into TransportSecurity.
type Entry struct {
	Expiry            float64 `json:"expiry"`
	Created           float64 `json:"created"`
	Mode              string  `json:"mode"`
	IncludeSubdomains bool    `json:"include_subdomains"`
}

// Store is the in-memory TransportSecurity mapping. It is loaded wholesale,
// mutated at most once per invocation and, if dirty, written back wholesale.
//
// The browser may read or write the same file concurrently; there is no file
// locking, so the last full write wins. This race is inherent and accepted.
type Store struct {
	path    string
	entries map[string]Entry
	dirty   bool
}

// Load reads the TransportSecurity file at path. A missing file is not an
// error and yields an empty store; a file that exists but cannot be parsed
// returns an error wrapping ErrMalformedStore.
func Load(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: map[string]Entry{},
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", path).Msg("no TransportSecurity file, starting with an empty store")
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, &s.entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStore, path, err)
	}

	log.Debug().Str("path", path).Int("entries", len(s.entries)).Msg("loaded TransportSecurity file")
	return s, nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Dirty reports whether the store has been mutated since it was loaded.
func (s *Store) Dirty() bool {
	return s.dirty
}

// LookupExact returns the entry stored under hostname's exact storage key.
func (s *Store) LookupExact(hostname string) (Entry, bool, error) {
	key, err := keys.StorageKey(hostname)
	if err != nil {
		return Entry{}, false, err
	}

	entry, ok := s.entries[key]
	return entry, ok, nil
}

// LookupEffective returns the entry that governs hostname, together with the
// name it was stored under. An exact entry always wins, regardless of its
// include_subdomains flag. Otherwise the superdomains of hostname are tried
// from the immediate parent down to the last label, and the first whose entry
// has include_subdomains set is returned. Neither mode nor expiry is
// consulted; this mirrors how the original tool resolved effective policy.
func (s *Store) LookupEffective(hostname string) (string, Entry, bool, error) {
	entry, ok, err := s.LookupExact(hostname)
	if err != nil || ok {
		return hostname, entry, ok, err
	}

	labels := strings.Split(hostname, ".")
	for i := 1; i < len(labels); i++ {
		superdomain := strings.Join(labels[i:], ".")
		entry, ok, err := s.LookupExact(superdomain)
		if err != nil {
			return hostname, Entry{}, false, err
		}
		if ok && entry.IncludeSubdomains {
			return superdomain, entry, true, nil
		}
	}

	return hostname, Entry{}, false, nil
}

// Set inserts or overwrites the entry under hostname's exact storage key,
// never under a superdomain's, and marks the store dirty.
func (s *Store) Set(hostname string, includeSubdomains bool) error {
	key, err := keys.StorageKey(hostname)
	if err != nil {
		return err
	}

	s.entries[key] = Entry{
		Expiry:            ExpiryFarFuture,
		Created:           float64(time.Now().UnixMilli()) / 1000,
		Mode:              ModeStrict,
		IncludeSubdomains: includeSubdomains,
	}
	s.dirty = true
	return nil
}

// Remove deletes the entry under hostname's exact storage key only - a
// superdomain entry that would match via include_subdomains is left alone.
// It reports whether an entry existed, and marks the store dirty only if one
// was actually deleted.
func (s *Store) Remove(hostname string) (bool, error) {
	key, err := keys.StorageKey(hostname)
	if err != nil {
		return false, err
	}

	if _, ok := s.entries[key]; !ok {
		return false, nil
	}

	delete(s.entries, key)
	s.dirty = true
	return true, nil
}

// Persist writes the full mapping back to the file it was loaded from,
// overwriting it entirely. The JSON is pretty-printed with 4-space indent,
// matching what Chrome itself writes; the formatting is cosmetic only.
func (s *Store) Persist() error {
	content, err := json.MarshalIndent(s.entries, "", "    ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return err
	}

	log.Debug().Str("path", s.path).Int("entries", len(s.entries)).Msg("wrote TransportSecurity file")
	s.dirty = false
	return nil
}
