// Package memory is an in-process account store with the same semantics as the
// PostgreSQL implementation. It backs local runs and service-level tests.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"accounts/internal/domain/entity"
)

// Store holds all state behind one mutex. Transactions work on a copy of the
// state and swap it in on commit.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

type state struct {
	accounts    map[string]*entity.Account // stored without roles; copies are replaced, never mutated
	byUsername  map[string]string
	byEmail     map[string]string
	order       []string // creation order
	catalog     map[entity.Role]struct{}
	memberships map[string]map[entity.Role]struct{}
}

// NewStore returns an empty store with the role catalog preloaded.
func NewStore() *Store {
	st := &state{
		accounts:    make(map[string]*entity.Account),
		byUsername:  make(map[string]string),
		byEmail:     make(map[string]string),
		catalog:     make(map[entity.Role]struct{}),
		memberships: make(map[string]map[entity.Role]struct{}),
	}
	for _, r := range entity.Catalog() {
		st.catalog[r] = struct{}{}
	}

	return &Store{st: st, now: time.Now}
}

func (st *state) clone() *state {
	memberships := make(map[string]map[entity.Role]struct{}, len(st.memberships))
	for id, roles := range st.memberships {
		memberships[id] = maps.Clone(roles)
	}

	return &state{
		accounts:    maps.Clone(st.accounts),
		byUsername:  maps.Clone(st.byUsername),
		byEmail:     maps.Clone(st.byEmail),
		order:       slices.Clone(st.order),
		catalog:     maps.Clone(st.catalog),
		memberships: memberships,
	}
}

// view runs fn against tx when bound to a transaction, otherwise against the
// committed state under the store lock.
func (s *Store) view(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.st)
}

// account assembles a detached copy of the stored account with its roles.
func (st *state) account(id string) (*entity.Account, bool) {
	stored, ok := st.accounts[id]
	if !ok {
		return nil, false
	}

	acc := *stored
	if stored.DeactivatedAt != nil {
		at := *stored.DeactivatedAt
		acc.DeactivatedAt = &at
	}
	acc.Roles = st.roles(id)

	return &acc, true
}

func (st *state) roles(id string) entity.Roles {
	roles := make(entity.Roles, 0, len(st.memberships[id]))
	for r := range st.memberships[id] {
		roles = append(roles, r)
	}
	slices.Sort(roles)

	return roles
}
