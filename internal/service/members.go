// Package service contains the registries and managers that sit between the
// domain models and the presentation layer.
package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

// MemberRegistry keeps the household's members. Names are unique within a
// registry, so a name identifies exactly one member.
type MemberRegistry struct {
	mu      sync.Mutex
	members []*models.Member
}

// NewMemberRegistry returns an empty registry.
func NewMemberRegistry() *MemberRegistry {
	return &MemberRegistry{}
}

// Add registers a member. Nil members and duplicate names are rejected.
func (r *MemberRegistry) Add(m *models.Member) error {
	if m == nil {
		return fmt.Errorf("%w: member must not be nil", models.ErrInvalidArgument)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.members {
		if existing.Name() == m.Name() {
			return fmt.Errorf("%w: member %q already exists", models.ErrInvalidArgument, m.Name())
		}
	}
	r.members = append(r.members, m)
	return nil
}

// All returns the members in registration order. The slice is a copy.
func (r *MemberRegistry) All() []*models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Member, len(r.members))
	copy(out, r.members)
	return out
}

// ByName returns the member with exactly the given name.
func (r *MemberRegistry) ByName(name string) (*models.Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Search returns every member whose name contains the term,
// case-insensitively. A blank term matches nothing.
func (r *MemberRegistry) Search(term string) []*models.Member {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	needle := strings.ToLower(term)

	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Member
	for _, m := range r.members {
		if strings.Contains(strings.ToLower(m.Name()), needle) {
			result = append(result, m)
		}
	}
	return result
}

// SortedByName returns a new slice of all members, alphabetical by name.
func (r *MemberRegistry) SortedByName() []*models.Member {
	sorted := r.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}

// Count returns the number of registered members.
func (r *MemberRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}
