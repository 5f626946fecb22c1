package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

func newMember(t *testing.T, name string) *models.Member {
	t.Helper()
	m, err := models.NewMember(name)
	require.NoError(t, err)
	return m
}

func TestMemberRegistryAdd(t *testing.T) {
	reg := NewMemberRegistry()

	require.NoError(t, reg.Add(newMember(t, "Jona")))
	require.NoError(t, reg.Add(newMember(t, "Katha")))
	assert.Equal(t, 2, reg.Count())

	err := reg.Add(nil)
	require.ErrorIs(t, err, models.ErrInvalidArgument)

	err = reg.Add(newMember(t, "Jona"))
	require.ErrorIs(t, err, models.ErrInvalidArgument, "duplicate names are rejected")
	assert.Equal(t, 2, reg.Count())
}

func TestMemberRegistryByName(t *testing.T) {
	reg := NewMemberRegistry()
	jona := newMember(t, "Jona")
	require.NoError(t, reg.Add(jona))

	got, ok := reg.ByName("Jona")
	require.True(t, ok)
	assert.Same(t, jona, got)

	_, ok = reg.ByName("jona")
	assert.False(t, ok, "ByName is exact, not case-folded")

	_, ok = reg.ByName("Nobody")
	assert.False(t, ok)
}

func TestMemberRegistrySearch(t *testing.T) {
	reg := NewMemberRegistry()
	require.NoError(t, reg.Add(newMember(t, "Jona")))
	require.NoError(t, reg.Add(newMember(t, "Katha")))
	require.NoError(t, reg.Add(newMember(t, "Lucas")))

	names := func(ms []*models.Member) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Name())
		}
		return out
	}

	assert.Equal(t, []string{"Jona", "Katha", "Lucas"}, names(reg.Search("A")), "search is case-insensitive")
	assert.Equal(t, []string{"Katha"}, names(reg.Search("ka")))
	assert.Equal(t, []string{"Jona"}, names(reg.Search("jo")))
	assert.Empty(t, reg.Search(""))
	assert.Empty(t, reg.Search("   "))
	assert.Empty(t, reg.Search("xyz"))
}

func TestMemberRegistrySortedByName(t *testing.T) {
	reg := NewMemberRegistry()
	require.NoError(t, reg.Add(newMember(t, "Lucas")))
	require.NoError(t, reg.Add(newMember(t, "Jona")))
	require.NoError(t, reg.Add(newMember(t, "Katha")))

	sorted := reg.SortedByName()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Jona", sorted[0].Name())
	assert.Equal(t, "Katha", sorted[1].Name())
	assert.Equal(t, "Lucas", sorted[2].Name())

	// Registration order is untouched.
	assert.Equal(t, "Lucas", reg.All()[0].Name())
}

func TestMemberRegistryAllIsACopy(t *testing.T) {
	reg := NewMemberRegistry()
	jona := newMember(t, "Jona")
	require.NoError(t, reg.Add(jona))

	all := reg.All()
	all[0] = nil
	got, ok := reg.ByName("Jona")
	require.True(t, ok)
	assert.Same(t, jona, got, "mutating the returned slice must not reach the registry")
}
