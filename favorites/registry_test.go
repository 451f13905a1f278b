package favorites

import (
	"testing"

	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/walkers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() *walkers.Registry {
	r := walkers.NewRegistry()
	r.Add(walkers.WalkerInfo{ID: walkers.SelfID, Name: "Me", Location: geo.Point{Lat: 37.5665, Lng: 126.9780}, Online: true})
	r.Add(walkers.WalkerInfo{ID: "u1", Name: "Minsu Kim", Location: geo.Point{Lat: 37.5708, Lng: 126.9856}, Online: true})
	r.Add(walkers.WalkerInfo{ID: "u2", Name: "Yongnam Bae", Location: geo.Point{Lat: 37.5172, Lng: 127.0473}, Online: false})
	return r
}

func TestCreate(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)

	req, errMsg := reg.Create(walkers.SelfID, "u1")
	require.Empty(t, errMsg)
	require.NotNil(t, req)
	assert.Equal(t, walkers.SelfID, req.FromID)
	assert.Equal(t, "u1", req.ToID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.Equal(t, 1, reg.PendingCount())
}

func TestCreatePreconditionOrder(t *testing.T) {
	roster := testRoster()
	roster.SetFavorite("u2", true)
	reg := NewRegistry(roster)

	tests := []struct {
		name   string
		fromID string
		toID   string
		want   string
	}{
		{"unknown recipient", walkers.SelfID, "nobody", ErrNotFound},
		{"self request", walkers.SelfID, walkers.SelfID, ErrSelfRequest},
		{"already favorite", walkers.SelfID, "u2", ErrAlreadyFavorite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errMsg := reg.Create(tt.fromID, tt.toID)
			assert.Nil(t, req)
			assert.Equal(t, tt.want, errMsg)
			assert.Equal(t, 0, reg.PendingCount())
		})
	}
}

func TestCreateDeduplicates(t *testing.T) {
	reg := NewRegistry(testRoster())

	first, errMsg := reg.Create(walkers.SelfID, "u1")
	require.Empty(t, errMsg)

	second, errMsg := reg.Create(walkers.SelfID, "u1")
	assert.Nil(t, second)
	assert.Equal(t, ErrAlreadyRequested, errMsg)
	assert.Equal(t, 1, reg.PendingCount())

	// the original entry is untouched
	pending := reg.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
}

func TestAccept(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)

	req, errMsg := reg.Create(walkers.SelfID, "u1")
	require.Empty(t, errMsg)

	// the asymmetry is deliberate: exactly one record's flag changes
	success, resolved := reg.Accept(req.ID)
	require.True(t, success)
	assert.Equal(t, req.ID, resolved.ID)
	assert.Equal(t, 0, reg.PendingCount())

	target, _ := roster.Get("u1")
	assert.True(t, target.Favorite)
	origin, _ := roster.Get(walkers.SelfID)
	assert.False(t, origin.Favorite)
}

func TestAcceptTwiceFails(t *testing.T) {
	reg := NewRegistry(testRoster())
	req, _ := reg.Create(walkers.SelfID, "u1")

	success, _ := reg.Accept(req.ID)
	require.True(t, success)

	success, _ = reg.Accept(req.ID)
	assert.False(t, success)
}

func TestAcceptUnknownID(t *testing.T) {
	reg := NewRegistry(testRoster())

	success, _ := reg.Accept(uuid.Must(uuid.NewV7()))
	assert.False(t, success)
}

func TestDeclineNeverMutatesRoster(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)
	req, _ := reg.Create("u1", "u2")

	before := roster.All()
	success, resolved := reg.Decline(req.ID)
	require.True(t, success)
	assert.Equal(t, req.ID, resolved.ID)
	assert.Equal(t, 0, reg.PendingCount())
	assert.Equal(t, before, roster.All())

	success, _ = reg.Decline(req.ID)
	assert.False(t, success)
}

func TestReRequestAfterResolution(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)

	req, _ := reg.Create("u1", "u2")
	success, _ := reg.Decline(req.ID)
	require.True(t, success)

	again, errMsg := reg.Create("u1", "u2")
	require.Empty(t, errMsg)
	assert.NotEqual(t, req.ID, again.ID)
}

func TestRemoveFavorite(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)

	// full cycle: request, accept, revoke, re-request
	req, _ := reg.Create(walkers.SelfID, "u1")
	success, _ := reg.Accept(req.ID)
	require.True(t, success)

	u1, _ := roster.Get("u1")
	require.True(t, u1.Favorite)

	require.True(t, reg.RemoveFavorite("u1"))
	u1, _ = roster.Get("u1")
	assert.False(t, u1.Favorite)

	// revoking twice stays a success, the flag is simply already false
	assert.True(t, reg.RemoveFavorite("u1"))
	assert.False(t, reg.RemoveFavorite("nobody"))

	// a fresh request for the same pair is accepted again, no cooldown
	fresh, errMsg := reg.Create(walkers.SelfID, "u1")
	require.Empty(t, errMsg)
	assert.NotNil(t, fresh)
}

func TestRequestIDsAreCreationOrdered(t *testing.T) {
	reg := NewRegistry(testRoster())

	a, _ := reg.Create(walkers.SelfID, "u1")
	b, _ := reg.Create(walkers.SelfID, "u2")
	c, _ := reg.Create("u1", "u2")

	// v7 ids sort by generation time, the display-order tie-break
	assert.Equal(t, -1, compareUUID(a.ID, b.ID))
	assert.Equal(t, -1, compareUUID(b.ID, c.ID))

	pending := reg.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, []uuid.UUID{pending[0].ID, pending[1].ID, pending[2].ID})
}

func TestScenarioSeoulRoster(t *testing.T) {
	roster := testRoster()
	reg := NewRegistry(roster)

	req, errMsg := reg.Create(walkers.SelfID, "u1")
	require.Empty(t, errMsg)

	_, errMsg = reg.Create(walkers.SelfID, "u1")
	assert.Equal(t, ErrAlreadyRequested, errMsg)

	success, _ := reg.Accept(req.ID)
	require.True(t, success)

	u1, _ := roster.Get("u1")
	assert.True(t, u1.Favorite)
	assert.Equal(t, 0, reg.PendingCount())

	success, _ = reg.Accept(req.ID)
	assert.False(t, success)
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
