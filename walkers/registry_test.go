package walkers

import (
	"testing"

	"github.com/WaggleHQ/waggle/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	r := NewRegistry()
	r.Add(WalkerInfo{ID: SelfID, Name: "Me", DogName: "My dog", Location: geo.Point{Lat: 37.5665, Lng: 126.9780}, Online: true})
	r.Add(WalkerInfo{ID: "u1", Name: "Minsu Kim", DogName: "Kong", Location: geo.Point{Lat: 37.5708, Lng: 126.9856}, Online: true})
	r.Add(WalkerInfo{ID: "u2", Name: "Yongnam Bae", DogName: "Latte", Location: geo.Point{Lat: 37.5172, Lng: 127.0473}, Online: false, Favorite: true})
	return r
}

func TestGet(t *testing.T) {
	r := testRegistry()

	info, ok := r.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "Minsu Kim", info.Name)

	_, ok = r.Get("nobody")
	assert.False(t, ok)
}

func TestSetFavorite(t *testing.T) {
	r := testRegistry()

	require.True(t, r.SetFavorite("u1", true))
	info, _ := r.Get("u1")
	assert.True(t, info.Favorite)

	// idempotent
	require.True(t, r.SetFavorite("u1", true))
	info, _ = r.Get("u1")
	assert.True(t, info.Favorite)

	require.True(t, r.SetFavorite("u1", false))
	info, _ = r.Get("u1")
	assert.False(t, info.Favorite)

	assert.False(t, r.SetFavorite("nobody", true))
}

func TestUpdateStatusAndLocation(t *testing.T) {
	r := testRegistry()

	require.True(t, r.UpdateStatus("u1", "At Namsan Park right now!"))
	info, _ := r.Get("u1")
	assert.Equal(t, "At Namsan Park right now!", info.Status)

	loc := geo.Point{Lat: 37.5665, Lng: 126.9780}
	require.True(t, r.UpdateLocation("u1", loc))
	info, _ = r.Get("u1")
	assert.Equal(t, loc, info.Location)

	assert.False(t, r.UpdateStatus("nobody", "x"))
	assert.False(t, r.UpdateLocation("nobody", loc))
}

func TestUpdateProfilePreservesLocationAndPresence(t *testing.T) {
	r := testRegistry()
	before, _ := r.Get("u1")

	require.True(t, r.UpdateProfile("u1", ProfileUpdate{
		Name:     "Minsu K.",
		DogName:  "Kongi",
		DogBreed: "Golden Retriever",
		Status:   "New status",
	}))

	after, _ := r.Get("u1")
	assert.Equal(t, "Minsu K.", after.Name)
	assert.Equal(t, "Kongi", after.DogName)
	assert.Equal(t, "Golden Retriever", after.DogBreed)
	assert.Equal(t, "New status", after.Status)
	assert.Equal(t, before.Location, after.Location)
	assert.Equal(t, before.Online, after.Online)
}

func TestSetOnlineAdvancesLastSeen(t *testing.T) {
	r := testRegistry()
	before, _ := r.Get("u2")
	assert.Nil(t, before.LastSeen)

	require.True(t, r.SetOnline("u2", true))
	after, _ := r.Get("u2")
	assert.True(t, after.Online)
	require.NotNil(t, after.LastSeen)

	first := *after.LastSeen
	require.True(t, r.SetOnline("u2", false))
	after, _ = r.Get("u2")
	assert.False(t, after.Online)
	assert.False(t, after.LastSeen.Before(first))
}

func TestListSnapshotsPreserveInsertionOrder(t *testing.T) {
	r := testRegistry()

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, SelfID, all[0].ID)
	assert.Equal(t, "u1", all[1].ID)
	assert.Equal(t, "u2", all[2].ID)

	online := r.Online()
	require.Len(t, online, 2)
	assert.Equal(t, SelfID, online[0].ID)
	assert.Equal(t, "u1", online[1].ID)

	r.SetFavorite("u1", true)
	favs := r.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "u1", favs[0].ID)
	assert.Equal(t, "u2", favs[1].ID)
}

func TestCounts(t *testing.T) {
	r := testRegistry()

	assert.Equal(t, 3, r.Size())
	assert.Equal(t, 2, r.OnlineCount())
	assert.Equal(t, 1, r.FavoriteCount())

	r.SetFavorite("u1", true)
	assert.Equal(t, 2, r.FavoriteCount())

	// population is fixed, re-adding an id replaces rather than grows
	r.Add(WalkerInfo{ID: "u1", Name: "Replaced"})
	assert.Equal(t, 3, r.Size())
}
