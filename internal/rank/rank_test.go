package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
)

func player(id string, ppg *float64) model.PlayerRecord {
	return model.PlayerRecord{ID: id, Name: "Player " + id, PointsPerGame: ppg}
}

func ppg(v float64) *float64 { return &v }

func owned(ids ...string) *model.OwnershipSet {
	s := model.NewOwnershipSet()
	for _, id := range ids {
		s.Add(id, "Someone")
	}
	return s
}

func TestRankFiltersSortsAndHandlesMissingPPG(t *testing.T) {
	// {1:5.2, 2:7.8, 3:missing}, owned={2} ranks as [1, 3].
	players := []model.PlayerRecord{
		player("1", ppg(5.2)),
		player("2", ppg(7.8)),
		player("3", nil),
	}

	got := Rank(players, owned("2"))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID, "missing PPG sorts last, not first")
}

func TestRankExcludesAllOwned(t *testing.T) {
	players := []model.PlayerRecord{
		player("1", ppg(5.0)),
		player("2", ppg(6.0)),
	}
	got := Rank(players, owned("1", "2"))
	assert.Empty(t, got)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, owned()))
	assert.Empty(t, Rank(nil, nil))
}

func TestRankDeduplicatesKeepingFirst(t *testing.T) {
	first := player("1", ppg(4.0))
	first.Club = "LIV"
	dup := player("1", ppg(9.0))
	dup.Club = "MCI"

	got := Rank([]model.PlayerRecord{first, dup}, owned())
	require.Len(t, got, 1)
	assert.Equal(t, "LIV", got[0].Club, "first occurrence wins")
}

func TestRankTruncatesToLimit(t *testing.T) {
	players := make([]model.PlayerRecord, 0, Limit+10)
	for i := 0; i < Limit+10; i++ {
		players = append(players, player(fmt.Sprintf("p%03d", i), ppg(float64(i))))
	}
	got := Rank(players, owned())
	require.Len(t, got, Limit)
	assert.Equal(t, fmt.Sprintf("p%03d", Limit+9), got[0].ID, "highest PPG first")
}

func TestRankOrderIsTotal(t *testing.T) {
	players := []model.PlayerRecord{
		player("b", ppg(5.0)),
		player("a", ppg(5.0)),
		player("d", nil),
		player("c", nil),
		player("e", ppg(0.0)),
	}

	got := Rank(players, owned())
	require.Len(t, got, 5)

	// Ties break ascending by id; zero beats missing.
	wantOrder := []string{"a", "b", "e", "c", "d"}
	for i, id := range wantOrder {
		assert.Equal(t, id, got[i].ID, "position %d", i)
	}

	for i := 1; i < len(got); i++ {
		prev, cur := sortKey(got[i-1]), sortKey(got[i])
		assert.GreaterOrEqual(t, prev, cur, "PPG must be non-increasing")
		if prev == cur {
			assert.LessOrEqual(t, got[i-1].ID, got[i].ID)
		}
	}
}

func TestRankNoOwnedLeaksThrough(t *testing.T) {
	players := make([]model.PlayerRecord, 0, 40)
	ownedIDs := make([]string, 0, 20)
	for i := 0; i < 40; i++ {
		id := fmt.Sprintf("p%02d", i)
		players = append(players, player(id, ppg(float64(i%7))))
		if i%2 == 0 {
			ownedIDs = append(ownedIDs, id)
		}
	}
	got := Rank(players, owned(ownedIDs...))
	set := owned(ownedIDs...)
	for _, p := range got {
		assert.False(t, set.Owned(p.ID), "owned player %s in result", p.ID)
	}
	assert.Len(t, got, 20)
}
