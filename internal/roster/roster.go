// Package roster reduces the league feeds to an ownership snapshot and the
// requesting team's squad text. The stats CSV and the draft feed do not share
// ids, so ownership is joined on normalized player names.
package roster

import (
	"fmt"
	"strings"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/fetch"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/names"
)

// positionNames maps the draft feed's numeric positions. Unknown positions
// are dropped from squad display but still count for ownership.
var positionNames = map[int]string{
	1: "GK",
	2: "DEF",
	3: "MID",
	4: "FWD",
}

// OwnershipFromPicks builds the ownership snapshot by joining pick names
// against the stats pool. A pick whose name matches no pool row contributes
// nothing; that player cannot appear as a candidate anyway.
func OwnershipFromPicks(picks []model.DraftPick, players []model.PlayerRecord) *model.OwnershipSet {
	ownerByName := make(map[string]string, len(picks))
	for _, p := range picks {
		key := names.Normalize(p.PlayerName)
		if key == "" {
			continue
		}
		if _, ok := ownerByName[key]; !ok {
			ownerByName[key] = p.TeamName
		}
	}

	owned := model.NewOwnershipSet()
	for _, pl := range players {
		if team, ok := ownerByName[pl.NormName]; ok {
			owned.Add(pl.ID, team)
		}
	}
	return owned
}

// MergeLive folds a live roster payload into owned. Live player ids are the
// platform's own, the same id space as the stats CSV, so they join directly;
// this catches waiver pickups the draft feed has no record of.
func MergeLive(owned *model.OwnershipSet, lr *fetch.LiveRosters) {
	if owned == nil || lr == nil {
		return
	}
	for pid, team := range lr.OwnerByPlayer {
		owned.Add(pid, team)
	}
}

// SquadText renders the four-line GK/DEF/MID/FWD block for teamID from the
// draft picks. Lines for empty positions stay, with no names after the colon,
// so the prompt shape is stable.
func SquadText(picks []model.DraftPick, teamID string) string {
	byPos := map[string][]string{}
	for _, p := range picks {
		if p.TeamID != teamID {
			continue
		}
		pos, ok := positionNames[p.PlayerPosition]
		if !ok || p.PlayerName == "" {
			continue
		}
		byPos[pos] = append(byPos[pos], p.PlayerName)
	}
	return fmt.Sprintf("GK: %s\nDEF: %s\nMID: %s\nFWD: %s",
		strings.Join(byPos["GK"], ", "),
		strings.Join(byPos["DEF"], ", "),
		strings.Join(byPos["MID"], ", "),
		strings.Join(byPos["FWD"], ", "),
	)
}

// SquadSize counts picks belonging to teamID, display-eligible or not.
func SquadSize(picks []model.DraftPick, teamID string) int {
	n := 0
	for _, p := range picks {
		if p.TeamID == teamID {
			n++
		}
	}
	return n
}
