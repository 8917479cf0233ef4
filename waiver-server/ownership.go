package main

import (
	"fmt"
	"sort"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/roster"
)

// LeagueOwnershipArgs are the inputs for the league_ownership tool.
type LeagueOwnershipArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"League id (defaults to the configured league)"`
	Refresh  bool   `json:"refresh,omitempty" jsonschema:"Bypass the snapshot cache and refetch the feeds"`
}

// OwnedPlayerInfo is one rostered player with its owning team.
type OwnedPlayerInfo struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Club     string `json:"club"`
	Position string `json:"position"`
	Owner    string `json:"owner"`
}

// LeagueOwnershipOutput is the output of the league_ownership tool.
type LeagueOwnershipOutput struct {
	LeagueID   string            `json:"league_id"`
	Source     string            `json:"source"`
	Owned      []OwnedPlayerInfo `json:"owned"`
	FreeAgents int               `json:"free_agents"`
}

func buildLeagueOwnership(s ServerConfig, args LeagueOwnershipArgs) (LeagueOwnershipOutput, error) {
	rep, err := buildWaiverReport(s, WaiverReportArgs{LeagueID: args.LeagueID, Refresh: args.Refresh})
	if err != nil {
		return LeagueOwnershipOutput{}, err
	}

	out := LeagueOwnershipOutput{LeagueID: rep.LeagueID, Source: rep.Source}
	for _, p := range rep.pool {
		if !rep.owned.Owned(p.ID) {
			out.FreeAgents++
			continue
		}
		out.Owned = append(out.Owned, OwnedPlayerInfo{
			PlayerID: p.ID,
			Name:     p.Name,
			Club:     p.Club,
			Position: p.Position,
			Owner:    rep.owned.Owner(p.ID),
		})
	}
	sort.Slice(out.Owned, func(i, j int) bool {
		if out.Owned[i].Owner != out.Owned[j].Owner {
			return out.Owned[i].Owner < out.Owned[j].Owner
		}
		return out.Owned[i].Name < out.Owned[j].Name
	})
	return out, nil
}

// MySquadArgs are the inputs for the my_squad tool.
type MySquadArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"League id (defaults to the configured league)"`
	TeamID   string `json:"team_id,omitempty" jsonschema:"Team id (defaults to the configured team)"`
	Refresh  bool   `json:"refresh,omitempty" jsonschema:"Bypass the snapshot cache and refetch the draft feed"`
}

// MySquadOutput is the output of the my_squad tool.
type MySquadOutput struct {
	LeagueID string `json:"league_id"`
	TeamID   string `json:"team_id"`
	Size     int    `json:"size"`
	Squad    string `json:"squad"`
}

// buildMySquad only needs the draft feed, so it skips the stats CSV.
func buildMySquad(s ServerConfig, args MySquadArgs) (MySquadOutput, error) {
	leagueID := args.LeagueID
	if leagueID == "" {
		leagueID = s.Cfg.LeagueID
	}
	teamID := args.TeamID
	if teamID == "" {
		teamID = s.Cfg.TeamID
	}

	picks, err := s.Fetch.DraftPicks(leagueID, args.Refresh)
	if err != nil {
		return MySquadOutput{}, fmt.Errorf("draft feed: %w", err)
	}

	return MySquadOutput{
		LeagueID: leagueID,
		TeamID:   teamID,
		Size:     roster.SquadSize(picks, teamID),
		Squad:    roster.SquadText(picks, teamID),
	}, nil
}
