package fetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoLiveSource means none of the candidate live roster endpoints answered
// with usable JSON. Callers fall back to the draft picks feed.
var ErrNoLiveSource = errors.New("no live roster endpoint answered")

// liveEndpoints are probed in order; the API has moved this resource between
// versions and not every league has all of them enabled.
var liveEndpoints = []string{
	"/v1/league/%s/players",
	"/v1/league/%s/teams",
	"/league/%s/players",
	"/league/%s/teams",
}

// LiveRosters is the current in-season ownership state, when a live endpoint
// is reachable. Unlike the draft feed this reflects waiver moves made after
// the initial draft.
type LiveRosters struct {
	OwnerByPlayer map[string]string   // player id -> team name
	IDsByTeam     map[string][]string // team id -> player ids
	Source        string              // endpoint template that answered
}

// LiveRosters probes the candidate endpoints and returns the first payload
// that yields any ownership data. Probes are never cached; the point of the
// live source is that it is live.
func (c *Client) LiveRosters(leagueID string) (*LiveRosters, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	for _, tmpl := range liveEndpoints {
		body, contentType, err := c.get(fmt.Sprintf(tmpl, leagueID), "", true)
		if err != nil {
			c.Log.WithError(err).WithField("endpoint", tmpl).Debug("live roster probe failed")
			continue
		}
		if contentType != "" && !strings.Contains(contentType, "application/json") {
			continue
		}
		lr := parseLiveRosters(body)
		if lr == nil {
			continue
		}
		lr.Source = tmpl
		c.Log.WithField("endpoint", tmpl).Info("using live roster source")
		return lr, nil
	}
	return nil, ErrNoLiveSource
}

// parseLiveRosters accepts the two shapes the endpoints serve: a bare list of
// player-like records, or an object carrying "players" and/or "teams" (teams
// with nested squads). Returns nil when nothing ownership-shaped is present.
func parseLiveRosters(body []byte) *LiveRosters {
	lr := &LiveRosters{
		OwnerByPlayer: make(map[string]string),
		IDsByTeam:     make(map[string][]string),
	}

	var list []map[string]any
	if err := json.Unmarshal(body, &list); err == nil {
		for _, item := range list {
			lr.addPlayerRow(item)
		}
		return lr.orNil()
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil
	}

	for _, key := range []string{"players", "data"} {
		if rows, ok := obj[key].([]any); ok {
			for _, r := range rows {
				if item, ok := r.(map[string]any); ok {
					lr.addPlayerRow(item)
				}
			}
			if len(lr.OwnerByPlayer) > 0 {
				break
			}
		}
	}

	if teams, ok := obj["teams"].([]any); ok {
		for _, t := range teams {
			team, ok := t.(map[string]any)
			if !ok {
				continue
			}
			teamID := stringField(team, "teamId", "id", "team_id")
			teamName := stringField(team, "teamName", "name")
			roster, ok := team["players"].([]any)
			if !ok {
				roster, _ = team["squad"].([]any)
			}
			ids := make([]string, 0, len(roster))
			for _, r := range roster {
				p, ok := r.(map[string]any)
				if !ok {
					continue
				}
				pid := stringField(p, "playerId", "id", "player_id")
				if pid == "" {
					continue
				}
				owner := teamName
				if owner == "" {
					owner = "-"
				}
				if _, seen := lr.OwnerByPlayer[pid]; !seen {
					lr.OwnerByPlayer[pid] = owner
				}
				ids = append(ids, pid)
			}
			if teamID != "" && len(ids) > 0 {
				lr.IDsByTeam[teamID] = ids
			}
		}
	}

	return lr.orNil()
}

func (lr *LiveRosters) addPlayerRow(item map[string]any) {
	pid := stringField(item, "playerId", "id", "player_id")
	owner := stringField(item, "teamName", "owner", "team")
	teamID := stringField(item, "teamId", "team_id")
	if pid == "" {
		return
	}
	if owner == "" {
		owner = "-"
	}
	if _, seen := lr.OwnerByPlayer[pid]; !seen {
		lr.OwnerByPlayer[pid] = owner
	}
	if teamID != "" {
		lr.IDsByTeam[teamID] = append(lr.IDsByTeam[teamID], pid)
	}
}

func (lr *LiveRosters) orNil() *LiveRosters {
	if len(lr.OwnerByPlayer) == 0 && len(lr.IDsByTeam) == 0 {
		return nil
	}
	return lr
}
