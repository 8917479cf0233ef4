package fetch

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
)

// PlayersCSV returns the raw body of the league-wide player statistics CSV.
func (c *Client) PlayersCSV(force bool) ([]byte, error) {
	body, _, err := c.get("/players/csv", "players/players.csv", force)
	return body, err
}

// DraftPicks returns the pick list for a league. The endpoint serves either a
// bare array or an object with a "picks" key, and field names drift between
// camelCase and snake_case, so the rows are decoded loosely and normalized.
func (c *Client) DraftPicks(leagueID string, force bool) ([]model.DraftPick, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	body, _, err := c.get(
		fmt.Sprintf("/v1/league/%s/draft", leagueID),
		fmt.Sprintf("league/%s/draft.json", leagueID),
		force,
	)
	if err != nil {
		return nil, err
	}
	return parseDraftPicks(body)
}

func parseDraftPicks(body []byte) ([]model.DraftPick, error) {
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		var wrapped struct {
			Picks []map[string]any `json:"picks"`
		}
		if err2 := json.Unmarshal(body, &wrapped); err2 != nil {
			return nil, fmt.Errorf("draft feed: %w", err)
		}
		rows = wrapped.Picks
	}

	picks := make([]model.DraftPick, 0, len(rows))
	for _, row := range rows {
		p := model.DraftPick{
			TeamID:         stringField(row, "teamId", "team_id"),
			TeamName:       stringField(row, "teamName", "team_name"),
			PlayerID:       stringField(row, "playerId", "player_id", "id"),
			PlayerName:     stringField(row, "playerName", "player_name"),
			PlayerPosition: intField(row, "playerPosition", "player_position"),
		}
		if p.PlayerName == "" && p.PlayerID == "" {
			continue
		}
		picks = append(picks, p)
	}
	return picks, nil
}

// stringField returns the first present key coerced to a string; numeric ids
// come back as JSON numbers on some responses.
func stringField(row map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := row[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

func intField(row map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := row[k].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}
