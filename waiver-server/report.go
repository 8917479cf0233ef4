package main

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/config"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/fetch"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/prompt"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/rank"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/roster"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/statcsv"
)

type ServerConfig struct {
	Cfg   *config.Config
	Fetch *fetch.Client
	Log   *logrus.Entry
}

// WaiverReportArgs select the league and team; both default to the
// configured ids so a bare call works.
type WaiverReportArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"League id (defaults to the configured league)"`
	TeamID   string `json:"team_id,omitempty" jsonschema:"Team id whose squad heads the prompt (defaults to the configured team)"`
	Refresh  bool   `json:"refresh,omitempty" jsonschema:"Bypass the snapshot cache and refetch the feeds"`
}

// CandidateInfo is one ranked free agent as shown to the user.
type CandidateInfo struct {
	Rank          int      `json:"rank"`
	PlayerID      string   `json:"player_id"`
	Name          string   `json:"name"`
	Club          string   `json:"club"`
	Position      string   `json:"position"`
	PointsPerGame *float64 `json:"points_per_game"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	CleanSheets   int      `json:"clean_sheets"`
	Minutes       int      `json:"minutes"`
}

// PPG renders the points-per-game cell for display: one decimal, or a dash
// when the feed had no value.
func (ci CandidateInfo) PPG() string {
	if ci.PointsPerGame == nil {
		return "-"
	}
	return strconv.FormatFloat(*ci.PointsPerGame, 'f', 1, 64)
}

// WaiverReport is the full product of one fetch->rank->format pass.
type WaiverReport struct {
	LeagueID       string          `json:"league_id"`
	TeamID         string          `json:"team_id"`
	Source         string          `json:"source"`
	PoolSize       int             `json:"pool_size"`
	OwnedCount     int             `json:"owned_count"`
	SkippedRows    int             `json:"skipped_rows,omitempty"`
	Squad          string          `json:"squad"`
	Candidates     []CandidateInfo `json:"candidates"`
	Prompt         string          `json:"prompt"`
	Warnings       []string        `json:"warnings,omitempty"`
	GeneratedAtUTC string          `json:"generated_at_utc"`

	owned *model.OwnershipSet
	pool  []model.PlayerRecord
}

// buildWaiverReport runs the whole pipeline once. A failed feed fetch stops
// it; a malformed CSV row only skips that row.
func buildWaiverReport(s ServerConfig, args WaiverReportArgs) (*WaiverReport, error) {
	leagueID := args.LeagueID
	if leagueID == "" {
		leagueID = s.Cfg.LeagueID
	}
	teamID := args.TeamID
	if teamID == "" {
		teamID = s.Cfg.TeamID
	}

	csvBody, err := s.Fetch.PlayersCSV(args.Refresh)
	if err != nil {
		return nil, fmt.Errorf("stats feed: %w", err)
	}
	players, skipped, err := statcsv.Parse(bytes.NewReader(csvBody))
	if err != nil {
		return nil, err
	}

	picks, err := s.Fetch.DraftPicks(leagueID, args.Refresh)
	if err != nil {
		return nil, fmt.Errorf("draft feed: %w", err)
	}

	owned := roster.OwnershipFromPicks(picks, players)

	var warnings []string
	source := "draft"
	live, err := s.Fetch.LiveRosters(leagueID)
	switch {
	case err != nil:
		warnings = append(warnings,
			"live roster endpoint not found; ownership reflects the draft feed only")
	default:
		roster.MergeLive(owned, live)
		source = live.Source
		if len(live.IDsByTeam[teamID]) == 0 {
			warnings = append(warnings,
				"live roster did not list your team; squad comes from the draft feed")
		}
	}

	squad := roster.SquadText(picks, teamID)
	if roster.SquadSize(picks, teamID) == 0 {
		warnings = append(warnings,
			fmt.Sprintf("no squad found for team %s; check the team id", teamID))
	}

	candidates := rank.Rank(players, owned)

	report := &WaiverReport{
		LeagueID:       leagueID,
		TeamID:         teamID,
		Source:         source,
		PoolSize:       len(players),
		OwnedCount:     owned.Len(),
		SkippedRows:    skipped,
		Squad:          squad,
		Candidates:     make([]CandidateInfo, 0, len(candidates)),
		Prompt:         prompt.Build(candidates, squad),
		Warnings:       warnings,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		owned:          owned,
		pool:           players,
	}
	for i, p := range candidates {
		report.Candidates = append(report.Candidates, CandidateInfo{
			Rank:          i + 1,
			PlayerID:      p.ID,
			Name:          p.Name,
			Club:          p.Club,
			Position:      p.Position,
			PointsPerGame: p.PointsPerGame,
			Goals:         p.Goals,
			Assists:       p.Assists,
			CleanSheets:   p.CleanSheets,
			Minutes:       p.Minutes,
		})
	}

	s.Log.WithFields(logrus.Fields{
		"league":     leagueID,
		"pool":       report.PoolSize,
		"owned":      report.OwnedCount,
		"candidates": len(report.Candidates),
		"source":     source,
	}).Info("built waiver report")

	return report, nil
}
