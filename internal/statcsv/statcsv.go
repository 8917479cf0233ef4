// Package statcsv decodes the DraftFantasy player statistics CSV into
// PlayerRecords. The feed's header names have drifted over time, so columns
// are resolved through an alias table; malformed rows are skipped, never
// fatal.
package statcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/names"
)

// columnAliases maps a canonical column to the header spellings the feed has
// used. Matching is case-insensitive with spaces squeezed out.
var columnAliases = map[string][]string{
	"id":       {"id", "playerid", "player_id"},
	"name":     {"name", "playername"},
	"club":     {"club", "team"},
	"position": {"position", "pos"},
	"ppg":      {"pointspergame", "pointpergame", "ppg"},
	"total":    {"totalpoints", "points"},
	"goals":    {"goals"},
	"assists":  {"assists"},
	"cs":       {"cleansheets"},
	"minutes":  {"minutes", "minutesplayed"},
}

// Parse reads the stats feed. It returns the decoded records and the number
// of rows skipped as malformed. Duplicate ids are preserved; deduplication is
// the ranker's job. The only hard error is a header without a name column.
func Parse(r io.Reader) ([]model.PlayerRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("stats feed header: %w", err)
	}
	cols := resolveColumns(header)
	if _, ok := cols["name"]; !ok {
		return nil, 0, fmt.Errorf("stats feed header has no name column: %v", header)
	}

	var players []model.PlayerRecord
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(rec) != len(header) {
			skipped++
			continue
		}

		name := strings.TrimSpace(column(rec, cols, "name"))
		if name == "" {
			skipped++
			continue
		}

		p := model.PlayerRecord{
			Name:          name,
			NormName:      names.Normalize(name),
			Club:          strings.TrimSpace(column(rec, cols, "club")),
			Position:      strings.TrimSpace(column(rec, cols, "position")),
			PointsPerGame: floatColumn(rec, cols, "ppg"),
			TotalPoints:   intColumn(rec, cols, "total"),
			Goals:         intColumn(rec, cols, "goals"),
			Assists:       intColumn(rec, cols, "assists"),
			CleanSheets:   intColumn(rec, cols, "cs"),
			Minutes:       intColumn(rec, cols, "minutes"),
		}
		p.ID = strings.TrimSpace(column(rec, cols, "id"))
		if p.ID == "" {
			// Feed exports without an id column fall back to the normalized
			// name, which is the join key the draft feed uses anyway.
			p.ID = p.NormName
		}
		players = append(players, p)
	}
	return players, skipped, nil
}

func resolveColumns(header []string) map[string]int {
	byKey := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "")
		if _, ok := byKey[key]; !ok {
			byKey[key] = i
		}
	}
	cols := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		for _, a := range aliases {
			if idx, ok := byKey[a]; ok {
				cols[canonical] = idx
				break
			}
		}
	}
	return cols
}

func column(rec []string, cols map[string]int, key string) string {
	idx, ok := cols[key]
	if !ok || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

// floatColumn returns nil for absent, blank, or non-numeric values so callers
// can tell "no data" apart from 0.0.
func floatColumn(rec []string, cols map[string]int, key string) *float64 {
	s := strings.TrimSpace(column(rec, cols, key))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func intColumn(rec []string, cols map[string]int, key string) int {
	s := strings.TrimSpace(column(rec, cols, key))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Some exports write integer stats as "3.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
