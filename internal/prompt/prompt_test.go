package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
)

func ppg(v float64) *float64 { return &v }

func TestBuild(t *testing.T) {
	candidates := []model.PlayerRecord{
		{Name: "Erling Haaland", Position: "FWD", Club: "MCI", PointsPerGame: ppg(8.25), Goals: 17, Assists: 2},
		{Name: "Unknown Quantity", Position: "MID", Club: "CHE", Goals: 0, Assists: 0, CleanSheets: 0},
	}
	squad := "GK: Pickford\nDEF: Saliba\nMID: Palmer\nFWD: Isak"

	out := Build(candidates, squad)

	assert.True(t, strings.HasPrefix(out, "🟩 My Squad:\nGK: Pickford\n"))
	assert.Contains(t, out, "🟢 Top 25 Available Players:\n")
	assert.Contains(t, out, "Erling Haaland (FWD, MCI) – PPG:8.2, G/A:17/2, CS:0 🟢 Free Agent")
	assert.Contains(t, out, "Unknown Quantity (MID, CHE) – PPG:-,", "missing PPG renders as dash")
	assert.Contains(t, out, "Who should I bring in this week and why?")
	assert.NotContains(t, out, NoCandidatesLine)

	// Candidate order is preserved exactly as given.
	assert.Less(t, strings.Index(out, "Erling Haaland"), strings.Index(out, "Unknown Quantity"))
}

func TestBuildIsIdempotent(t *testing.T) {
	candidates := []model.PlayerRecord{
		{Name: "A", Position: "MID", Club: "LIV", PointsPerGame: ppg(5.0)},
	}
	first := Build(candidates, "GK: X\nDEF: \nMID: \nFWD: ")
	second := Build(candidates, "GK: X\nDEF: \nMID: \nFWD: ")
	require.Equal(t, first, second, "same input must yield byte-identical output")
}

func TestBuildEmptyCandidates(t *testing.T) {
	out := Build(nil, "GK: \nDEF: \nMID: \nFWD: ")
	assert.Contains(t, out, NoCandidatesLine)
	assert.Contains(t, out, "🎯 Rules:", "preamble and rules survive an empty list")
}

func TestCandidateLineFormatsOneDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"Rounds", ppg(7.86), "PPG:7.9"},
		{"PadsWhole", ppg(5.0), "PPG:5.0"},
		{"Zero", ppg(0.0), "PPG:0.0"},
		{"Missing", nil, "PPG:-"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := CandidateLine(model.PlayerRecord{Name: "P", PointsPerGame: tc.in})
			assert.Contains(t, line, tc.want)
		})
	}
}
