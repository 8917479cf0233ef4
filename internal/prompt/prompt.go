// Package prompt renders the copy-paste text block handed to an LLM chat.
// Output is a pure projection of its inputs: same candidates and squad in,
// byte-identical text out.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
	"github.com/speeddemonreturns/draft-waiver--assistant/internal/rank"
)

const rulesBlock = `🎯 Rules:
- Only suggest players not already owned
- Prefer players with high minutes, strong PPG, goal involvement, or clean sheets
- Suggest 1–2 picks and who they could replace

Who should I bring in this week and why?`

// NoCandidatesLine replaces the list body when every pool player is owned.
const NoCandidatesLine = "(no eligible players)"

// Build renders the full prompt for an already-ranked candidate list.
func Build(candidates []model.PlayerRecord, squadText string) string {
	var b strings.Builder
	b.WriteString("🟩 My Squad:\n")
	b.WriteString(squadText)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("🟢 Top %d Available Players:\n", rank.Limit))
	if len(candidates) == 0 {
		b.WriteString(NoCandidatesLine)
		b.WriteString("\n")
	} else {
		for _, p := range candidates {
			b.WriteString(CandidateLine(p))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(rulesBlock)
	return b.String()
}

// CandidateLine renders one player entry. PPG keeps one decimal; a missing
// value prints as "-" rather than a fake zero.
func CandidateLine(p model.PlayerRecord) string {
	ppg := "-"
	if p.PointsPerGame != nil {
		ppg = strconv.FormatFloat(*p.PointsPerGame, 'f', 1, 64)
	}
	return fmt.Sprintf("%s (%s, %s) – PPG:%s, G/A:%d/%d, CS:%d 🟢 Free Agent",
		p.Name, p.Position, p.Club, ppg, p.Goals, p.Assists, p.CleanSheets)
}
