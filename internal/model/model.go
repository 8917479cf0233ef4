package model

// PlayerRecord is one row of the DraftFantasy players CSV.
// PointsPerGame is nil when the feed left the field blank or unparseable;
// such players rank below everyone with a real value.
type PlayerRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NormName      string   `json:"-"`
	Club          string   `json:"club"`
	Position      string   `json:"position"`
	PointsPerGame *float64 `json:"points_per_game"`
	TotalPoints   int      `json:"total_points"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	CleanSheets   int      `json:"clean_sheets"`
	Minutes       int      `json:"minutes"`
}

// DraftPick is one entry of the league draft feed, normalized from the
// key variants the endpoint serves (teamId/team_id etc.).
type DraftPick struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	PlayerPosition int    `json:"player_position"`
}

// OwnershipSet is an immutable snapshot of which stats-feed player ids are
// rostered in the league, with the owning team name for display.
type OwnershipSet struct {
	ownerByID map[string]string
}

func NewOwnershipSet() *OwnershipSet {
	return &OwnershipSet{ownerByID: make(map[string]string)}
}

// Add records id as owned by team. The first owner wins; the draft feed can
// repeat a player across rounds after waiver churn.
func (s *OwnershipSet) Add(id string, team string) {
	if id == "" {
		return
	}
	if _, ok := s.ownerByID[id]; ok {
		return
	}
	if team == "" {
		team = "-"
	}
	s.ownerByID[id] = team
}

func (s *OwnershipSet) Owned(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ownerByID[id]
	return ok
}

// Owner returns the owning team name, or "-" for free agents.
func (s *OwnershipSet) Owner(id string) string {
	if s == nil {
		return "-"
	}
	if t, ok := s.ownerByID[id]; ok {
		return t
	}
	return "-"
}

func (s *OwnershipSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ownerByID)
}
