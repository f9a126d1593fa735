package draft

// Config describes the shape of a snake draft.
type Config struct {
	NumTeams      int `json:"num_teams"`
	UserDraftSlot int `json:"user_draft_slot"`
	RosterSize    int `json:"roster_size"`
}

// Validate checks that the configuration can start a draft.
func (c Config) Validate() error {
	if c.NumTeams < 1 {
		return &ConfigurationError{Field: "num_teams", Value: c.NumTeams, Reason: "must be positive"}
	}
	if c.RosterSize < 1 {
		return &ConfigurationError{Field: "roster_size", Value: c.RosterSize, Reason: "must be positive"}
	}
	if c.UserDraftSlot < 1 || c.UserDraftSlot > c.NumTeams {
		return &ConfigurationError{Field: "user_draft_slot", Value: c.UserDraftSlot, Reason: "must be between 1 and num_teams"}
	}
	return nil
}

// State is the serpentine turn-order state machine. It owns team rosters
// and the round/pick cursor. Mutation goes through RecordPick/AdvancePick
// only; the state assumes a single writer and becomes effectively frozen
// once every roster reaches capacity.
type State struct {
	Config Config `json:"config"`

	Round           int              `json:"round"`
	CurrentPickTeam int              `json:"current_pick_team"`
	DraftOrder      []int            `json:"draft_order"`
	DraftedPlayers  []string         `json:"drafted_players"`
	TeamRosters     map[int][]string `json:"team_rosters"`

	drafted map[string]bool
}

// NewState creates a fresh draft in round 1 with empty rosters and the
// natural order 1..N.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	order := make([]int, cfg.NumTeams)
	rosters := make(map[int][]string, cfg.NumTeams)
	for i := 1; i <= cfg.NumTeams; i++ {
		order[i-1] = i
		rosters[i] = []string{}
	}

	return &State{
		Config:          cfg,
		Round:           1,
		CurrentPickTeam: 1,
		DraftOrder:      order,
		DraftedPlayers:  []string{},
		TeamRosters:     rosters,
		drafted:         make(map[string]bool),
	}, nil
}

// UserTeamID returns the team ID the user drafts for.
func (s *State) UserTeamID() int {
	return s.Config.UserDraftSlot
}

// IsUserTurn reports whether the user's team is on the clock.
func (s *State) IsUserTurn() bool {
	return s.CurrentPickTeam == s.UserTeamID()
}

// IsComplete reports whether every roster has reached capacity.
func (s *State) IsComplete() bool {
	for _, roster := range s.TeamRosters {
		if len(roster) < s.Config.RosterSize {
			return false
		}
	}
	return true
}

// UserRoster returns the user team's player IDs in pick order.
func (s *State) UserRoster() []string {
	return s.TeamRosters[s.UserTeamID()]
}

// OverallPick returns the 1-based overall pick number currently on the
// clock for the given slot within the current round.
func (s *State) OverallPick(slot int) int {
	return (s.Round-1)*s.Config.NumTeams + slot
}

// PicksUntilUserTurn estimates how many picks pass before the user's next
// selection, given the serpentine reversal at the round boundary.
func (s *State) PicksUntilUserTurn() int {
	slot := s.Config.UserDraftSlot
	if s.Round%2 == 1 {
		return s.Config.NumTeams*2 - slot
	}
	return slot - 1
}

// RecordPick appends the player to the team's roster and the global
// drafted list. It fails with InvalidPickError if the player is already
// drafted, the roster is at capacity, or the draft is complete.
func (s *State) RecordPick(playerID string, teamID int) error {
	if s.IsComplete() {
		return &InvalidPickError{PlayerID: playerID, TeamID: teamID, Reason: "draft is complete"}
	}
	roster, ok := s.TeamRosters[teamID]
	if !ok {
		return &InvalidPickError{PlayerID: playerID, TeamID: teamID, Reason: "unknown team"}
	}
	if s.drafted[playerID] {
		return &InvalidPickError{PlayerID: playerID, TeamID: teamID, Reason: "player already drafted"}
	}
	if len(roster) >= s.Config.RosterSize {
		return &InvalidPickError{PlayerID: playerID, TeamID: teamID, Reason: "roster at capacity"}
	}

	s.TeamRosters[teamID] = append(roster, playerID)
	s.DraftedPlayers = append(s.DraftedPlayers, playerID)
	s.drafted[playerID] = true
	return nil
}

// AdvancePick moves the cursor to the next team in the snake order. At the
// end of a round the order reverses in place and the round increments.
func (s *State) AdvancePick() {
	idx := -1
	for i, team := range s.DraftOrder {
		if team == s.CurrentPickTeam {
			idx = i
			break
		}
	}
	if idx >= 0 && idx+1 < len(s.DraftOrder) {
		s.CurrentPickTeam = s.DraftOrder[idx+1]
		return
	}

	s.Round++
	for i, j := 0, len(s.DraftOrder)-1; i < j; i, j = i+1, j-1 {
		s.DraftOrder[i], s.DraftOrder[j] = s.DraftOrder[j], s.DraftOrder[i]
	}
	s.CurrentPickTeam = s.DraftOrder[0]
}

// ApplyPick records the pick for the team currently on the clock and
// advances the cursor. Record and advance always happen as a pair; the
// cursor does not move if the pick is rejected.
func (s *State) ApplyPick(playerID string) error {
	if err := s.RecordPick(playerID, s.CurrentPickTeam); err != nil {
		return err
	}
	s.AdvancePick()
	return nil
}
