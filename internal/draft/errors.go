package draft

import "fmt"

// InvalidPickError is returned when a pick references an already-drafted
// player or a team whose roster is full. It is fatal to the attempted pick,
// not to the draft: callers treat it as a no-op and re-prompt.
type InvalidPickError struct {
	PlayerID string
	TeamID   int
	Reason   string
}

func (e *InvalidPickError) Error() string {
	return fmt.Sprintf("invalid pick of player %s for team %d: %s", e.PlayerID, e.TeamID, e.Reason)
}

// ConfigurationError is returned when draft configuration is unusable at
// initialization. The draft cannot start.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid draft configuration: %s=%d (%s)", e.Field, e.Value, e.Reason)
}
