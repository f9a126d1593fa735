package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/analysis"
	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/internal/suggest"
)

var (
	ErrSessionNotFound  = errors.New("draft session not found")
	ErrNotUserTurn      = errors.New("it is not the user's turn to pick")
	ErrDraftComplete    = errors.New("draft is already complete")
	ErrDraftNotComplete = errors.New("draft is not complete yet")
)

// EventPublisher receives draft events for fan-out to connected clients.
// The websocket hub implements it; a nil publisher disables broadcasting.
type EventPublisher interface {
	Publish(draftID string, event DraftEvent)
}

// DraftEvent is one broadcast message about session progress.
type DraftEvent struct {
	Type       string `json:"type"`
	DraftID    string `json:"draft_id"`
	Round      int    `json:"round"`
	TeamID     int    `json:"team_id,omitempty"`
	PlayerID   string `json:"player_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// Session is one live draft: a state machine plus the engines that read
// it. All access goes through the manager's per-session lock.
type Session struct {
	ID        string       `json:"id"`
	Config    draft.Config `json:"config"`
	State     *draft.State `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	LastUsed  time.Time    `json:"last_used"`

	mu       sync.Mutex
	opponent draft.OpponentPolicy
	recap    *analysis.Recap
}

// SessionView is the wire representation of a session.
type SessionView struct {
	ID             string       `json:"id"`
	Config         draft.Config `json:"config"`
	Round          int          `json:"round"`
	CurrentTeam    int          `json:"current_pick_team"`
	UserTurn       bool         `json:"user_turn"`
	Complete       bool         `json:"complete"`
	DraftedPlayers []string     `json:"drafted_players"`
	UserRoster     []string     `json:"user_roster"`
	PicksUntilTurn int          `json:"picks_until_user_turn"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Snapshot returns a consistent view of the session for serialization.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafted := make([]string, len(s.State.DraftedPlayers))
	copy(drafted, s.State.DraftedPlayers)
	roster := make([]string, len(s.State.UserRoster()))
	copy(roster, s.State.UserRoster())

	return SessionView{
		ID:             s.ID,
		Config:         s.Config,
		Round:          s.State.Round,
		CurrentTeam:    s.State.CurrentPickTeam,
		UserTurn:       s.State.IsUserTurn(),
		Complete:       s.State.IsComplete(),
		DraftedPlayers: drafted,
		UserRoster:     roster,
		PicksUntilTurn: s.State.PicksUntilUserTurn(),
		CreatedAt:      s.CreatedAt,
	}
}

// SessionManager owns all live draft sessions. Sessions are in-memory
// only; an idle sweep reclaims abandoned ones.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	pool      *models.PlayerPool
	engine    *suggest.Engine
	analyzer  *analysis.CategoryAnalyzer
	punt      *analysis.PuntStrategyDetector
	risk      *analysis.RosterRiskAnalyzer
	analytics *analysis.DraftAnalytics
	publisher EventPublisher
	logger    *logrus.Logger

	idleTTL time.Duration
	cron    *cron.Cron
}

func NewSessionManager(pool *models.PlayerPool, publisher EventPublisher, idleTTL time.Duration, logger *logrus.Logger) *SessionManager {
	m := &SessionManager{
		sessions:  make(map[string]*Session),
		pool:      pool,
		engine:    suggest.NewEngine(pool, logger),
		analyzer:  analysis.NewCategoryAnalyzer(pool),
		punt:      analysis.NewPuntStrategyDetector(pool),
		risk:      analysis.NewRosterRiskAnalyzer(pool),
		analytics: analysis.NewDraftAnalytics(pool),
		publisher: publisher,
		logger:    logger,
		idleTTL:   idleTTL,
	}
	m.cron = cron.New()
	m.cron.AddFunc("@every 5m", m.sweepIdle)
	m.cron.Start()
	return m
}

// Stop halts the idle sweep scheduler.
func (m *SessionManager) Stop() {
	m.cron.Stop()
}

// Create starts a new draft session. If the user does not hold the first
// pick, AI opponents draft up to the user's slot immediately.
func (m *SessionManager) Create(cfg draft.Config) (*Session, error) {
	state, err := draft.NewState(cfg)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.New().String(),
		Config:    cfg,
		State:     state,
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
		opponent:  draft.BestAvailable{},
	}

	session.mu.Lock()
	m.runOpponents(session)
	session.mu.Unlock()

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"draft_id":    session.ID,
		"num_teams":   cfg.NumTeams,
		"draft_slot":  cfg.UserDraftSlot,
		"roster_size": cfg.RosterSize,
	}).Info("Draft session created")
	return session, nil
}

// Get returns the session by ID, refreshing its idle timer.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.mu.Lock()
	session.LastUsed = time.Now()
	session.mu.Unlock()
	return session, nil
}

// UserPick records the user's pick, then lets AI opponents draft until
// the user's next turn or the end of the draft.
func (m *SessionManager) UserPick(id, playerID string) (*Session, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State.IsComplete() {
		return nil, ErrDraftComplete
	}
	if !session.State.IsUserTurn() {
		return nil, ErrNotUserTurn
	}

	player := m.pool.Get(playerID)
	if player == nil {
		return nil, &draft.InvalidPickError{
			PlayerID: playerID,
			TeamID:   session.State.CurrentPickTeam,
			Reason:   "player not found in pool",
		}
	}

	teamID := session.State.CurrentPickTeam
	if err := session.State.ApplyPick(playerID); err != nil {
		return nil, err
	}
	session.recap = nil
	m.publish(session, "pick", teamID, player)

	m.runOpponents(session)
	if session.State.IsComplete() {
		m.publish(session, "draft_complete", 0, nil)
	}
	return session, nil
}

// runOpponents advances AI picks until it is the user's turn or the
// draft is over. Caller holds the session lock.
func (m *SessionManager) runOpponents(session *Session) {
	for !session.State.IsComplete() && !session.State.IsUserTurn() {
		available := m.pool.Available(session.State.DraftedPlayers)
		pick := session.opponent.MakePick(available)
		if pick == nil {
			m.logger.WithField("draft_id", session.ID).Error("Opponent found no available player")
			return
		}
		teamID := session.State.CurrentPickTeam
		if err := session.State.ApplyPick(pick.PlayerID); err != nil {
			m.logger.WithError(err).WithField("draft_id", session.ID).Error("Opponent pick rejected")
			return
		}
		session.recap = nil
		m.publish(session, "pick", teamID, pick)
	}
}

// Suggestions scores the current candidates for the user's next pick.
func (m *SessionManager) Suggestions(id string) ([]suggest.Suggestion, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State.IsComplete() {
		return nil, ErrDraftComplete
	}

	state := session.State
	req := suggest.Request{
		Available:      m.pool.Available(state.DraftedPlayers),
		UserRoster:     state.UserRoster(),
		Round:          state.Round,
		DraftSlot:      session.Config.UserDraftSlot,
		NumTeams:       session.Config.NumTeams,
		AllRosters:     state.TeamRosters,
		UserTeamID:     state.UserTeamID(),
		PicksUntilNext: state.PicksUntilUserTurn(),
	}
	return m.engine.GetSuggestions(req), nil
}

// Available returns the pool players not yet drafted in the session.
func (m *SessionManager) Available(id string) ([]models.PlayerRecord, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return m.pool.Available(session.State.DraftedPlayers), nil
}

// Categories returns the user's per-category standings.
func (m *SessionManager) Categories(id string) (map[models.Category]analysis.Standing, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	state := session.State
	return m.analyzer.Analyze(state.UserRoster(), state.TeamRosters, state.UserTeamID()), nil
}

// Punt returns the user's punt-strategy report.
func (m *SessionManager) Punt(id string) (analysis.PuntReport, error) {
	session, err := m.Get(id)
	if err != nil {
		return analysis.PuntReport{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	state := session.State
	return m.punt.Detect(state.UserRoster(), state.TeamRosters, state.UserTeamID()), nil
}

// Risk returns the user's roster-construction risk report.
func (m *SessionManager) Risk(id string) (analysis.RiskReport, error) {
	session, err := m.Get(id)
	if err != nil {
		return analysis.RiskReport{}, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return m.risk.Analyze(session.State.UserRoster()), nil
}

// Recap builds (or returns the memoized) league-wide recap. Only a
// completed draft has one.
func (m *SessionManager) Recap(id string) (*analysis.Recap, error) {
	session, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.State.IsComplete() {
		return nil, ErrDraftNotComplete
	}
	if session.recap != nil {
		return session.recap, nil
	}
	recap := m.analytics.GenerateRecap(session.State)
	session.recap = &recap
	return session.recap, nil
}

func (m *SessionManager) publish(session *Session, eventType string, teamID int, player *models.PlayerRecord) {
	if m.publisher == nil {
		return
	}
	event := DraftEvent{
		Type:      eventType,
		DraftID:   session.ID,
		Round:     session.State.Round,
		TeamID:    teamID,
		Timestamp: time.Now().Unix(),
	}
	if player != nil {
		event.PlayerID = player.PlayerID
		event.PlayerName = player.Name
	}
	m.publisher.Publish(session.ID, event)
}

// sweepIdle drops sessions untouched past the idle TTL.
func (m *SessionManager) sweepIdle() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		session.mu.Lock()
		idle := session.LastUsed.Before(cutoff)
		session.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			m.logger.WithField("draft_id", id).Info("Idle draft session reclaimed")
		}
	}
}
