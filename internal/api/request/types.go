package request

// CreateSessionRequest is the body for POST /sessions
type CreateSessionRequest struct {
	Name string `json:"name"`
	// Date is the session day in YYYY-MM-DD format; defaults to today
	Date           string `json:"date,omitempty"`
	MatchSize      int    `json:"match_size,omitempty"`
	PriorityCutoff string `json:"priority_cutoff,omitempty"`
}

// UpdateConfigRequest is the body for PATCH /sessions/{id}/config
type UpdateConfigRequest struct {
	MatchSize      int    `json:"match_size"`
	PriorityCutoff string `json:"priority_cutoff"`
}

// CheckInRequest is the body for POST /sessions/{id}/players
type CheckInRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	SkillLevel int    `json:"skill_level"`
	AgeGroup   string `json:"age_group"`
	Tier       string `json:"tier"`
}

// UpdatePlayerRequest is the body for PATCH /sessions/{id}/players/{pid};
// omitted fields are left unchanged
type UpdatePlayerRequest struct {
	Position   *string `json:"position,omitempty"`
	SkillLevel *int    `json:"skill_level,omitempty"`
	AgeGroup   *string `json:"age_group,omitempty"`
	Tier       *string `json:"tier,omitempty"`
}

// FinishMatchRequest is the body for POST .../matches/{mid}/finish
type FinishMatchRequest struct {
	WinnerTeamID string `json:"winner_team_id"`
}

// RecordGoalRequest is the body for POST .../matches/{mid}/goals
type RecordGoalRequest struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
}
