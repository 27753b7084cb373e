package domain

import "time"

// PlayerState is a player's level/XP progression record.
// Level starts at 1; XP counts toward the next level; TotalXP is lifetime
// XP and never decreases.
type PlayerState struct {
	UserID    string    `json:"user_id"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	TotalXP   int       `json:"total_xp"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
