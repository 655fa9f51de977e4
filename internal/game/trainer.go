package game

import "gorm.io/gorm"

// Trainer stores a player's identity and aggregate battle results.
type Trainer struct {
	gorm.Model
	PlayerID      string `json:"player_id" gorm:"uniqueIndex"`
	PlayerName    string `json:"player_name"`
	BattlesPlayed int    `json:"battles_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Forfeits      int    `json:"forfeits"`
}

// Trainers are stored as "trainer_profiles".
func (Trainer) TableName() string { return "trainer_profiles" }
