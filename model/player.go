package model

import "strings"

// PlayerInfo is a player-directory entry: just enough to label lineup
// rows. The directory is large and refreshed rarely.
type PlayerInfo struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      string
	Active    bool
}

// FullName returns "First Last", falling back to the player id when the
// directory has no usable name. Team defenses come through with the team
// code as the id and no names.
func (p *PlayerInfo) FullName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.ID
	}
	return name
}
