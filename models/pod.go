package models

// Pod is a fixed round-robin group. Membership is immutable once the group
// stage starts; only the optional display name may change afterwards.
type Pod struct {
	ID      string   `json:"id"`
	Name    *string  `json:"name,omitempty"`
	Players []string `json:"players"`
}

// Contains reports whether the player is a member of this pod.
func (p *Pod) Contains(playerID string) bool {
	for _, id := range p.Players {
		if id == playerID {
			return true
		}
	}
	return false
}
