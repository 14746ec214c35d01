package brackets

import (
	"github.com/thoas/go-funk"

	"github.com/retrolan/lanbracket/models"
)

// ReorderForCrossGroup reorders qualified entrants (given in rank order) so
// that entrants from the same group do not meet in the first bracket round
// where that is mathematically avoidable. The reorder runs once, right
// before bracket construction, and never again after advancement.
func ReorderForCrossGroup(t *models.Tournament, qualified []*models.Player) []*models.Player {
	if len(t.Pods) <= 1 {
		return qualified
	}

	// Bucket qualifiers by group, preserving rank order inside each bucket.
	// Bucket order follows first appearance in the overall ranking, so
	// groups[0] is the group of the best-ranked qualifier.
	var groups [][]*models.Player
	bucketIndex := map[string]int{}
	for _, p := range qualified {
		pod := t.PlayerPod(p.ID)
		if pod == nil {
			continue
		}
		idx, ok := bucketIndex[pod.ID]
		if !ok {
			idx = len(groups)
			bucketIndex[pod.ID] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], p)
	}

	if len(t.Pods) == 3 && len(qualified) == 6 && len(groups) == 3 &&
		len(groups[0]) == 2 && len(groups[1]) == 2 && len(groups[2]) == 2 {
		return reorderThreeGroupsOfTwo(groups)
	}

	// Two or more groups: interleave by within-group rank
	// (G1-1st, G2-1st, G1-2nd, G2-2nd, ...).
	sizes := funk.Map(groups, func(g []*models.Player) int { return len(g) }).([]int)
	maxSize := funk.MaxInt(sizes)

	reordered := make([]*models.Player, 0, len(qualified))
	for i := 0; i < maxSize; i++ {
		for _, group := range groups {
			if i < len(group) {
				reordered = append(reordered, group[i])
			}
		}
	}
	return reordered
}

// reorderThreeGroupsOfTwo is the fixed placement for three groups sending
// their top two into the six-seed bracket:
//
//	seed 1: G1-1st (bye)      seed 4: G2-2nd (QF2)
//	seed 2: G2-1st (bye)      seed 5: G3-2nd (QF2)
//	seed 3: G3-1st (QF1)      seed 6: G1-2nd (QF1)
//
// QF1 pairs G3-1st with G1-2nd and QF2 pairs G2-2nd with G3-2nd, so neither
// quarterfinal nor either semifinal can repeat a group pairing.
func reorderThreeGroupsOfTwo(groups [][]*models.Player) []*models.Player {
	return []*models.Player{
		groups[0][0],
		groups[1][0],
		groups[2][0],
		groups[1][1],
		groups[2][1],
		groups[0][1],
	}
}
