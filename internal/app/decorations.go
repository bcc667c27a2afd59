// internal/app/decorations.go
package app

import (
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/utils"
	"go-maze-defense/pkg/gridmap"
	mathutil "go-maze-defense/pkg/utils"
)

// decorationCandidates draws count random cells away from both anchors.
// The grid drops any candidate that would seal the maze.
func decorationCandidates(rng *utils.PRNGService, width, height int, start, end gridmap.Coord, count int) []gridmap.Coord {
	out := make([]gridmap.Coord, 0, count)
	for i := 0; i < count; i++ {
		c := gridmap.Coord{X: rng.Intn(width), Y: rng.Intn(height)}
		if nearAnchor(c, start) || nearAnchor(c, end) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func nearAnchor(c, anchor gridmap.Coord) bool {
	return mathutil.Abs(c.X-anchor.X) <= config.DecorationAnchorGap &&
		mathutil.Abs(c.Y-anchor.Y) <= config.DecorationAnchorGap
}
