package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/knightly/knightly/internal/mission"
	"github.com/knightly/knightly/internal/progress"
)

func overallProgressText(prog *progress.Store, missions []mission.Mission) string {
	if prog == nil || len(missions) == 0 {
		return ""
	}

	completed, total, percent := prog.OverallProgress(missions)
	xp := humanize.Comma(int64(prog.EarnedXP(missions)))
	return fmt.Sprintf("Missions: %d/%d (%.0f%%)  XP: %s", completed, total, percent, xp)
}
