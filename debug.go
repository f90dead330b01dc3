package dicetray

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and submission metrics.
// Only populated when Tray debug mode is on.
type debugStats struct {
	renderTime time.Duration
	stepTime   time.Duration

	diceCount   int
	facesDrawn  int
	facesCulled int
	triCount    int
}

// debugLog prints timing and submission stats to stderr.
func (t *Tray) debugLog(stats debugStats) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[dicetray] render: %v | step: %v\n",
		stats.renderTime, stats.stepTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[dicetray] dice: %d | faces: %d drawn, %d culled | tris: %d\n",
		stats.diceCount, stats.facesDrawn, stats.facesCulled, stats.triCount)
}
