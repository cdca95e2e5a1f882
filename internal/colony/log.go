package colony

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/immersive-worldgen/internal/journal"
	"github.com/talgya/immersive-worldgen/internal/placement"
)

// LogObserver reports placement events through slog.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Refreshed implements placement.Observer.
func (o LogObserver) Refreshed(e placement.RefreshEvent) {
	o.logger().Info("refreshed eligible tiles",
		"tiles", humanize.Comma(int64(e.TileCount)),
		"eligible", humanize.Comma(int64(e.Eligible)),
		"radius", e.Radius,
	)
}

// Placed implements placement.Observer.
func (o LogObserver) Placed(e placement.PlacedEvent) {
	o.logger().Debug("tile accepted",
		"faction", journal.PopulationName(e.Population),
		"tile", e.Tile,
		"draws", e.Draws,
		"remaining", humanize.Comma(int64(e.Remaining)),
	)
}

// Failed implements placement.Observer.
func (o LogObserver) Failed(e placement.FailedEvent) {
	o.logger().Warn("placement request failed",
		"faction", journal.PopulationName(e.Population),
		"reason", e.Err,
		"draws", e.Draws,
		"rejections", journal.FormatRejections(e.Rejections),
	)
}
