package placement

// RefreshEvent is emitted after the cache has been rebuilt.
type RefreshEvent struct {
	TileCount int
	Radius    int
	Eligible  int
}

// PlacedEvent is emitted when a tile has been accepted.
type PlacedEvent struct {
	Population Population
	Tile       TileID
	Draws      int
	Remaining  int
}

// FailedEvent is emitted when a request ends without a tile. Err is
// ErrCacheEmpty or ErrSelectionExhausted.
type FailedEvent struct {
	Population Population
	Err        error
	Draws      int
	Rejections map[Rejection]int
}

// Observer receives placement events. Methods are called while the
// Selector holds its lock and must not call back into it.
type Observer interface {
	Refreshed(RefreshEvent)
	Placed(PlacedEvent)
	Failed(FailedEvent)
}

// Observers fans events out to every non-nil observer in order.
type Observers []Observer

// Refreshed forwards e to every observer.
func (obs Observers) Refreshed(e RefreshEvent) {
	for _, o := range obs {
		if o != nil {
			o.Refreshed(e)
		}
	}
}

// Placed forwards e to every observer.
func (obs Observers) Placed(e PlacedEvent) {
	for _, o := range obs {
		if o != nil {
			o.Placed(e)
		}
	}
}

// Failed forwards e to every observer.
func (obs Observers) Failed(e FailedEvent) {
	for _, o := range obs {
		if o != nil {
			o.Failed(e)
		}
	}
}

type nopObserver struct{}

func (nopObserver) Refreshed(RefreshEvent) {}
func (nopObserver) Placed(PlacedEvent)     {}
func (nopObserver) Failed(FailedEvent)     {}
