package gridview

// Observer is notified after the view changes. Calls happen synchronously
// on the goroutine that drove the change.
type Observer interface {
	// ImageChanged is called after a write pass updated the buffer.
	ImageChanged()
	// CellSizeChanged is called with the new logical cell size after a zoom.
	CellSizeChanged(cellSize int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) ImageChanged()       {}
func (NopObserver) CellSizeChanged(int) {}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	OnImageChanged    func()
	OnCellSizeChanged func(int)
}

func (o ObserverFuncs) ImageChanged() {
	if o.OnImageChanged != nil {
		o.OnImageChanged()
	}
}

func (o ObserverFuncs) CellSizeChanged(cellSize int) {
	if o.OnCellSizeChanged != nil {
		o.OnCellSizeChanged(cellSize)
	}
}
