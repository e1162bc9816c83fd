package mines

import (
	"fmt"
	"strconv"
)

// Labels pushed to observers.
const (
	LabelEmpty = ""
	LabelFlag  = "F"
	LabelMine  = "-1"
	LabelHint  = "0"
)

func countLabel(v int) string {
	return strconv.Itoa(v)
}

// Observer is a presentation-owned widget bound to one cell.
type Observer interface {
	Coordinates() Point
	Notify(label string)
}

type ObserverRegistry struct {
	observers []Observer
	width     int
	height    int
}

func NewObserverRegistry(width, height int) *ObserverRegistry {
	return &ObserverRegistry{
		observers: make([]Observer, width*height),
		width:     width,
		height:    height,
	}
}

// AddObserver binds o to its coordinates, replacing any previous observer.
func (r *ObserverRegistry) AddObserver(o Observer) error {
	p := o.Coordinates()
	if !p.In(r.width, r.height) {
		return fmt.Errorf("observer at %s: %w", p, ErrOutOfBounds)
	}
	r.observers[p.Y*r.width+p.X] = o
	return nil
}

func (r *ObserverRegistry) Observer(p Point) (Observer, bool) {
	o := r.observers[p.Y*r.width+p.X]
	return o, o != nil
}

func (r *ObserverRegistry) UpdateObserver(p Point, label string) {
	if o, ok := r.Observer(p); ok {
		o.Notify(label)
	}
}

// Reset clears every registered observer; registrations are kept.
func (r *ObserverRegistry) Reset() {
	for _, o := range r.observers {
		if o != nil {
			o.Notify(LabelEmpty)
		}
	}
}
