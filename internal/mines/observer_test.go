package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverRegistry(t *testing.T) {
	log := &noteLog{}
	r := NewObserverRegistry(2, 2)

	require.NoError(t, r.AddObserver(tile{Point{0, 0}, log}))
	require.NoError(t, r.AddObserver(tile{Point{1, 1}, log}))
	assert.ErrorIs(t, r.AddObserver(tile{Point{2, 0}, log}), ErrOutOfBounds)

	r.UpdateObserver(Point{0, 0}, "3")
	r.UpdateObserver(Point{1, 0}, "3") // nobody there
	assert.Equal(t, []note{{Point{0, 0}, "3"}}, log.notes)

	log.clear()
	r.Reset()
	assert.ElementsMatch(t, []note{{Point{0, 0}, ""}, {Point{1, 1}, ""}}, log.notes)

	_, ok := r.Observer(Point{1, 1})
	assert.True(t, ok, "registrations survive reset")
}

func TestObserverLastRegistrantWins(t *testing.T) {
	first, second := &noteLog{}, &noteLog{}
	r := NewObserverRegistry(1, 1)
	require.NoError(t, r.AddObserver(tile{Point{0, 0}, first}))
	require.NoError(t, r.AddObserver(tile{Point{0, 0}, second}))

	r.UpdateObserver(Point{0, 0}, LabelFlag)
	assert.Empty(t, first.notes)
	assert.Equal(t, []note{{Point{0, 0}, LabelFlag}}, second.notes)
}
