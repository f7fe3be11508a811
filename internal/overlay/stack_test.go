package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	shown, hidden []string
	visible       bool
	dismiss       func()
}

func (r *recorder) Show(id string) { r.shown = append(r.shown, id) }
func (r *recorder) Hide(id string) { r.hidden = append(r.hidden, id) }
func (r *recorder) SyncBackdrop(visible bool, dismiss func()) {
	r.visible = visible
	r.dismiss = dismiss
}

func TestOpenIsIdempotent(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)

	s.Open("A")
	s.Open("B")
	s.Open("A")

	assert.Equal(t, []string{"A", "B"}, s.IDs())
	assert.True(t, rec.visible)
}

func TestCloseTopIsLIFO(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)
	s.Open("A")
	s.Open("B")

	s.CloseTop()

	assert.Equal(t, []string{"A"}, s.IDs())
	assert.Equal(t, []string{"B"}, rec.hidden)
	assert.True(t, rec.visible)
}

func TestCloseAnyPosition(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)
	s.Open("A")
	s.Open("B")

	s.Close("A")

	assert.Equal(t, []string{"B"}, s.IDs())
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "B", top)
}

func TestBackdropDismissTargetsCurrentTop(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)
	s.Open("A")
	s.Open("B")

	require.NotNil(t, rec.dismiss)
	rec.dismiss()
	assert.Equal(t, []string{"A"}, s.IDs())

	rec.dismiss()
	assert.Empty(t, s.IDs())
	assert.False(t, rec.visible)
	assert.Nil(t, rec.dismiss)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)

	s.Close("missing")
	s.CloseTop()

	assert.Empty(t, rec.hidden)
	assert.Equal(t, 0, s.Len())
}

func TestFinalize(t *testing.T) {
	rec := &recorder{}
	s := NewStack(rec)
	s.Open("A")
	s.Open("B")

	s.Finalize()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.BackdropVisible())
	assert.False(t, rec.visible)
	assert.Equal(t, []string{"B", "A"}, rec.hidden)
}

func TestNilPresenter(t *testing.T) {
	s := NewStack(nil)
	s.Open("A")
	s.CloseTop()
	assert.Equal(t, 0, s.Len())
}
