package stromboli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackButtonRequiresHandler(t *testing.T) {
	_, err := NewBackButton(nil)
	require.ErrorIs(t, err, ErrMissingPressHandler)
}

func TestNewBackButtonDefaults(t *testing.T) {
	b, err := NewBackButton(func() {})
	require.NoError(t, err)

	assert.Equal(t, "Back", b.TruncatedTitle)
	assert.Equal(t, DefaultTintColor, b.TintColor)
	assert.Equal(t, DefaultPressColor, b.PressColor)
}

// The full title is shown until its measured width exceeds the available
// width, then the truncated title substitutes.
func TestBackButtonLabelSubstitution(t *testing.T) {
	b, err := NewBackButton(func() {})
	require.NoError(t, err)
	b.Title = "Release Collections"
	b.Width = 120

	b.SetMeasuredTitleWidth(100)
	assert.Equal(t, "Release Collections", b.Label())

	b.SetMeasuredTitleWidth(180)
	assert.Equal(t, "Back", b.Label())

	// Unconstrained width never truncates.
	b.Width = 0
	assert.Equal(t, "Release Collections", b.Label())
}

func TestBackButtonIconOnly(t *testing.T) {
	b, err := NewBackButton(func() {})
	require.NoError(t, err)

	assert.Empty(t, b.Label())
}

func TestBackButtonPress(t *testing.T) {
	pressed := 0
	b, err := NewBackButton(func() { pressed++ })
	require.NoError(t, err)

	b.Press()
	assert.Equal(t, 1, pressed)
}

func TestDefaultTruncatedTitleLocalized(t *testing.T) {
	assert.Equal(t, "Back", DefaultTruncatedTitle())
	assert.Equal(t, "Indietro", DefaultTruncatedTitle("it"))
	assert.Equal(t, "Retour", DefaultTruncatedTitle("fr-FR"))
	assert.Equal(t, "Back", DefaultTruncatedTitle("pt"))
}
