package bbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRating(t *testing.T) {
	r := DefaultRating()

	assert.Equal(t, 25.0, r.Mu())
	assert.Equal(t, 25.0/3.0, r.Sigma())

	// Same parameters either way.
	assert.Equal(t, NewRating(DefaultMu, DefaultSigma), r)
}

func TestNewRating(t *testing.T) {
	r := NewRating(31.5, 2.25)

	assert.Equal(t, 31.5, r.Mu())
	assert.Equal(t, 2.25, r.Sigma())
	assert.Equal(t, 2.25*2.25, r.sigmaSq)
}

func TestRating_ConservativeEstimate(t *testing.T) {
	assert.Equal(t, 24.0, NewRating(30, 2).ConservativeEstimate())
	assert.Equal(t, -24.0, NewRating(0, 8).ConservativeEstimate())

	// A fresh default sits at the bottom of the scale.
	assert.InDelta(t, 0.0, DefaultRating().ConservativeEstimate(), 1e-12)

	// High mean with high uncertainty scores below a modest proven rating.
	proven := NewRating(28, 1)
	flashy := NewRating(34, 8)
	assert.Greater(t, proven.ConservativeEstimate(), flashy.ConservativeEstimate())
}

func TestRating_String(t *testing.T) {
	tests := []struct {
		rating *Rating
		want   string
	}{
		{NewRating(30, 2), "24"},
		{NewRating(27.5, 2), "21.5"},
		{NewRating(10, 8), "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.rating.String())
	}
}
