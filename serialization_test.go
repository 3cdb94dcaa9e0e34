package bbt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewRating(27.5, 4.25))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mu":27.5,"sigma":4.25}`, string(data))
}

func TestRating_UnmarshalJSON(t *testing.T) {
	var r Rating
	require.NoError(t, json.Unmarshal([]byte(`{"mu":26.5,"sigma":7.25}`), &r))

	assert.Equal(t, 26.5, r.Mu())
	assert.Equal(t, 7.25, r.Sigma())
	assert.Equal(t, 7.25*7.25, r.sigmaSq)
}

func TestRating_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"mu":`},
		{"wrong type", `{"mu":"high","sigma":2}`},
		{"zero sigma", `{"mu":25,"sigma":0}`},
		{"negative sigma", `{"mu":25,"sigma":-1.5}`},
		{"missing sigma", `{"mu":25}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Rating
			assert.Error(t, json.Unmarshal([]byte(tt.data), &r))
		})
	}
}

func TestRating_JSONRoundTrip(t *testing.T) {
	// Ratings survive storage mid-season: a decoded rating continues
	// exactly where the encoded one left off.
	original := DefaultRating()
	opponent := DefaultRating()
	NewDefaultRater().Duel(original, opponent, Win)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Rating
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original.Mu(), restored.Mu())
	assert.Equal(t, original.Sigma(), restored.Sigma())
	assert.Equal(t, original.ConservativeEstimate(), restored.ConservativeEstimate())
}

func TestRating_JSONRoundTrip_Default(t *testing.T) {
	data, err := json.Marshal(DefaultRating())
	require.NoError(t, err)

	var restored Rating
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *DefaultRating(), restored)
}
