package bbt

import (
	"encoding/json"
	"fmt"
)

// ratingJSON is the wire form of a Rating. Only the two distribution
// parameters travel; derived values are rebuilt on decode.
type ratingJSON struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// MarshalJSON encodes the rating as its mu and sigma parameters.
func (r *Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(ratingJSON{Mu: r.mu, Sigma: r.sigma})
}

// UnmarshalJSON decodes a rating from its mu and sigma parameters. A
// non-positive sigma is rejected, matching the NewRating contract.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var raw ratingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding rating: %w", err)
	}
	if raw.Sigma <= 0 {
		return fmt.Errorf("decoding rating: sigma %v is not positive", raw.Sigma)
	}

	r.mu = raw.Mu
	r.sigma = raw.Sigma
	r.sigmaSq = raw.Sigma * raw.Sigma
	return nil
}
