package scoring

import "fmt"

// Weights holds the six category weights. They must sum to exactly 100;
// anything else is a configuration error, not a data error, and scoring
// refuses to run rather than silently mis-weight every result.
type Weights struct {
	Region         int `json:"region" validate:"gte=0"`
	Climate        int `json:"climate" validate:"gte=0"`
	Culture        int `json:"culture" validate:"gte=0"`
	Hobbies        int `json:"hobbies" validate:"gte=0"`
	Administration int `json:"administration" validate:"gte=0"`
	Budget         int `json:"budget" validate:"gte=0"`
}

// DefaultWeights returns the standard category weighting.
func DefaultWeights() Weights {
	return Weights{
		Region:         15,
		Climate:        20,
		Culture:        20,
		Hobbies:        20,
		Administration: 15,
		Budget:         10,
	}
}

// Sum returns the total of all six weights.
func (w Weights) Sum() int {
	return w.Region + w.Climate + w.Culture + w.Hobbies + w.Administration + w.Budget
}

// Validate checks that the weights are non-negative and sum to 100.
func (w Weights) Validate() error {
	if w.Region < 0 || w.Climate < 0 || w.Culture < 0 || w.Hobbies < 0 ||
		w.Administration < 0 || w.Budget < 0 {
		return fmt.Errorf("category weights must be non-negative: %+v", w)
	}
	if sum := w.Sum(); sum != 100 {
		return fmt.Errorf("category weights must sum to 100, got %d", sum)
	}
	return nil
}
