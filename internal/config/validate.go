package config

import "fmt"

// ValidationError names the first tuning value that cannot drive the game.
type ValidationError struct {
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Key, e.Message)
}

// Validate checks the values the simulation depends on.
// Ball speed must stay positive so both velocity components are non-zero
// and the launch direction is upward.
func (c BlockBreakerConfig) Validate() error {
	positive := []struct {
		key   string
		value float64
	}{
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"ball.max_speed", c.Ball.MaxSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Key:     p.key,
				Message: fmt.Sprintf("must be positive, got %g", p.value),
			}
		}
	}

	if c.Gameplay.Hearts < 1 {
		return ValidationError{
			Key:     "gameplay.hearts",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Gameplay.Hearts),
		}
	}
	return nil
}
