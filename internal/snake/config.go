package snake

import (
	"image/color"
	"strconv"
)

// Palette holds the colours used to draw a frame.
type Palette struct {
	Background color.RGBA
	Food       color.RGBA
	Body       color.RGBA
	Score      color.RGBA
	Message    color.RGBA
}

// Config controls the board geometry, speed and look of the game.
type Config struct {
	Width  int
	Height int
	Block  int

	// ManualTPS is the tick rate while a player steers. AI mode is unbounded.
	ManualTPS int

	ScoreFontSize   int
	MessageFontSize int

	// Seed feeds the food RNG. Zero picks a clock-based seed.
	Seed int64

	Palette Palette
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	red   = color.RGBA{R: 213, G: 50, B: 80, A: 255}
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 50, G: 153, B: 213, A: 255}
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           600,
		Height:          500,
		Block:           10,
		ManualTPS:       15,
		ScoreFontSize:   35,
		MessageFontSize: 25,
		Palette: Palette{
			Background: blue,
			Food:       green,
			Body:       black,
			Score:      white,
			Message:    red,
		},
	}
}

// ApplyEnv reads SNAKE_SEED through getenv. Invalid values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}
