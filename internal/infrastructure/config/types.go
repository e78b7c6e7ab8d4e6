package config

import (
	"errors"
	"fmt"
)

// AppConfig is the root config for app.yaml
type AppConfig struct {
	Display  DisplayConfig  `yaml:"display" envPrefix:"DISPLAY_"`
	Cards    CardsConfig    `yaml:"cards" envPrefix:"CARDS_"`
	Dialogue DialogueConfig `yaml:"dialogue" envPrefix:"DIALOGUE_"`
	Fire     FireConfig     `yaml:"fire" envPrefix:"FIRE_"`
}

type DisplayConfig struct {
	Width             int    `yaml:"width" env:"WIDTH"`
	Height            int    `yaml:"height" env:"HEIGHT"`
	Title             string `yaml:"title" env:"TITLE"`
	TPS               int    `yaml:"tps" env:"TPS"`
	Background        uint32 `yaml:"background" env:"BACKGROUND"`
	ShowFPS           bool   `yaml:"showFPS" env:"SHOW_FPS"`
	FullscreenOnClick bool   `yaml:"fullscreenOnClick" env:"FULLSCREEN_ON_CLICK"`
}

// CardsConfig configures the card migration task
type CardsConfig struct {
	Count       int     `yaml:"count" env:"COUNT"`
	IntervalSec float64 `yaml:"intervalSec" env:"INTERVAL_SEC"` // Delay between migrations
	TravelSec   float64 `yaml:"travelSec" env:"TRAVEL_SEC"`     // Flight time of one card
	JitterDeg   float64 `yaml:"jitterDeg" env:"JITTER_DEG"`     // Max rotation of a stacked card
	LiftScale   float64 `yaml:"liftScale" env:"LIFT_SCALE"`
	StackOffset float64 `yaml:"stackOffset" env:"STACK_OFFSET"` // Landscape: stacks at ±offset
	PortraitTop float64 `yaml:"portraitTop" env:"PORTRAIT_TOP"` // Portrait: stack A y
	PortraitBot float64 `yaml:"portraitBottom" env:"PORTRAIT_BOTTOM"`
}

// DialogueConfig configures the dialogue task
type DialogueConfig struct {
	ScriptURL     string  `yaml:"scriptURL" env:"SCRIPT_URL"`
	TimeoutSec    float64 `yaml:"timeoutSec" env:"TIMEOUT_SEC"`
	RevealPerRune float64 `yaml:"revealPerRune" env:"REVEAL_PER_RUNE"` // Seconds per revealed character
}

// FireConfig configures the particle task
type FireConfig struct {
	PoolSize   int     `yaml:"poolSize" env:"POOL_SIZE"`
	StaggerSec float64 `yaml:"staggerSec" env:"STAGGER_SEC"`
	OriginY    float64 `yaml:"originY" env:"ORIGIN_Y"`
}

// Validate rejects configurations the scenes cannot run with.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display tps must be positive, got %d", c.Display.TPS))
	}
	if c.Cards.Count <= 0 {
		errs = append(errs, fmt.Errorf("cards count must be positive, got %d", c.Cards.Count))
	}
	if c.Cards.IntervalSec <= 0 || c.Cards.TravelSec <= 0 {
		errs = append(errs, errors.New("cards interval and travel time must be positive"))
	}
	if c.Dialogue.ScriptURL == "" {
		errs = append(errs, errors.New("dialogue scriptURL is required"))
	}
	if c.Fire.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("fire poolSize must be positive, got %d", c.Fire.PoolSize))
	}
	return errors.Join(errs...)
}

// Default returns the built-in configuration, identical to the shipped app.yaml.
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Width:             1024,
			Height:            768,
			Title:             "Task Show",
			TPS:               60,
			Background:        0x1a1a1a,
			ShowFPS:           true,
			FullscreenOnClick: true,
		},
		Cards: CardsConfig{
			Count:       144,
			IntervalSec: 1,
			TravelSec:   2,
			JitterDeg:   5,
			LiftScale:   1.1,
			StackOffset: 200,
			PortraitTop: -100,
			PortraitBot: 200,
		},
		Dialogue: DialogueConfig{
			ScriptURL:     "https://private-624120-softgamesassignment.apiary-mock.com/v2/magicwords",
			TimeoutSec:    10,
			RevealPerRune: 0.03,
		},
		Fire: FireConfig{
			PoolSize:   10,
			StaggerSec: 0.12,
			OriginY:    120,
		},
	}
}
