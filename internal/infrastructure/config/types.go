package config

import (
	"image/color"
	"time"
)

// Config is the root of game.yaml
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Loop        LoopConfig        `yaml:"loop"`
	Assets      AssetsConfig      `yaml:"assets"`
	Backgrounds BackgroundsConfig `yaml:"backgrounds"`
	Ship        ShipConfig        `yaml:"ship"`
	Menu        MenuConfig        `yaml:"menu"`
	Input       InputConfig       `yaml:"input"`
	Logging     LoggingConfig     `yaml:"logging"`
	Debug       bool              `yaml:"debug"` // draws the ship hit box
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// LoopConfig controls frame pacing
type LoopConfig struct {
	FPS            int           `yaml:"fps"`
	ReportInterval time.Duration `yaml:"reportInterval"` // how often the frame rate is logged
}

type AssetsConfig struct {
	Dir      string `yaml:"dir"`
	Fallback bool   `yaml:"fallback"` // generate placeholders for missing images
}

type BackgroundsConfig struct {
	Back   LayerConfig `yaml:"back"`
	Middle LayerConfig `yaml:"middle"`
	Front  LayerConfig `yaml:"front"`
}

// LayerConfig is one parallax layer; Velocity is in sprite pixels per second
type LayerConfig struct {
	Path     string  `yaml:"path"`
	Velocity float64 `yaml:"velocity"`
}

type ShipConfig struct {
	Sheet           string  `yaml:"sheet"`
	FrameWidth      float64 `yaml:"frameWidth"`
	FrameHeight     float64 `yaml:"frameHeight"`
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	Speed           float64 `yaml:"speed"`
	StartX          float64 `yaml:"startX"`
	StartY          float64 `yaml:"startY"`
	MovableFraction float64 `yaml:"movableFraction"` // share of the output width the ship may use
}

// MenuConfig lays out the main menu box and its labels
type MenuConfig struct {
	BoxWidth    float64 `yaml:"boxWidth"`
	LabelHeight float64 `yaml:"labelHeight"`
	BorderWidth float64 `yaml:"borderWidth"`
	Margin      float64 `yaml:"margin"`
	IdleSize    float64 `yaml:"idleSize"`
	HoverSize   float64 `yaml:"hoverSize"`
	IdleColor   RGB     `yaml:"idleColor"`
	HoverColor  RGB     `yaml:"hoverColor"`
	BorderColor RGB     `yaml:"borderColor"`
	BoxColor    RGB     `yaml:"boxColor"`
}

// InputConfig binds actions to ebiten key names (e.g. "ArrowUp", "W")
type InputConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Escape  []string `yaml:"escape"`
	Confirm []string `yaml:"confirm"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// RGB is an opaque colour
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color converts to an opaque color.RGBA
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
