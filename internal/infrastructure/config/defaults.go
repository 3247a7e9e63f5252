package config

import "time"

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "ArcadeRS Shooter",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Loop: LoopConfig{
			FPS:            60,
			ReportInterval: time.Second,
		},
		Assets: AssetsConfig{
			Dir:      "assets",
			Fallback: true,
		},
		Backgrounds: BackgroundsConfig{
			Back:   LayerConfig{Path: "starBG.png", Velocity: 20},
			Middle: LayerConfig{Path: "starMG.png", Velocity: 40},
			Front:  LayerConfig{Path: "starFG.png", Velocity: 60},
		},
		Ship: ShipConfig{
			Sheet:           "spaceship.png",
			FrameWidth:      43,
			FrameHeight:     39,
			Cols:            3,
			Rows:            3,
			Speed:           180,
			StartX:          64,
			StartY:          64,
			MovableFraction: 0.7,
		},
		Menu: MenuConfig{
			BoxWidth:    360,
			LabelHeight: 50,
			BorderWidth: 3,
			Margin:      10,
			IdleSize:    32,
			HoverSize:   38,
			IdleColor:   RGB{220, 220, 220},
			HoverColor:  RGB{255, 255, 255},
			BorderColor: RGB{70, 15, 70},
			BoxColor:    RGB{140, 30, 140},
		},
		Input: InputConfig{
			Up:      []string{"ArrowUp"},
			Down:    []string{"ArrowDown"},
			Left:    []string{"ArrowLeft"},
			Right:   []string{"ArrowRight"},
			Escape:  []string{"Escape"},
			Confirm: []string{"Space", "Enter"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
