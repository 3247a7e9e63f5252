package main

import (
	"fmt"

	"github.com/younwookim/arcade/internal/application/game"
	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/view"
	"github.com/younwookim/arcade/internal/application/view/screens"
	"github.com/younwookim/arcade/internal/infrastructure/assets"
	"go.uber.org/zap"
)

// run opens the window and blocks until the player quits
func run(a *app) error {
	cfg, log := a.cfg, a.logger

	bindings, err := input.ParseBindings(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to parse key bindings: %w", err)
	}
	keyboard := input.NewKeyboard(bindings)

	source, recorder, opts, err := inputSource(a.opts, keyboard, log)
	if err != nil {
		return err
	}

	lib := assets.NewLibrary(cfg.Assets.Dir, cfg.Assets.Fallback, log)
	if cfg.Assets.Fallback {
		lib.UsePlaceholders(cfg)
	}

	ctx := view.NewContext(cfg, lib, log)
	runErr := game.Spawn(ctx, source, func(ctx *view.Context) (view.View, error) {
		return screens.NewMainMenu(ctx)
	}, opts...)

	if recorder != nil {
		saveRecording(recorder, a.opts.recordPath, log)
	}
	return runErr
}

// inputSource picks the keyboard, a recorded keyboard or a replay.
// A replay also paces the loop so every frame runs with its recorded
// elapsed time; it still honours the window close button.
func inputSource(opts options, keyboard *input.Keyboard, log *zap.Logger) (input.Source, *replay.Recorder, []game.Option, error) {
	switch {
	case opts.replayPath != "":
		data, err := replay.Load(opts.replayPath)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("replaying input",
			zap.String("file", opts.replayPath),
			zap.Int("frames", len(data.Frames)))

		player := replay.NewReplayer(*data)
		source := input.SourceFunc(func() input.State {
			s := player.Poll()
			if keyboard.Poll().Quit {
				s.Quit = true
			}
			return s
		})
		return source, nil, []game.Option{game.WithPacer(player)}, nil

	case opts.recordPath != "":
		log.Info("recording enabled", zap.String("file", opts.recordPath))
		recorder := replay.NewRecorder()
		return keyboard, recorder, []game.Option{game.WithRecorder(recorder)}, nil

	default:
		return keyboard, nil, nil, nil
	}
}

func saveRecording(recorder *replay.Recorder, filename string, log *zap.Logger) {
	recorder.Stop()
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := recorder.Save(filename); err != nil {
		log.Error("failed to save recording", zap.Error(err))
		return
	}
	log.Info("recording saved",
		zap.String("file", filename),
		zap.Int("frames", recorder.FrameCount()))
}
