package main

import (
	"fmt"
	"strings"

	"github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/automoto/blobreel/shared/trail"
)

// applyFlags overrides config before the game starts; config is read-only afterwards
func applyFlags(noGoo, square, debug bool, start string) error {
	commands, err := parseStartCommands(start)
	if err != nil {
		return err
	}
	config.Carousel.StartCommands = commands

	if noGoo {
		config.Cursor.UseFilter = false
	}
	if square {
		config.Cursor.Shape = trail.ShapeSquare
	}
	if debug {
		config.HUD.ShowDebug = true
	}
	return nil
}

// parseStartCommands reads a comma separated list such as "next,next,prev"
func parseStartCommands(s string) ([]ring.Command, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var commands []ring.Command
	for _, part := range strings.Split(s, ",") {
		cmd, err := ring.ParseCommand(part)
		if err != nil {
			return nil, fmt.Errorf("-start: %w", err)
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
