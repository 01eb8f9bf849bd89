package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"github.com/qnkhuat/blockterm/pkg/theme"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse configuration: %s", err)
	}

	if cfg.LogPath != "" {
		err = pkg.InitLog(cfg.LogPath, "BLOCKTERM-WINDOW: ")
		if err != nil {
			log.Fatal(err)
		}
	}

	t, err := theme.Lookup(cfg.Theme)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}

	player, err := sound.NewPlayer(cfg.Sound)
	if err != nil {
		log.Printf("sound disabled: %s", err)
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		log.Fatalf("failed to start game: %s", err)
	}

	logger := make(chan string, game.LogQueueSize)
	go pkg.HandleLog(logger, nil)

	events := make(chan interface{}, game.CommandQueueSize)
	opts.Logger = logger
	opts.Event = events

	g, err := game.NewGame(opts)
	if err != nil {
		log.Fatalf("failed to start game: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go g.Run(ctx)

	w := newWindow(g, events, player, t, cfg.BlockSize)

	ebiten.SetWindowSize(w.Layout(0, 0))
	ebiten.SetWindowTitle("blockterm")
	if err := ebiten.RunGame(w); err != nil {
		log.Fatal(err)
	}
}
