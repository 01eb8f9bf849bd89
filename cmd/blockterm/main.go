package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"github.com/qnkhuat/blockterm/pkg/theme"
)

var (
	done = make(chan bool, 1)

	activeGame *game.Game

	boardW = mino.DefaultWidth
	boardH = mino.DefaultHeight

	blockSize      = 1
	fixedBlockSize bool

	logMutex             = new(sync.Mutex)
	wroteFirstLogMessage bool
)

func init() {
	log.SetFlags(0)
}

// fatalf restores the terminal and standard error before exiting.
func fatalf(format string, a ...interface{}) {
	closeGUI()

	log.SetOutput(os.Stderr)
	log.SetPrefix("")
	log.Fatalf(format, a...)
}

// quit signals main to exit. Repeated calls never block.
func quit() {
	select {
	case done <- true:
	default:
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			closeGUI()
			time.Sleep(time.Second)

			log.SetOutput(os.Stderr)
			debug.PrintStack()
			log.Fatalf("panic: %+v", r)
		}
	}()

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse configuration: %s", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start blockterm: non-interactive terminals are not supported")
	}

	t, err := theme.Lookup(cfg.Theme)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}
	setTheme(t)

	if cfg.Scale > 0 {
		blockSize = cfg.Scale
		fixedBlockSize = true
	}

	if cfg.LogPath != "" {
		err = pkg.InitLog(cfg.LogPath, "BLOCKTERM: ")
		if err != nil {
			log.Fatal(err)
		}
		log.SetFlags(log.LstdFlags)
	} else {
		log.SetOutput(io.Discard)
	}

	if cfg.DebugAddress != "" {
		go func() {
			fatalf("failed to serve debug info: %s", http.ListenAndServe(cfg.DebugAddress, nil))
		}()
	}

	player, err := sound.NewPlayer(cfg.Sound)
	if err != nil {
		log.Printf("sound disabled: %s", err)
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		fatalf("failed to start game: %s", err)
	}

	app, err := initGUI()
	if err != nil {
		fatalf("failed to initialize GUI: %s", err)
	}

	logger := make(chan string, game.LogQueueSize)
	go pkg.HandleLog(logger, logMessage)

	opts.Logger = logger
	opts.Draw = draw
	opts.Event = events

	activeGame, err = game.NewGame(opts)
	if err != nil {
		fatalf("failed to start game: %s", err)
	}

	go handleEvents(player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go activeGame.Run(ctx)

	go func() {
		if err := app.Run(); err != nil {
			fatalf("failed to run application: %s", err)
		}

		quit()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		quit()
	}()

	<-done

	cancel()
	closeGUI()
}
