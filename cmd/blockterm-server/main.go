package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/game/ssh"
)

const (
	LogTimeFormat = "2006-01-02 15:04:05"

	shutdownTimeout = 10 * time.Second
)

func init() {
	log.SetFlags(0)
}

func main() {
	cfg, err := config.ParseServer(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse configuration: %s", err)
	}

	if cfg.LogPath != "" {
		err = pkg.InitLog(cfg.LogPath, "SERVER: ")
		if err != nil {
			log.Fatal(err)
		}
	}

	if cfg.DebugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(cfg.DebugAddress, nil))
		}()
	}

	prefix := color.New(color.FgGreen).Sprint("blockterm")

	logger := make(chan string, game.LogQueueSize)
	go func() {
		for msg := range logger {
			log.Println(time.Now().Format(LogTimeFormat) + " " + prefix + " " + msg)
		}
	}()

	sshServer := &ssh.SSHServer{
		ListenAddress: cfg.ListenSSH,
		Binary:        cfg.Binary,
		Args:          cfg.SessionArgs(),
		HostKeyFile:   cfg.HostKey,
		IdleTimeout:   cfg.IdleTimeout,
		Logger:        logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hostErr := make(chan error, 1)
	go func() {
		hostErr <- sshServer.Host()
	}()

	select {
	case err := <-hostErr:
		if err != nil {
			log.Fatal(color.RedString("%s", err))
		}
		return
	case <-ctx.Done():
	}

	if cfg.Debug {
		logger <- "Shutting down"
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = sshServer.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("failed to shut down cleanly: %s", err)
	}
}
