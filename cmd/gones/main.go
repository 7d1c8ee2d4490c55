// Package main implements the gones NES emulator executable.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"gones/internal/cartridge"
	"gones/internal/config"
	"gones/internal/console"
	"gones/internal/graphics"
	"gones/internal/logging"
	"gones/internal/version"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("gones: %v", err)
	}

	logger := logging.New("MAIN", logging.ParseLevel(cfg.LogLevel))
	setupGracefulShutdown(logger)

	fmt.Println("🎮 gones - Go NES Emulator Starting...")
	fmt.Printf("   version %s (%s)\n", version.Version, version.GitCommit)

	if cfg.ROMPath == "" {
		printUsage()
		os.Exit(0)
	}

	cart, err := cartridge.LoadFile(cfg.ROMPath)
	if err != nil {
		log.Fatalf("gones: failed to load ROM: %v", err)
	}
	fmt.Printf("📁 Loaded ROM: %s\n", cfg.ROMPath)

	nes := console.New()
	nes.LoadCartridge(cart)
	nes.Reset()

	switch cfg.Backend {
	case config.BackendHeadless:
		fmt.Println("🖥️  Running headless...")
		graphics.RunHeadless(nes, 120)
	case config.BackendTerminal:
		fmt.Println("🖥️  Starting terminal UI...")
		if err := graphics.Run(graphics.NewTerminalModel(nes)); err != nil {
			log.Fatalf("gones: terminal backend failed: %v", err)
		}
	default:
		width, height := cfg.WindowResolution()
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("gones")
		game := graphics.NewEbitenGame(nes, cfg.Scale, cfg.ShowFPS)
		if err := ebiten.RunGame(game); err != nil {
			log.Fatalf("gones: ebiten backend failed: %v", err)
		}
	}

	fmt.Println("👋 Emulator shutting down...")
}

func setupGracefulShutdown(logger *logging.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Infof("interrupt received, shutting down")
		os.Exit(0)
	}()
}

func printUsage() {
	fmt.Println("gones - Go NES Emulator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gones [-backend ebiten|terminal|headless] [-scale N] [-log-level LEVEL] <rom.nes>")
	fmt.Println()
	fmt.Println("CONTROLS (ebiten backend, Player 1):")
	fmt.Println("  W A S D   - D-Pad")
	fmt.Println("  J         - A Button")
	fmt.Println("  K         - B Button")
	fmt.Println("  Enter     - Start")
	fmt.Println("  Space     - Select")
	fmt.Println("  Escape    - Quit")
	fmt.Println()
	fmt.Println("CONTROLS (terminal backend):")
	fmt.Println("  space/n   - step one frame")
	fmt.Println("  r         - toggle free-run")
	fmt.Println("  q         - quit")
}
