// Command tinyblue-sim runs the demo menu on a terminal, an SDL window or a
// real HD44780 LCD.
//
//	tinyblue-sim                          # interactive terminal
//	tinyblue-sim -display sim -font DejaVuSansMono.ttf
//	tinyblue-sim -display lcd -bus /dev/i2c-1 -input /dev/input/event0
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/constants"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/platform/simulator"
	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/platform/term"
	xterm "golang.org/x/term"
)

//go:embed menu.toml
var defaultMenu string

type config struct {
	menuPath string
	display  string
	bus      string
	addr     uint
	input    string
	led      string
	font     string
	logFile  string
	logLevel string
}

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	var cfg config
	flag.StringVar(&cfg.menuPath, "menu", "", "menu definition (TOML); the built-in demo menu when empty")
	flag.StringVar(&cfg.display, "display", "term", "display: term, sim or lcd")
	flag.StringVar(&cfg.bus, "bus", "/dev/i2c-1", "i2c-dev bus for -display lcd")
	flag.UintVar(&cfg.addr, "addr", 0x27, "I2C address of the LCD backpack")
	flag.StringVar(&cfg.input, "input", "", "evdev input device; overrides the menu's [input] device")
	flag.StringVar(&cfg.led, "led", "", "sysfs LED brightness file toggled by the LED screen")
	flag.StringVar(&cfg.font, "font", "", "TrueType font for -display sim")
	flag.StringVar(&cfg.logFile, "log-file", "", "also write logs to this file")
	flag.StringVar(&cfg.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "tinyblue-sim:", err)
		tinyblue.Close()
		os.Exit(1)
	}
	tinyblue.Close()
}

func run(cfg config) error {
	if cfg.logFile != "" {
		tinyblue.SetLogPath(cfg.logFile)
	}
	if cfg.logLevel != "" {
		tinyblue.SetRawLogLevel(cfg.logLevel)
	}
	logger := tinyblue.GetLogger()

	b := &board{ledPath: cfg.led}
	menu, err := loadMenu(cfg.menuPath, b.actions())
	if err != nil {
		return err
	}

	rows, columns := menu.Options.Rows, menu.Options.Columns
	if rows == 0 {
		rows = constants.DefaultRows
	}
	if columns == 0 {
		columns = constants.DefaultColumns
	}
	queue := tinyblue.NewEventQueue(menu.File.Input.Debounce)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting menu", "display", cfg.display, "rows", rows, "columns", columns)

	switch cfg.display {
	case "sim":
		return runSimulator(ctx, cfg, menu, b, queue, rows, columns)
	case "term":
		return runLoop(ctx, cfg, menu, b, queue, term.New(rows, columns, nil))
	case "lcd":
		display, closeBus, err := openLCD(cfg.bus, uint8(cfg.addr), rows, columns)
		if err != nil {
			return err
		}
		defer closeBus()
		return runLoop(ctx, cfg, menu, b, queue, display)
	default:
		return fmt.Errorf("unknown display %q", cfg.display)
	}
}

func loadMenu(path string, actions map[string]tinyblue.Action) (*tinyblue.Menu, error) {
	if path == "" {
		return tinyblue.LoadMenu(strings.NewReader(defaultMenu), ".", actions)
	}
	return tinyblue.LoadMenuFile(path, actions)
}

// runLoop drives the menu on display. With a terminal display the key
// presses come from the terminal as well as from any evdev device.
func runLoop(ctx context.Context, cfg config, menu *tinyblue.Menu, b *board, queue *tinyblue.EventQueue, display tinyblue.Display) error {
	nav, err := menu.Build(display)
	if err != nil {
		return err
	}
	b.bind(menu)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	device := cfg.input
	if device == "" {
		device = menu.File.Input.Device
	}
	screen, interactive := display.(*term.Display)
	if interactive && !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the term display needs an interactive terminal")
	}
	if device == "" && !interactive {
		return errors.New("no input device; set -input or [input] device")
	}

	errc := make(chan error, 3)
	if device != "" {
		go func() { errc <- readButtons(ctx, device, menu.File.Input, queue) }()
	}
	if interactive {
		go func() {
			errc <- term.Run(ctx, screen, queue)
			cancel()
		}()
	}

	loop := &tinyblue.Loop{Navigator: nav, Queue: queue, OnRefresh: b.refresh}
	go func() { errc <- loop.Run(ctx) }()

	err = <-errc
	cancel()
	return err
}

// runSimulator keeps SDL on the main goroutine and steps the loop by hand.
func runSimulator(ctx context.Context, cfg config, menu *tinyblue.Menu, b *board, queue *tinyblue.EventQueue, rows, columns int) error {
	sim, err := simulator.New(rows, columns, simulator.Options{FontPath: cfg.font})
	if err != nil {
		return err
	}
	defer sim.Close()

	nav, err := menu.Build(sim)
	if err != nil {
		return err
	}
	b.bind(menu)

	loop := &tinyblue.Loop{Navigator: nav, Queue: queue, OnRefresh: b.refresh}
	if err := loop.RefreshNow(); err != nil {
		return err
	}

	tick := time.NewTicker(constants.DefaultTickInterval)
	defer tick.Stop()
	refresh := time.NewTicker(constants.DefaultRefreshInterval)
	defer refresh.Stop()

	for sim.PumpEvents(queue) {
		select {
		case <-ctx.Done():
			return nil
		case <-refresh.C:
			err = loop.RefreshNow()
		case <-tick.C:
			err = loop.Step()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
