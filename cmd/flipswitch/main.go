package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tuikit/flipswitch/internal/config"
	"github.com/tuikit/flipswitch/internal/logger"
	"github.com/tuikit/flipswitch/internal/toggle"
	"github.com/tuikit/flipswitch/internal/tui"
)

// CLI defines the flipswitch command structure.
type CLI struct {
	// Default demo command (runs when no subcommand given)
	Demo DemoCmd `cmd:"" default:"withargs" help:"Run the animated switch demo"`

	// Subcommands
	Curve CurveCmd `cmd:"" help:"Print the easing curve as text"`
}

// DemoCmd runs the TUI demo. Flags override FLIPSWITCH_* environment
// variables and the optional .env file.
type DemoCmd struct {
	Duration time.Duration `flag:"" optional:"" help:"Transition duration (default 600ms)"`
	ColorOff string        `flag:"" optional:"" help:"Track color when off (hex)"`
	ColorOn  string        `flag:"" optional:"" help:"Track color when on (hex)"`
	LogFile  string        `flag:"" optional:"" help:"Write JSON logs to this file"`
}

// Run executes the demo command.
func (c *DemoCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if c.Duration > 0 {
		cfg.Duration = c.Duration
	}
	if c.ColorOff != "" {
		cfg.ColorOff = c.ColorOff
	}
	if c.ColorOn != "" {
		cfg.ColorOn = c.ColorOn
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}

	_, logFile, err := logger.Setup(cfg)
	if err != nil {
		return err
	}

	if logFile != nil {
		defer logFile.Close()
	}

	// Mouse hit testing for gesture zones.
	zone.NewGlobal()
	defer zone.Close()

	m, err := tui.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}

	return nil
}

// CurveCmd prints the ease-in-ease-out curve, mostly useful for eyeballing
// how a duration will feel.
type CurveCmd struct {
	Steps int `flag:"" default:"24" help:"Number of samples across the transition"`
}

// Run executes the curve command.
func (c *CurveCmd) Run() error {
	if c.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", c.Steps)
	}

	const barWidth = 40

	for i := 0; i <= c.Steps; i++ {
		t := float64(i) / float64(c.Steps)
		p := toggle.EaseInOut(t)
		bar := strings.Repeat("█", int(p*barWidth))

		fmt.Printf("t=%.3f p=%.3f %s\n", t, p, bar)
	}

	return nil
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("flipswitch"),
		kong.Description("An animated terminal toggle switch."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run())
}
