// Command tuilog-demo runs a small tview application that displays its own
// log output in a live window. A background goroutine emits records at
// rotating levels so there is something to watch.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/quelltext/tuilog/pkg/tuilog"
)

func main() {
	configPath := flag.String("config", "", "Optional tuilog config file (.toml, .json or .json5).")
	flag.Parse()

	cfg := tuilog.DefaultConfig().WithStdout(false)
	if *configPath != "" {
		loaded, err := tuilog.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded.WithStdout(false) // stdout belongs to the TUI here
	}

	handle, err := tuilog.InitWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to install logger: %v\n", err)
		os.Exit(1)
	}

	app := tview.NewApplication()
	system := handle.CreateSystem(app, tuilog.WindowSpec{
		Title:  "Console Log",
		Border: true,
		Wrap:   false,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	system.Start(ctx)

	go spam(ctx)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(system.Window(), true).Run(); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
	cancel()
}

// spam emits a record every few milliseconds, cycling through all levels.
func spam(ctx context.Context) {
	words := []string{
		"Bumfuzzled", "Cattywampus", "Snickersnee", "Abibliophobia",
		"Absquatulate", "Nincompoop", "Pauciloquent",
	}
	logger := slog.With(tuilog.TargetKey, "demo")

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		word := words[i%len(words)]
		switch (i / 10) % 5 {
		case 0:
			logger.Log(ctx, tuilog.SlogLevelTrace, "Hello, here's a word", "word", word)
		case 1:
			logger.Debug("Hello, here's a word", "word", word)
		case 2:
			logger.Info("Hello, here's a word", "word", word)
		case 3:
			logger.Warn("Hello, here's a word", "word", word)
		case 4:
			logger.Error("Hello, here's a word", "word", word)
		}
	}
}
