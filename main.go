package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"sedecim/internal/buffer"
	"sedecim/internal/config"
	"sedecim/internal/events"
	"sedecim/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
)

const logo = `
                _              _
 ___   ___   __| |  ___   ___ (_) _ __ ___
/ __| / _ \ / _` + "`" + ` | / _ \ / __|| || '_ ` + "`" + ` _ \
\__ \|  __/| (_| ||  __/| (__ | || | | | | |
|___/ \___| \__,_| \___| \___||_||_| |_| |_|
`

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Println("You must pass a file name")
		fmt.Print(logo + "\n")
		fmt.Println("usage: sedecim <path>")
		return 0
	}

	cfg, cfgErr := config.Load()

	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "sedecim")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	}
	if cfgErr != nil {
		log.Printf("config %s: %v, using defaults", config.ConfigPath(), cfgErr)
	}

	win, err := buffer.Open(args[1], cfg.CachePages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open %s: %v\n", args[1], err)
		return 1
	}
	log.Printf("opened %s (%d bytes)", win.Filename(), win.Size())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := events.NewSource(ctx, cfg.TickRate())
	model := viewer.NewModel(win, source, config.NewStyles(&cfg.Theme))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		log.Printf("terminal: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	fmt.Print("\n\n")
	fmt.Print(logo + "\n")
	fmt.Print("\nThank you for using sedecim!\n\n")
	return 0
}
