package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"postview/internal/config"
	"postview/internal/eventbus"
	"postview/internal/location"
	"postview/internal/metrics"
	"postview/internal/posts"
	"postview/internal/ui"
)

func main() {
	var (
		configPath  string
		endpoint    string
		rawLocation string
		timeout     string
		logPath     string
		metricsAddr string
		writeConfig bool
	)
	flag.StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to the TOML config file")
	flag.StringVarP(&endpoint, "endpoint", "e", "", "Posts endpoint (overrides config)")
	flag.StringVarP(&rawLocation, "location", "l", "/", "Initial location, e.g. \"/?search=World\"")
	flag.StringVar(&timeout, "timeout", "", "Request timeout as a Go duration (overrides config)")
	flag.StringVar(&logPath, "log-file", "", "Log file (overrides config)")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (overrides config)")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config to the config path and exit")
	flag.Parse()

	// A bare positional argument is taken as the location
	if !flag.CommandLine.Changed("location") && flag.NArg() > 0 {
		rawLocation = flag.Arg(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if timeout != "" {
		cfg.Timeout = timeout
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	requestTimeout, err := cfg.RequestTimeout()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	initial, err := location.Parse(rawLocation)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	client, err := posts.NewClient(cfg.Endpoint, requestTimeout)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	collector := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := collector.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("Metrics listener failed: %v", err)
			}
		}()
	}

	loader := posts.NewLoader(client, bus, collector)

	uiModel := ui.NewModel(ui.Options{
		Context:  ctx,
		Loader:   loader,
		Bus:      bus,
		Config:   cfg,
		Initial:  initial,
		Observer: collector,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward load outcomes to the UI; the model ignores duplicates
	eventChan := make(chan eventbus.DomainEvent, 16)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventPostsLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventPostsFailed, forwardEvent)

	bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchChangedEvent); ok {
			log.Printf("Search term %q, location %s", event.Term, event.Location)
		}
	})

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if os.Getenv("POSTVIEW_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI at %s", initial)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()

	// Print the final location so the view can be reopened where it was left
	fmt.Println(uiModel.Location())
}

// setupLogging points std log at path. The terminal belongs to the TUI, so
// with no path the logs are discarded.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(logFile)
	return logFile, nil
}
