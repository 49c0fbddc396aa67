package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-surveyform/internal/config"
	"github.com/goliatone/go-surveyform/internal/logger"
	"github.com/goliatone/go-surveyform/internal/provider/httpprovider"
	"github.com/goliatone/go-surveyform/pkg/orchestrator"
	"github.com/goliatone/go-surveyform/pkg/provider"
	"github.com/goliatone/go-surveyform/pkg/render"
	"github.com/goliatone/go-surveyform/pkg/renderers/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "survey aborted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "surveyform: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg, err = parseFlags(cfg, args, stderr)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	orch, err := buildOrchestrator(cfg, log)
	if err != nil {
		return err
	}

	store, err := orch.NewStore()
	if err != nil {
		return err
	}
	renderOpts, err := orch.RenderOptions(orchestrator.Request{Locale: cfg.Locale})
	if err != nil {
		return err
	}
	session, err := tui.NewSession(store,
		tui.WithPromptDriver(tui.NewSurveyDriver(stdout)),
		tui.WithRenderOptions(renderOpts),
		tui.WithMaxAttempts(cfg.MaxAttempts),
		tui.WithConfirmSubmit(true),
		tui.WithLogger(log),
	)
	if err != nil {
		return err
	}

	summary, err := session.Run(ctx)
	if err != nil {
		return err
	}

	output, err := orch.Render(ctx, orchestrator.Request{
		Summary:      summary,
		Renderer:     cfg.Renderer,
		Locale:       cfg.Locale,
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.ThemeVariant,
	})
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(stdout, "Summary written to %s\n", cfg.Output)
		return nil
	}
	_, err = fmt.Fprintln(stdout, strings.TrimRight(string(output), "\n"))
	return err
}

// parseFlags layers command-line flags over the environment configuration.
func parseFlags(cfg config.Config, args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("surveyform", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "summary renderer (html, text, json)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (stdout if empty)")
	fs.StringVar(&cfg.ProviderURL, "provider-url", cfg.ProviderURL, "base URL of the question provider")
	fs.DurationVar(&cfg.ProviderTimeout, "provider-timeout", cfg.ProviderTimeout, "timeout for each provider call")
	fs.StringVar(&cfg.QuestionsFile, "questions", cfg.QuestionsFile, "JSON/YAML file of questions per topic")
	fs.StringVar(&cfg.DefinitionDir, "definitions", cfg.DefinitionDir, "directory of definition overrides")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "theme name")
	fs.StringVar(&cfg.ThemeVariant, "variant", cfg.ThemeVariant, "theme variant")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for labels")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "rejected submissions tolerated (0 = unlimited)")
	fs.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "log encoder (dev, prod)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildOrchestrator(cfg config.Config, log *logger.Logger) (*orchestrator.Orchestrator, error) {
	manifest := render.DefaultManifest()
	options := []orchestrator.Option{
		orchestrator.WithLogger(log),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithEnrichmentTimeout(cfg.ProviderTimeout),
		orchestrator.WithThemeSelector(render.NewStaticSelector(manifest.Name, "", manifest)),
	}

	p, err := questionProvider(cfg)
	if err != nil {
		return nil, err
	}
	if p != nil {
		options = append(options, orchestrator.WithProvider(p))
	}
	if dir := strings.TrimSpace(cfg.DefinitionDir); dir != "" {
		options = append(options, orchestrator.WithDefinitionFS(os.DirFS(dir)))
	}

	orch := orchestrator.New(options...)
	if err := orch.Err(); err != nil {
		return nil, err
	}
	return orch, nil
}

func questionProvider(cfg config.Config) (provider.QuestionProvider, error) {
	if url := strings.TrimSpace(cfg.ProviderURL); url != "" {
		p, err := httpprovider.New(url, httpprovider.WithTimeout(cfg.ProviderTimeout))
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	if path := strings.TrimSpace(cfg.QuestionsFile); path != "" {
		static, err := provider.LoadStatic(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		return static, nil
	}
	return nil, nil
}
