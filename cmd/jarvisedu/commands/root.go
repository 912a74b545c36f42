package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/config"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dialog"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/intent"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/kv"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Global configuration (loaded at init time)
	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jarvisedu",
	Short: "Voice-assistant core for assignments and study planning",
	Long: `jarvisedu - an education assistant you can talk to.

It keeps track of assignments, builds day-by-day study plans for
upcoming exams, and answers free-form questions through a chat model.

Examples:
  # Talk to the assistant
  jarvisedu chat

  # Manage assignments directly
  jarvisedu assignments add Math "problem set 4" friday
  jarvisedu assignments list --filter urgent
  jarvisedu assignments complete 3

  # Study plans
  jarvisedu plan create --subject Biology --exam "next friday" --hours 2
  jarvisedu plan today`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	cfg, err := config.LoadWithPath(configPath)
	if err != nil {
		// Deferred: commands that need config get a clear error via
		// getConfig(), while 'jarvisedu version' keeps working.
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func getConfig() (*config.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := config.LoadWithPath(configPath)
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// openService opens the persistent store and wraps it in the education
// service. The caller must invoke the returned closer.
func openService() (*education.Service, func(), error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, nil, err
	}
	dir := cfg.ResolveDataDir()
	store, err := kv.OpenBadger(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open data store at %s: %w", dir, err)
	}
	slog.Debug("opened data store", "dir", dir)

	closer := func() {
		if err := store.Close(); err != nil {
			slog.Warn("closing data store", "err", err)
		}
	}
	return education.NewService(store), closer, nil
}

// newAssistant wires the full assistant on top of the service.
func newAssistant(edu *education.Service) (*assistant.Assistant, error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, err
	}

	opts := []assistant.AssistantOption{
		assistant.WithSearcher(browserSearcher{}),
		assistant.WithClassifier(classifierConfig(cfg)),
	}
	if q := questionOverrides(cfg); q != nil {
		opts = append(opts, assistant.WithQuestions(q))
	}
	if key := cfg.ChatAPIKey(); key != "" {
		chat, err := assistant.NewOpenAIChat(key, cfg.Chat.Model, cfg.Chat.BaseURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, assistant.WithChatModel(chat))
	} else {
		slog.Debug("no chat api key configured, free-form chat disabled")
	}
	return assistant.New(edu, opts...), nil
}

// classifierConfig applies the config's focus defaults and music map
// on top of the stock classification parameters.
func classifierConfig(cfg *config.Config) intent.Config {
	ic := intent.DefaultConfig()
	if cfg.Focus.SessionMinutes > 0 {
		ic.FocusMinutes = cfg.Focus.SessionMinutes
	}
	if cfg.Focus.ExtendMinutes > 0 {
		ic.ExtendMinutes = cfg.Focus.ExtendMinutes
	}
	for keyword, file := range cfg.Music {
		ic.MusicFiles[keyword] = file
	}
	return ic
}

// questionOverrides merges "{context}.{field}" config overrides onto
// the default canned questions. Returns nil when nothing is overridden.
func questionOverrides(cfg *config.Config) dialog.Questions {
	if len(cfg.Questions) == 0 {
		return nil
	}
	merged := dialog.Questions{}
	for _, ctx := range []dialog.Context{dialog.ContextAddAssignment, dialog.ContextCreateStudyPlan} {
		merged[ctx] = map[string]string{}
		for field, q := range dialog.DefaultQuestions[ctx] {
			if override, ok := cfg.Questions[ctx.String()+"."+field]; ok {
				q = override
			}
			merged[ctx][field] = q
		}
	}
	return merged
}
