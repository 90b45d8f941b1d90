package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/slack-schedule-collector/internal/config"
	"github.com/slack-schedule-collector/internal/database"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/internal/domain/service"
	"github.com/slack-schedule-collector/internal/slackadapter"
	"github.com/slack-schedule-collector/migrator/sqlite"
	"github.com/slack-schedule-collector/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "collector",
		Short: "Collects schedules from Slack messages and fires reminders",
		Long: `Ingests chat messages from configured Slack workspaces, extracts
structured schedule information from Korean date/time phrases, persists the
results, and fires reminders for upcoming schedules.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	rootCmd.AddCommand(runCmd(), syncCmd(), resetCmd(), workspaceCmd(), tagCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config, opens the database, migrates, and builds services.
func bootstrap() (*service.Instance, *database.DB, error) {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	dm := database.NewInstance(db)

	if err := service.EnsureDefaultTags(dm); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to seed default tags: %w", err)
	}

	source := slackadapter.New(log)
	notifier := slackadapter.NewNotifier(cfg.Notifier.Token, cfg.Notifier.Channel, log)
	opener := &logOpener{log: log.WithComponent("opener")}

	return service.NewInstance(dm, source, notifier, opener, log), db, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the collector daemon (periodic sync + reminder poller)",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := services.Notifier.Start(); err != nil {
				return fmt.Errorf("failed to start notifier: %w", err)
			}
			defer services.Notifier.Stop()

			c := cron.New()
			spec := fmt.Sprintf("@every %s", cfg.Sync.Interval)
			_, err = c.AddFunc(spec, func() {
				if _, err := services.Sync.Sync(context.Background()); err != nil {
					log.Error().Err(err).Msg("sync failed")
				}
			})
			if err != nil {
				return fmt.Errorf("failed to register sync job: %w", err)
			}
			c.Start()
			defer c.Stop()

			go startHealthServer()

			// First pass right away instead of waiting an interval.
			if _, err := services.Sync.Sync(context.Background()); err != nil {
				log.Error().Err(err).Msg("initial sync failed")
			}

			log.Info().Str("sync_interval", cfg.Sync.Interval).Msg("collector running")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("shutting down")
			return nil
		},
	}
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one ingestion pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := services.Sync.Sync(cmd.Context())
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println("sync already in progress")
				return nil
			}

			fmt.Printf("fetched %d messages, extracted %d, upserted %d, skipped %d\n",
				result.Fetched, result.Extracted, result.Upserted, result.Skipped)
			if len(result.FailedWorkspaces) > 0 {
				fmt.Printf("failed workspaces: %s\n", strings.Join(result.FailedWorkspaces, ", "))
			}
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the database file (all schedules, tags, and workspaces)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if !yes {
				return fmt.Errorf("refusing to wipe %s without --yes", cfg.Database.Path)
			}

			for _, suffix := range []string{"", "-wal", "-shm"} {
				path := cfg.Database.Path + suffix
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
			}

			fmt.Printf("removed %s\n", cfg.Database.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}

func workspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage workspace configurations",
	}

	var (
		name      string
		channelID string
		token     string
		userID    string
		teamID    string
		keywords  []string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a workspace configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			ws := &entity.WorkspaceConfig{
				Name:      name,
				ChannelID: channelID,
				Token:     token,
				UserID:    userID,
				TeamID:    teamID,
				Keywords:  keywords,
				Enabled:   true,
			}
			if err := services.Workspace.Create(cmd.Context(), ws); err != nil {
				return err
			}

			fmt.Printf("added workspace %s (%s)\n", ws.Name, ws.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "display name")
	addCmd.Flags().StringVar(&channelID, "channel", "", "channel id to ingest from")
	addCmd.Flags().StringVar(&token, "token", "", "bot token")
	addCmd.Flags().StringVar(&userID, "user", "", "user id for mention detection")
	addCmd.Flags().StringVar(&teamID, "team", "", "team id for deep links")
	addCmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keyword filter (empty fetches everything)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("channel")
	addCmd.MarkFlagRequired("token")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			configs, err := services.Workspace.List()
			if err != nil {
				return err
			}

			for _, ws := range configs {
				state := "enabled"
				if !ws.Enabled {
					state = "disabled"
				}
				fmt.Printf("%s  %s  channel=%s  %s  keywords=%v\n",
					ws.ID, ws.Name, ws.ChannelID, state, ws.Keywords)
			}
			return nil
		},
	}

	enableCmd := &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a workspace configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setWorkspaceEnabled(cmd.Context(), args[0], true)
		},
	}

	disableCmd := &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a workspace configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setWorkspaceEnabled(cmd.Context(), args[0], false)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a workspace configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			return services.Workspace.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(addCmd, listCmd, enableCmd, disableCmd, removeCmd)
	return cmd
}

func tagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	var (
		name  string
		color string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			tag := &entity.Tag{Name: name, Color: color}
			if err := services.Tag.Create(cmd.Context(), tag); err != nil {
				return err
			}

			fmt.Printf("added tag %s (%s)\n", tag.Name, tag.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "tag name")
	addCmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #4A90D9")
	addCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			tags, err := services.Tag.List()
			if err != nil {
				return err
			}

			for _, tag := range tags {
				fmt.Printf("%s  %s  %s\n", tag.ID, tag.Name, tag.Color)
			}
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a tag (schedules keep their reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			return services.Tag.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(addCmd, listCmd, removeCmd)
	return cmd
}

func setWorkspaceEnabled(ctx context.Context, id string, enabled bool) error {
	services, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer db.Close()

	return services.Workspace.SetEnabled(ctx, id, enabled)
}

// logOpener stands in for the presentation layer's ScheduleOpener in the
// headless daemon.
type logOpener struct {
	log *logger.Logger
}

func (o *logOpener) OpenSchedule(scheduleID string) {
	o.log.Info().Str("schedule_id", scheduleID).Msg("open schedule requested")
}

func startHealthServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("health server stopped")
	}
}
