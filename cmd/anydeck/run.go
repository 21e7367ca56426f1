package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/any-deck/accounts"
	"github.com/anyproto/any-deck/accountstore"
	"github.com/anyproto/any-deck/app"
	"github.com/anyproto/any-deck/app/logger"
	"github.com/anyproto/any-deck/config"
	"github.com/anyproto/any-deck/event"
	"github.com/anyproto/any-deck/identitystore"
	"github.com/anyproto/any-deck/metric"
	"github.com/anyproto/any-deck/relaypool"
)

var log = logger.NewNamed("main")

var (
	configPath string
	logLevels  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the terminal client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the yaml config, defaults are used when empty")
	runCmd.Flags().StringVar(&logLevels, "log-levels", "", `Named log levels, e.g. "anydeck.relaypool=DEBUG;accounts=INFO"`)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.NewFromFile(configPath)
}

func run(ctx context.Context) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	if logLevels != "" {
		conf.Log.Levels = append(logger.LevelsFromStr(logLevels), conf.Log.Levels...)
	}
	// stderr belongs to the terminal ui
	conf.Log.DisableStdErr = true
	if len(conf.Log.AddOutputPaths) == 0 {
		conf.Log.AddOutputPaths = []string{"anydeck.log"}
	}
	if err = conf.Log.ApplyGlobal(); err != nil {
		return fmt.Errorf("apply log config: %w", err)
	}

	a := new(app.App)
	Bootstrap(a, conf)
	if err = a.Start(ctx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	log.Info("app started", zap.String("version", app.VersionDescription()))
	defer func() {
		if closeErr := a.Close(context.Background()); closeErr != nil {
			log.Error("close app", zap.Error(closeErr))
		}
	}()

	m, err := newModel(a, conf)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	app.MustComponent[relaypool.RelayPool](a).SetEventHandler(func(relayUrl, subId string, ev *event.Event) {
		p.Send(relayEventMsg{relay: relayUrl, event: ev})
	})
	_, err = p.Run()
	return err
}

// Bootstrap registers components in start order
func Bootstrap(a *app.App, conf *config.Config) {
	a.Register(conf).
		Register(metric.New()).
		Register(identitystore.New()).
		Register(accountstore.New()).
		Register(relaypool.New()).
		Register(accounts.New())
}
