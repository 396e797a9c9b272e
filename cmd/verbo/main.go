package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verboapp/verbo/internal/app"
	"github.com/verboapp/verbo/internal/chat"
	"github.com/verboapp/verbo/internal/config"
	"github.com/verboapp/verbo/internal/content"
	"github.com/verboapp/verbo/internal/radio"
	"github.com/verboapp/verbo/internal/store"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "verbo",
	Short: "Verbo - leitura e estudo da Bíblia no terminal",
	Long: `Verbo é um aplicativo de terminal para leitura bíblica, biblioteca
de autores, dicionário, assistente de estudo, rádios cristãs, chat da
comunidade, cursos e quiz.

Sem argumentos, abre a interface interativa.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}

		// The TUI owns stdout, so logs always go to a file.
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{cfg.LogPath()}
		zcfg.ErrorOutputPaths = []string{cfg.LogPath()}
		if cfg.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	st, err := store.Open(cfg.DBPath(), logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var cc *content.Client
	if cfg.GeminiAPIKey != "" {
		cc, err = content.New(ctx, cfg.GeminiAPIKey, content.Config{
			Model:      cfg.Model,
			ProModel:   cfg.ProModel,
			Timeout:    cfg.ContentTimeout,
			MaxRetries: cfg.ContentRetries,
		}, logger)
		if err != nil {
			return fmt.Errorf("content client: %w", err)
		}
	} else {
		logger.Warn("no API key configured, generated content disabled")
	}

	player := radio.NewPlayer(cfg.PlayerBin, cfg.PlayerArgs, cfg.SpeechBin, cfg.SpeechArgs, logger)
	defer player.Stop()

	model := app.New(cfg, st, cc, chat.NewService(st, logger), player, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// withStore opens the store for a one-shot subcommand.
func withStore(fn func(*store.Store) error) error {
	st, err := store.Open(cfg.DBPath(), logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Operações administrativas pela linha de comando",
}

var adminLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Bloqueia o aplicativo para todos os usuários",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if st.AdminSettings().AppLocked {
				fmt.Println("já bloqueado")
				return nil
			}
			locked, err := st.ToggleAppLock()
			if err != nil {
				return err
			}
			fmt.Printf("bloqueado: %v\n", locked)
			return nil
		})
	},
}

var adminUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Desbloqueia o aplicativo",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if !st.AdminSettings().AppLocked {
				fmt.Println("já desbloqueado")
				return nil
			}
			locked, err := st.ToggleAppLock()
			if err != nil {
				return err
			}
			fmt.Printf("bloqueado: %v\n", locked)
			return nil
		})
	},
}

var adminMaintenanceCmd = &cobra.Command{
	Use:       "maintenance {on|off}",
	Short:     "Liga ou desliga o modo manutenção",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			on := args[0] == "on"
			if err := st.SetMaintenance(on); err != nil {
				return err
			}
			fmt.Printf("manutenção: %v\n", on)
			return nil
		})
	},
}

var adminLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Lista os acessos registrados",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			logs := st.AccessLogs()
			if len(logs) == 0 {
				fmt.Println("nenhum acesso registrado")
				return nil
			}
			for _, l := range logs {
				fmt.Printf("%s  %-30s  %s\n", l.Timestamp, l.Email, l.DeviceInfo)
			}
			return nil
		})
	},
}

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apaga todos os dados do aplicativo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("confirme com --yes")
		}
		return withStore(func(st *store.Store) error {
			if err := st.FactoryReset(); err != nil {
				return err
			}
			fmt.Println("dados restaurados ao padrão de fábrica")
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "arquivo de configuração")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "logs em nível debug")

	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirma a restauração")

	adminCmd.AddCommand(adminLockCmd, adminUnlockCmd, adminMaintenanceCmd, adminLogsCmd)
	rootCmd.AddCommand(adminCmd, resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
