package cmd

import (
	"io"

	"github.com/padaria-criativa/catalog/internal/catalog/service"
	"github.com/padaria-criativa/catalog/internal/catalog/store"
	"github.com/padaria-criativa/catalog/internal/cli"
	"github.com/padaria-criativa/catalog/internal/config"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "padaria",
	Short:         "Cadastro de produtos, oferta do dia e relatório de estoque da padaria",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logx.Init(logx.LoggerOpts{
		Environment: cfg.Env(),
		Level:       cfg.Level(),
	})
	logx.Debug().
		Str("environment", cfg.Env().String()).
		Str("data_file", cfg.Catalog.DataFile).
		Str("export_file", cfg.Catalog.ExportFile).
		Msg("configuration loaded")

	st := store.New(afero.NewOsFs(), cfg.Catalog.DataFile, out)
	svc := service.New(st, cfg.Catalog)
	return cli.New(svc, in, out).Run()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Fatal().Err(err).Msg("padaria stopped")
	}
}
