package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fechamento",
	Short: "Consolida relatórios de fechamento (PDF) em uma planilha mensal",
	Long: `fechamento lê os relatórios de fechamento do PDV (arquivos PDF em uma
pasta), extrai as vendas de cada relatório e gera uma única planilha com
todas as vendas do mês, o total vendido e o meio de pagamento mais
frequente.

Exemplos:
  fechamento process                  # processa a pasta PDF/ (padrão)
  fechamento process --dir ./agosto   # processa outra pasta
  fechamento process --format csv     # gera CSV em vez de xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "logs detalhados")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
