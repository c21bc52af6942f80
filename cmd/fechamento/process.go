package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/extract"
	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/payment"
	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/report"
	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/pkg/config"
	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/pkg/money"
)

var (
	flagDir     string
	flagOut     string
	flagFormat  string
	flagWorkers int
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Processa a pasta de relatórios e gera a planilha consolidada",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "pasta com os relatórios PDF (padrão: PDF)")
	processCmd.Flags().StringVarP(&flagOut, "out", "o", "", "caminho da planilha gerada")
	processCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "formato de saída: xlsx ou csv")
	processCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "arquivos processados em paralelo")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment, but only when actually set.
	if cmd.Flags().Changed("dir") {
		cfg.InputDir = flagDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(flagFormat)
		if cfg.Format != config.FormatXLSX && cfg.Format != config.FormatCSV {
			return fmt.Errorf("formato inválido %q (use xlsx ou csv)", flagFormat)
		}
		if !cmd.Flags().Changed("out") {
			cfg.OutputFile = "Relatorio_Mensal_Completo." + cfg.Format
		}
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputFile = flagOut
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}

	logger := newLogger(verbose || cfg.Verbose)

	svc := report.NewService(
		extract.NewPDFReader(),
		extract.NewParser(payment.NewClassifier()),
		logger,
	).WithWorkers(cfg.Workers)

	res, err := svc.Run(cfg.InputDir)
	if err != nil {
		if errors.Is(err, report.ErrNoTransactions) {
			fmt.Println("Nenhuma transação de venda foi encontrada nos arquivos PDF.")
			return nil
		}
		return err
	}

	switch cfg.Format {
	case config.FormatCSV:
		err = report.WriteCSV(cfg.OutputFile, res)
	default:
		err = report.WriteXLSX(cfg.OutputFile, res)
	}
	if err != nil {
		return fmt.Errorf("gravar planilha: %w", err)
	}

	fmt.Printf("Relatório consolidado gerado com sucesso: %s\n", cfg.OutputFile)
	fmt.Printf("Vendas: %d | Total: %s | Meio de pagamento mais frequente: %s\n",
		len(res.Records), money.FormatBRL(res.Total), res.MostFrequent)
	if res.FilesFailed > 0 {
		fmt.Fprintf(os.Stderr, "Aviso: %d arquivo(s) não puderam ser processados.\n", res.FilesFailed)
	}
	return nil
}
