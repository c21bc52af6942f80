package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Load environment variables from a local .env file when present.
	_ "github.com/joho/godotenv/autoload"
)

// Output formats for the consolidated report.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Config holds all application configuration
type Config struct {
	InputDir   string // folder holding the monthly PDF reports
	OutputFile string // path of the generated report
	Format     string // FormatXLSX or FormatCSV
	Workers    int    // documents extracted concurrently
	Verbose    bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		InputDir:   getEnv("FECHAMENTO_INPUT_DIR", "PDF"),
		OutputFile: getEnv("FECHAMENTO_OUTPUT_FILE", ""),
		Format:     strings.ToLower(getEnv("FECHAMENTO_FORMAT", FormatXLSX)),
		Workers:    getEnvAsInt("FECHAMENTO_WORKERS", 1),
		Verbose:    getEnvAsBool("FECHAMENTO_VERBOSE", false),
	}

	if cfg.Format != FormatXLSX && cfg.Format != FormatCSV {
		return nil, fmt.Errorf("FECHAMENTO_FORMAT must be %q or %q, got %q", FormatXLSX, FormatCSV, cfg.Format)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "Relatorio_Mensal_Completo." + cfg.Format
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
