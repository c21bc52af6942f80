// Package report orchestrates the monthly batch: scanning the report folder,
// extracting sale transactions from each PDF, and writing the consolidated
// spreadsheet.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/extract"
	"github.com/MatheusGuedes02/Fechamento-Ecomadeiras/internal/payment"
)

// ErrNoTransactions reports that the scanned files held no sales at all.
// It is distinct from a missing folder: the folder was there, the reports
// just contained nothing to consolidate.
var ErrNoTransactions = errors.New("no sale transactions found")

// Result is the outcome of one batch run over a report folder.
type Result struct {
	Records      []extract.Transaction // sorted by order number, then date
	Total        decimal.Decimal       // sum of all sale totals
	MostFrequent string                // winning elementary payment category
	FilesSeen    int
	FilesFailed  int
	Stats        extract.Stats
}

// Service runs the extraction batch. Each document is independent: a failure
// in one file is logged and the batch moves on to the next.
type Service struct {
	reader  extract.Reader
	parser  *extract.Parser
	logger  *slog.Logger
	workers int
}

// NewService creates a batch service over the given reader and parser.
func NewService(reader extract.Reader, parser *extract.Parser, logger *slog.Logger) *Service {
	return &Service{
		reader:  reader,
		parser:  parser,
		logger:  logger,
		workers: 1,
	}
}

// WithWorkers sets how many documents are extracted concurrently. Documents
// are independent, so results are merged by concatenation; the final sort
// keeps the output deterministic regardless of completion order.
func (s *Service) WithWorkers(n int) *Service {
	if n > 1 {
		s.workers = n
	}
	return s
}

type fileResult struct {
	path    string
	records []extract.Transaction
	stats   extract.Stats
	err     error
}

// Run processes every PDF report in dir. A missing folder is the only fatal
// condition; every other failure is scoped to its file. When the folder held
// files but no sales, Run returns the partial Result together with
// ErrNoTransactions.
func (s *Service) Run(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("report folder %q not found", dir)
	}

	files, err := listReports(dir)
	if err != nil {
		return nil, fmt.Errorf("scan report folder: %w", err)
	}

	logger := s.logger.With("run_id", uuid.NewString())
	logger.Info("starting batch", "folder", dir, "files", len(files), "workers", s.workers)

	res := &Result{Total: decimal.Zero}
	res.FilesSeen = len(files)

	for _, fr := range s.extractAll(files) {
		name := filepath.Base(fr.path)
		if fr.err != nil {
			// Keep whatever the file yielded before it failed.
			res.FilesFailed++
			res.Records = append(res.Records, fr.records...)
			res.Stats.Add(fr.stats)
			logger.Error("report aborted", "file", name, "sales_kept", len(fr.records), "error", fr.err)
			continue
		}
		res.Records = append(res.Records, fr.records...)
		res.Stats.Add(fr.stats)
		logger.Debug("report processed",
			"file", name,
			"sales", fr.stats.Matched,
			"blocks", fr.stats.Blocks,
			"skipped", fr.stats.Skipped,
		)
	}

	if len(res.Records) == 0 {
		return res, ErrNoTransactions
	}

	sort.Slice(res.Records, func(i, j int) bool {
		a, b := res.Records[i], res.Records[j]
		if a.OrderNumber != b.OrderNumber {
			return a.OrderNumber < b.OrderNumber
		}
		return a.Date.Before(b.Date)
	})

	descriptions := make([]string, len(res.Records))
	for i, rec := range res.Records {
		res.Total = res.Total.Add(rec.Total)
		descriptions[i] = rec.Payment
	}
	res.MostFrequent = payment.MostFrequent(descriptions)

	logger.Info("batch finished",
		"sales", len(res.Records),
		"failed_files", res.FilesFailed,
		"most_frequent", res.MostFrequent,
	)
	return res, nil
}

// extractAll runs processFile over every path, sequentially or through a
// bounded worker pool.
func (s *Service) extractAll(files []string) []fileResult {
	if s.workers <= 1 || len(files) < 2 {
		out := make([]fileResult, 0, len(files))
		for _, path := range files {
			out = append(out, s.processFile(path))
		}
		return out
	}

	jobs := make(chan string)
	results := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- s.processFile(path)
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make([]fileResult, 0, len(files))
	for fr := range results {
		out = append(out, fr)
	}
	return out
}

func (s *Service) processFile(path string) fileResult {
	text, err := s.reader.ReadText(path)
	if err != nil {
		return fileResult{path: path, err: fmt.Errorf("extract text: %w", err)}
	}

	records, stats, err := s.parser.Parse(text)
	if err != nil {
		return fileResult{path: path, records: records, stats: stats, err: fmt.Errorf("parse: %w", err)}
	}
	return fileResult{path: path, records: records, stats: stats}
}

// listReports returns the PDF files directly inside dir, in name order.
// Anything else in the folder is ignored.
func listReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
