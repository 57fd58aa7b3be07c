package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/radhian/receipt-reconciliation/config"
	"github.com/radhian/receipt-reconciliation/infra/db"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/usecase/batch"
	reconciliationUsecase "github.com/radhian/receipt-reconciliation/usecase/reconciliation"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	database   string
	workers    int
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "batch_check",
	Short: "Check a CSV file of receipts against the loan database",
	Long: `batch_check reads receipts (loan_no, receipt_no, amount, date) from a CSV file,
runs the receipt checks for each one and writes a CSV report.

Example:
  batch_check -i receipts.csv -o report.csv -d LoanDB -w 8`,
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "input CSV file (required)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "report CSV file (default stdout)")
	rootCmd.Flags().StringVarP(&database, "database", "d", "", "database to check against (default DB_DATABASE)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent workers (default BATCH_WORKERS)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "environment file to load")
	_ = rootCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load(envFile)
	cfg.ConfigureLogging()

	if database == "" {
		database = cfg.DB.Database
	}
	if !allowed(cfg.AllowedDatabases, database) {
		return fmt.Errorf("database %q: %w", database, db.ErrUnknownDatabase)
	}
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}

	conn, err := db.Open(cfg.DB, database)
	if err != nil {
		return err
	}
	defer conn.Close()

	in, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer f.Close()
		out = f
	}

	session := func(ctx context.Context, fn func(reconciliationUsecase.ReceiptStore) error) error {
		return db.ReadOnly(ctx, conn, func(d dao.DaoMethod) error {
			return fn(d)
		})
	}
	uc := batch.NewBatchUsecase(reconciliationUsecase.NewReconciliationUsecase(), session, workers)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("[Batch] Checking %s against %s with %d workers", inputFile, database, workers)
	summary, err := uc.Run(ctx, in, out)
	if err != nil {
		return err
	}
	log.Infof("[Batch] Done: %d rows, %d checked, %d skipped, outcomes %v",
		summary.Total, summary.Checked, summary.Skipped, summary.Outcomes)
	return nil
}

func allowed(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
