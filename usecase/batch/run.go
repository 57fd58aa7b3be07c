package batch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/usecase/reconciliation"
	"github.com/radhian/receipt-reconciliation/utils"

	"github.com/gocarina/gocsv"
	"github.com/labstack/gommon/log"
)

type job struct {
	index int
	row   entity.BatchReceiptRow
}

func (u *batchUsecase) Run(ctx context.Context, in io.Reader, out io.Writer) (entity.BatchSummary, error) {
	var rows []entity.BatchReceiptRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return entity.BatchSummary{}, fmt.Errorf("failed to read receipts: %w", err)
	}

	summary := entity.BatchSummary{
		Total:    len(rows),
		Outcomes: make(map[consts.Outcome]int),
	}
	report := make([]entity.BatchReportRow, len(rows))

	firstSeen := make(map[string]int, len(rows))
	jobs := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < u.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				report[j.index] = u.check(ctx, workerID, j)
			}
		}(i + 1)
	}

	for i, row := range rows {
		// the header is line 1
		line := i + 2
		key := rowKey(row)
		if first, dup := firstSeen[key]; dup {
			report[i] = reportRow(line, row)
			report[i].Message = fmt.Sprintf("duplicate of line %d", first)
			summary.Skipped++
			continue
		}
		firstSeen[key] = line
		jobs <- job{index: i, row: row}
	}
	close(jobs)
	wg.Wait()

	for _, r := range report {
		if r.OverallStatus != "" {
			summary.Checked++
			summary.Outcomes[consts.Outcome(r.OverallStatus)]++
		}
	}

	if err := gocsv.Marshal(report, out); err != nil {
		return summary, fmt.Errorf("failed to write report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (u *batchUsecase) check(ctx context.Context, workerID int, j job) entity.BatchReportRow {
	res := reportRow(j.index+2, j.row)

	req := entity.CheckReceiptRequest{
		LoanNo:    entity.LooseString(j.row.LoanNo),
		ReceiptNo: entity.LooseString(j.row.ReceiptNo),
		Amount:    entity.LooseString(j.row.Amount),
		Date:      entity.LooseString(normalizeDate(j.row.Date)),
	}

	var result entity.ReconciliationResult
	err := u.session(ctx, func(store reconciliation.ReceiptStore) error {
		result = u.reconciler.CheckReceipt(ctx, store, req, nil)
		return nil
	})
	if err != nil {
		log.Errorf("[Worker %d] line %d: %v", workerID, res.Line, err)
		res.OverallStatus = string(consts.OutcomeError)
		res.Message = err.Error()
		return res
	}

	res.OverallStatus = string(result.OverallStatus)
	res.Message = result.Message
	if result.HighestPriorityIssue != nil {
		res.DecisiveCheck = result.HighestPriorityIssue.Title
	}
	log.Debugf("[Worker %d] line %d: %s", workerID, res.Line, res.OverallStatus)
	return res
}

func reportRow(line int, row entity.BatchReceiptRow) entity.BatchReportRow {
	return entity.BatchReportRow{
		Line:      line,
		LoanNo:    row.LoanNo,
		ReceiptNo: row.ReceiptNo,
		Amount:    row.Amount,
		Date:      row.Date,
	}
}

func rowKey(row entity.BatchReceiptRow) string {
	return strings.Join([]string{
		strings.TrimSpace(row.LoanNo),
		strings.TrimSpace(row.ReceiptNo),
		strings.TrimSpace(row.Amount),
		strings.TrimSpace(row.Date),
	}, "|")
}

// normalizeDate rewrites any accepted date layout to the calendar layout the checks expect.
// Unparsable input is passed through so validation reports it.
func normalizeDate(s string) string {
	t, err := utils.ParseSmartDate(s)
	if err != nil {
		return s
	}
	return utils.FormatDate(t)
}
