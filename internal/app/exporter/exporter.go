// Package exporter drives the delivery of an export batch into the
// destination spreadsheet, one sheet at a time. The remote quota is a
// single global budget, so sheets are written serially with a measured
// backoff instead of concurrently.
package exporter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/sink"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

// Options tunes the per-sheet retry window and the inter-sheet pacing.
type Options struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	BackoffCap     time.Duration
	SheetDelay     time.Duration

	// Sleep defaults to time.Sleep; tests substitute a recorder.
	Sleep func(time.Duration)
}

// DefaultOptions matches the Sheets API write quota comfortably: five
// attempts per sheet, backoff doubling from 1s up to 60s, and a one
// second pause between sheets to smooth out bursts.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
		BackoffCap:     60 * time.Second,
		SheetDelay:     time.Second,
	}
}

type Exporter struct {
	sink sink.Sink
	opts Options
	log  *logrus.Entry
}

func New(s sink.Sink, opts Options, log *logrus.Entry) *Exporter {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	// Every sheet gets at least one attempt, whatever the options say.
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &Exporter{sink: s, opts: opts, log: log}
}

// Export writes every sheet of the batch to the destination and returns
// one result per sheet, in batch order. A sheet failure never stops the
// run; it is recorded and the next sheet is attempted.
func (e *Exporter) Export(ctx context.Context, batch models.ExportBatch) models.RunReport {
	report := models.RunReport{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Results:   make([]models.DeliveryResult, 0, len(batch)),
	}

	for _, sheet := range batch {
		result := e.exportSheet(ctx, sheet)
		report.Results = append(report.Results, result)

		if result.Status == models.StatusSuccess {
			e.log.WithFields(logrus.Fields{
				"sheet":    sheet.Name,
				"rows":     len(sheet.Rows),
				"attempts": result.Attempts,
			}).Info("sheet exported")
		} else {
			e.log.WithFields(logrus.Fields{
				"sheet":    sheet.Name,
				"attempts": result.Attempts,
			}).WithError(result.Err).Error("sheet export failed")
		}

		// Proactive smoothing against burst limits, paid even on
		// success.
		e.opts.Sleep(e.opts.SheetDelay)
	}

	report.FinishedAt = time.Now()
	return report
}

// exportSheet runs the per-sheet state machine: attempt, and on a rate
// limit signal wait and re-attempt until the bound is reached. Any other
// error is terminal immediately; retrying it would only burn quota.
func (e *Exporter) exportSheet(ctx context.Context, sheet models.Sheet) models.DeliveryResult {
	result := models.DeliveryResult{Sheet: sheet.Name}

	backoff := e.opts.InitialBackoff
	for result.Attempts < e.opts.MaxAttempts {
		result.Attempts++

		err := e.deliver(ctx, sheet)
		if err == nil {
			result.Status = models.StatusSuccess
			result.Err = nil
			return result
		}

		result.Err = err
		if !errors.Is(err, sink.ErrRateLimited) {
			break
		}

		if result.Attempts < e.opts.MaxAttempts {
			e.log.WithFields(logrus.Fields{
				"sheet":   sheet.Name,
				"attempt": result.Attempts,
				"backoff": backoff.String(),
			}).Warn("rate limited, backing off")

			e.opts.Sleep(backoff)
			backoff *= 2
			if backoff > e.opts.BackoffCap {
				backoff = e.opts.BackoffCap
			}
		}
	}

	result.Status = models.StatusFailed
	return result
}

// deliver is one full attempt: make sure the tab exists, clear what a
// previous run left there, then write header and body in one update.
func (e *Exporter) deliver(ctx context.Context, sheet models.Sheet) error {
	if err := e.sink.EnsureTab(ctx, sheet.Name); err != nil {
		return err
	}
	if err := e.sink.Clear(ctx, sheet.Name); err != nil {
		return err
	}
	return e.sink.Write(ctx, sheet.Name, sheet.Values())
}
