package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/matmaxwellness/finmodel2googlesheet/config"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/credentials"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/exporter"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/finmodel"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/sink"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/app/snapshot"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/models"
)

type App struct {
	cfg config.Config
	log *logrus.Entry
}

func NewApp(cfg config.Config, log *logrus.Entry) *App {
	return &App{cfg: cfg, log: log}
}

// Run performs one export: credential, model, optional snapshot, delivery,
// summary. It returns an error only for fatal preconditions — and, in
// strict mode, when any sheet failed. A completed run with recorded
// per-sheet failures is otherwise a success.
func (a *App) Run(ctx context.Context) error {
	cred, err := credentials.Acquire(a.cfg.CredentialsDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := cred.Close(); err != nil {
			a.log.WithError(err).Warn("credential cleanup failed")
		}
	}()

	a.log.WithField("account", cred.Email()).Info("credentials acquired")

	batch, err := finmodel.Load()
	if err != nil {
		return fmt.Errorf("financial model failed to load: %w", err)
	}
	a.log.WithField("sheets", len(batch)).Info("model computed")

	if a.cfg.SnapshotEnabled {
		if err := snapshot.Write(batch, a.cfg.SnapshotPath); err != nil {
			return err
		}
		a.log.WithField("path", a.cfg.SnapshotPath).Info("local snapshot written")
	}

	dest, err := sink.NewGoogleSheets(ctx, cred.Client(ctx), a.cfg.SpreadsheetID)
	if err != nil {
		return err
	}

	opts := exporter.Options{
		MaxAttempts:    a.cfg.MaxAttempts,
		InitialBackoff: a.cfg.InitialBackoff,
		BackoffCap:     a.cfg.BackoffCap,
		SheetDelay:     a.cfg.SheetDelay,
	}

	report := exporter.New(dest, opts, a.log).Export(ctx, batch)
	printSummary(report, a.cfg.SpreadsheetID)

	if a.cfg.Strict && report.Failed() > 0 {
		return fmt.Errorf("%d of %d sheets failed", report.Failed(), len(report.Results))
	}

	return nil
}

// printSummary lists every sheet and its outcome, printed regardless of
// how the run went.
func printSummary(report models.RunReport, spreadsheetID string) {
	fmt.Printf("\nExport run %s (%s)\n", report.ID, report.FinishedAt.Sub(report.StartedAt).Round(time.Second))

	for _, result := range report.Results {
		if result.Status == models.StatusSuccess {
			color.Green("  ✔ %-28s (attempts: %d)", result.Sheet, result.Attempts)
		} else {
			color.Red("  ✖ %-28s (attempts: %d): %v", result.Sheet, result.Attempts, result.Err)
		}
	}

	failed := report.Failed()
	if failed == 0 {
		color.Green("\n%d sheets exported", len(report.Results))
	} else {
		color.Yellow("\n%d sheets exported, %d failed", len(report.Results)-failed, failed)
	}

	fmt.Printf("https://docs.google.com/spreadsheets/d/%s\n", spreadsheetID)
}
