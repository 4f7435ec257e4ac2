package intake

import (
	"context"
	"log/slog"
	"os"

	"github.com/supakorn-kn/library-inventory/env"
	serverError "github.com/supakorn-kn/library-inventory/errors"
	"github.com/supakorn-kn/library-inventory/models"
	"github.com/supakorn-kn/library-inventory/objects"
	"github.com/supakorn-kn/library-inventory/parser"
	"github.com/supakorn-kn/library-inventory/report"
)

type Summary struct {
	Lines   int
	Skipped int
	Total   int
	Genres  int
}

// Run reads every book from the input file before the report file is opened.
// Lines that can not be parsed are skipped and counted.
func Run(ctx context.Context, cfg env.Env) (Summary, error) {

	inv, summary, err := load(ctx, cfg.InputPath)
	if err != nil {
		return summary, err
	}

	if err := writeReport(cfg.OutputPath, inv); err != nil {
		inv.Clear()
		return summary, err
	}

	slog.Info("Inventory report generated",
		"output", cfg.OutputPath,
		"total", summary.Total,
		"genres", summary.Genres,
		"skipped", summary.Skipped,
	)

	return summary, nil
}

func load(ctx context.Context, path string) (*models.Inventory, Summary, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, Summary{}, serverError.InputUnavailableError.Wrap(err, path)
	}

	defer f.Close()

	inv := models.NewInventory()
	scanner := parser.NewScanner(f)

	for scanner.Scan() {

		if err := ctx.Err(); err != nil {
			return nil, Summary{}, err
		}

		record, err := scanner.Record()
		if err != nil {
			slog.Debug("Skip malformed line", "line", scanner.Lines, "error", err)
			continue
		}

		inv.Add(objects.NewBook(record.Genre, record.Title, record.Author, record.Year, record.ISBN, record.ExtraInfo))
	}

	if err := scanner.Err(); err != nil {
		return nil, Summary{}, serverError.InputReadError.Wrap(err, path)
	}

	summary := Summary{
		Lines:   scanner.Lines,
		Skipped: scanner.Skipped,
		Total:   inv.Total(),
		Genres:  inv.Len(),
	}

	return inv, summary, nil
}

func writeReport(path string, inv *models.Inventory) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return serverError.OutputUnavailableError.Wrap(err, path)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = serverError.ReportWriteError.Wrap(closeErr, path)
		}
	}()

	if err := report.Write(f, inv); err != nil {
		return serverError.ReportWriteError.Wrap(err, path)
	}

	return nil
}
