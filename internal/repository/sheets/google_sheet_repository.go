package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/kouassidev/ferme/internal/config"
	"github.com/kouassidev/ferme/internal/domain/models"
)

// Repository defines the persistence operations supported by the Google Sheets adapter.
type Repository interface {
	AppendDigestRow(ctx context.Context, digest models.Digest) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.SheetRange,
		logger:        logger,
	}, nil
}

// AppendDigestRow appends one digest as a row at the bottom of the configured range.
func (r *GoogleSheetRepository) AppendDigestRow(ctx context.Context, digest models.Digest) error {
	if r.sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	row := []interface{}{
		digest.Date,
		digest.Balance,
		digest.Stats.TotalAnimals,
		digest.Stats.TotalCrops,
		digest.Stats.TotalWorkers,
		digest.Stats.TasksInProgress,
		digest.Stats.TotalEquipment,
		digest.Stats.TotalSuppliers,
		digest.Stats.TotalCustomers,
		len(digest.Alerts),
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", r.sheetRange, err)
	}

	r.logger.Debug("digest row appended to sheet", zap.String("range", r.sheetRange), zap.String("date", digest.Date))
	return nil
}
