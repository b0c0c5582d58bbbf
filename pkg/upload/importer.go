package upload

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tealeg/xlsx"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/ingest"
)

// Importer turns an uploaded statement file into transactions through the
// same pipeline a sync pass uses, and returns an ImportBatch receipt.
// Re-uploading a file is harmless; every row it carries is already behind the
// dedup gate.
type Importer struct {
	repo     Repo
	registry Registry
	pipeline Pipeline
	formats  map[string]FormatSpec
}

func NewImporter(
	repo Repo,
	registry Registry,
	pipeline Pipeline,
	formats []FormatSpec,
) *Importer {
	byName := map[string]FormatSpec{}
	for _, format := range formats {
		byName[strings.ToLower(format.Name)] = format
	}

	return &Importer{
		repo:     repo,
		registry: registry,
		pipeline: pipeline,
		formats:  byName,
	}
}

func (i *Importer) ImportFile(
	ctx context.Context,
	fileName string,
	formatName string,
	data []byte,
) (*database.ImportBatch, error) {
	format, ok := i.formats[strings.ToLower(formatName)]
	if !ok {
		return nil, common.NewValidationError("unknown statement format: " + formatName)
	}

	rows, err := i.readRows(fileName, format, data)
	if err != nil {
		return nil, err
	}

	if format.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	snapshot, err := i.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	batch := &database.ImportBatch{
		ID:        uuid.NewString(),
		FileName:  fileName,
		TotalRows: len(rows),
		CreatedAt: time.Now().UTC(),
	}

	for idx, cells := range rows {
		if isEmptyRow(cells) {
			batch.Skipped++
			continue
		}

		record, rowErr := format.mapRow(cells)
		if rowErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rowErr).Int("row", idx+1).
				Str("file", fileName).Msg("skipping unparsable statement row")

			batch.Skipped++

			continue
		}

		outcome, ingestErr := i.pipeline.Ingest(ctx, snapshot, record, database.SourceUpload)
		if ingestErr != nil {
			zerolog.Ctx(ctx).Error().Err(ingestErr).Int("row", idx+1).
				Str("file", fileName).Msg("failed to ingest statement row")

			batch.Skipped++

			continue
		}

		switch outcome.Status {
		case ingest.StatusImported:
			batch.Imported++
		case ingest.StatusSkippedBlacklisted:
			batch.Blacklisted++
		default:
			batch.Skipped++
		}

		if outcome.WarningRaised {
			batch.Warnings++
		}
	}

	if err = i.repo.SaveImportBatch(ctx, batch); err != nil {
		return nil, errors.Wrap(err, "failed to save import batch")
	}

	return batch, nil
}

func (i *Importer) History(ctx context.Context, limit int) ([]*database.ImportBatch, error) {
	return i.repo.ListImportBatches(ctx, limit)
}

func (i *Importer) readRows(fileName string, format FormatSpec, data []byte) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		return i.readXLSX(data)
	}

	return i.readCSV(format, data)
}

func (i *Importer) readCSV(format FormatSpec, data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = format.Delimiter
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read csv")
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

func (i *Importer) readXLSX(data []byte) ([][]string, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open xlsx")
	}

	if len(file.Sheets) == 0 {
		return nil, errors.New("no sheets found")
	}

	sheet := file.Sheets[0]

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.String())
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
