package queue

import (
	"database/sql"
	"errors"
	"time"
)

const itemColumns = "id, source_path, video_path, output_path, title, status, width, height, stats_json, error_message, created_at, updated_at, progress_stage, progress_percent, progress_message"

func scanItem(scanner interface{ Scan(dest ...any) error }) (*Item, error) {
	var (
		id              int64
		sourcePath      string
		videoPath       sql.NullString
		outputPath      sql.NullString
		title           sql.NullString
		statusStr       string
		width           sql.NullInt64
		height          sql.NullInt64
		statsJSON       sql.NullString
		errorMessage    sql.NullString
		createdRaw      sql.NullString
		updatedRaw      sql.NullString
		progressStage   sql.NullString
		progressPercent sql.NullFloat64
		progressMessage sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&sourcePath,
		&videoPath,
		&outputPath,
		&title,
		&statusStr,
		&width,
		&height,
		&statsJSON,
		&errorMessage,
		&createdRaw,
		&updatedRaw,
		&progressStage,
		&progressPercent,
		&progressMessage,
	); err != nil {
		return nil, err
	}

	item := &Item{
		ID:              id,
		SourcePath:      sourcePath,
		VideoPath:       videoPath.String,
		OutputPath:      outputPath.String,
		Title:           title.String,
		Status:          Status(statusStr),
		Width:           int(width.Int64),
		Height:          int(height.Int64),
		StatsJSON:       statsJSON.String,
		ErrorMessage:    errorMessage.String,
		ProgressStage:   progressStage.String,
		ProgressPercent: progressPercent.Float64,
		ProgressMessage: progressMessage.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		item.UpdatedAt = updated
	}
	return item, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
