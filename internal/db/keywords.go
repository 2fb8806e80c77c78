package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// keywordColumns is the standard column list for keyword queries.
const keywordColumns = `id, keyword, normalized_keyword, aliases, category, priority, enabled,
	action_type, liff_url, liff_app, liff_path, reply_type, alt_text, reply_text, label,
	description, created_by, created_at, updated_by, updated_at`

const insertKeywordSQL = `
	INSERT INTO keywords (keyword, normalized_keyword, aliases, category, priority, enabled,
		action_type, liff_url, liff_app, liff_path, reply_type, alt_text, reply_text, label,
		description, created_by, updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

// scanKeyword scans a row into a KeywordRecord.
func scanKeyword(row pgx.Row) (*models.KeywordRecord, error) {
	var rec models.KeywordRecord
	var replyType string
	err := row.Scan(
		&rec.ID,
		&rec.Keyword,
		&rec.NormalizedKeyword,
		&rec.Aliases,
		&rec.Category,
		&rec.Priority,
		&rec.Enabled,
		&rec.Action.Type,
		&rec.Action.LIFFURL,
		&rec.Action.LIFFApp,
		&rec.Action.Path,
		&replyType,
		&rec.ReplyPayload.AltText,
		&rec.ReplyPayload.Text,
		&rec.ReplyPayload.Label,
		&rec.Description,
		&rec.CreatedBy,
		&rec.CreatedAt,
		&rec.UpdatedBy,
		&rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeywordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// scanKeywords scans multiple rows into a slice of KeywordRecords.
func scanKeywords(rows pgx.Rows) ([]models.KeywordRecord, error) {
	defer rows.Close()

	var records []models.KeywordRecord
	for rows.Next() {
		rec, err := scanKeyword(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// prepareKeywordWrite enforces the write invariants: exactly one action
// shape populated, normalized_keyword always equal to the normalized form
// of keyword, and no alias colliding with the record's own keyword or
// another of its aliases. Every create and update path goes through here.
func prepareKeywordWrite(rec *models.KeywordRecord) error {
	if err := rec.Action.Validate(); err != nil {
		return err
	}
	rec.NormalizedKeyword = keyword.Normalize(rec.Keyword)
	if rec.NormalizedKeyword == "" {
		return fmt.Errorf("keyword %q normalizes to the empty string", rec.Keyword)
	}

	seen := map[string]bool{rec.NormalizedKeyword: true}
	for _, alias := range rec.Aliases {
		normalized := keyword.Normalize(alias)
		if normalized == "" {
			return fmt.Errorf("alias %q normalizes to the empty string", alias)
		}
		if seen[normalized] {
			return fmt.Errorf("alias %q: %w", alias, ErrDuplicateKeyword)
		}
		seen[normalized] = true
	}
	return nil
}

// checkTermCollision rejects an editor write whose keyword or aliases
// collide, after normalization, with another record's keyword or aliases.
// The unique index covers normalized_keyword alone; aliases are stored raw,
// so this is where an alias shadowing another record's trigger is caught.
// exclude skips the record being updated.
func (d *DB) checkTermCollision(ctx context.Context, rec *models.KeywordRecord, exclude uuid.UUID) error {
	terms := make(map[string]bool, len(rec.Aliases)+1)
	terms[rec.NormalizedKeyword] = true
	for _, alias := range rec.Aliases {
		terms[keyword.Normalize(alias)] = true
	}

	rows, err := d.Pool.Query(ctx, `SELECT id, keyword, normalized_keyword, aliases FROM keywords`)
	if err != nil {
		return fmt.Errorf("failed to check keyword collisions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var kw, normalized string
		var aliases []string
		if err := rows.Scan(&id, &kw, &normalized, &aliases); err != nil {
			return err
		}
		if id == exclude {
			continue
		}
		if terms[normalized] {
			return fmt.Errorf("conflicts with keyword %q: %w", kw, ErrDuplicateKeyword)
		}
		for _, alias := range aliases {
			if terms[keyword.Normalize(alias)] {
				return fmt.Errorf("conflicts with alias %q of keyword %q: %w", alias, kw, ErrDuplicateKeyword)
			}
		}
	}
	return rows.Err()
}

func keywordWriteArgs(rec *models.KeywordRecord) []any {
	return []any{
		rec.Keyword,
		rec.NormalizedKeyword,
		rec.Aliases,
		rec.Category,
		rec.Priority,
		rec.Enabled,
		rec.Action.Type,
		rec.Action.LIFFURL,
		rec.Action.LIFFApp,
		rec.Action.Path,
		rec.ReplyType(),
		rec.ReplyPayload.AltText,
		rec.ReplyPayload.Text,
		rec.ReplyPayload.Label,
		rec.Description,
		rec.CreatedBy,
		rec.UpdatedBy,
	}
}

// ListEnabledByPriority returns all enabled keyword records sorted by
// priority descending. Ties keep insertion order; callers must not read
// meaning into tie order.
func (d *DB) ListEnabledByPriority(ctx context.Context) ([]models.KeywordRecord, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE enabled ORDER BY priority DESC, created_at ASC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled keywords: %w", err)
	}
	return scanKeywords(rows)
}

// ListAllKeywords returns every keyword record, including disabled ones,
// for administrative reads. Ordered by category then keyword for stable
// listings.
func (d *DB) ListAllKeywords(ctx context.Context) ([]models.KeywordRecord, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords ORDER BY category ASC, keyword ASC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	return scanKeywords(rows)
}

// GetKeywordByID retrieves a keyword record by its ID.
func (d *DB) GetKeywordByID(ctx context.Context, id uuid.UUID) (*models.KeywordRecord, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE id = $1`
	return scanKeyword(d.Pool.QueryRow(ctx, query, id))
}

// CountKeywords returns the number of keyword records in the store.
func (d *DB) CountKeywords(ctx context.Context) (int, error) {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM keywords`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count keywords: %w", err)
	}
	return count, nil
}

// DeleteAllKeywords removes every keyword record and reports how many were
// deleted.
func (d *DB) DeleteAllKeywords(ctx context.Context) (int, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM keywords`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete keywords: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// CreateKeyword creates a single keyword record through the editor path.
func (d *DB) CreateKeyword(ctx context.Context, rec *models.KeywordRecord) error {
	if err := prepareKeywordWrite(rec); err != nil {
		return err
	}
	if err := d.checkTermCollision(ctx, rec, uuid.Nil); err != nil {
		return err
	}

	query := insertKeywordSQL + ` RETURNING id, created_at, updated_at`
	err := d.Pool.QueryRow(ctx, query, keywordWriteArgs(rec)...).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateKeyword
		}
		return err
	}
	return nil
}

// UpdateKeyword updates a keyword record in place, re-deriving the
// normalized keyword.
func (d *DB) UpdateKeyword(ctx context.Context, rec *models.KeywordRecord) error {
	if err := prepareKeywordWrite(rec); err != nil {
		return err
	}
	if err := d.checkTermCollision(ctx, rec, rec.ID); err != nil {
		return err
	}

	query := `
		UPDATE keywords
		SET keyword = $1, normalized_keyword = $2, aliases = $3, category = $4, priority = $5,
			enabled = $6, action_type = $7, liff_url = $8, liff_app = $9, liff_path = $10,
			reply_type = $11, alt_text = $12, reply_text = $13, label = $14, description = $15,
			updated_by = $16, updated_at = NOW()
		WHERE id = $17
	`
	tag, err := d.Pool.Exec(ctx, query,
		rec.Keyword,
		rec.NormalizedKeyword,
		rec.Aliases,
		rec.Category,
		rec.Priority,
		rec.Enabled,
		rec.Action.Type,
		rec.Action.LIFFURL,
		rec.Action.LIFFApp,
		rec.Action.Path,
		rec.ReplyType(),
		rec.ReplyPayload.AltText,
		rec.ReplyPayload.Text,
		rec.ReplyPayload.Label,
		rec.Description,
		rec.UpdatedBy,
		rec.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateKeyword
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrKeywordNotFound
	}
	return nil
}

// DeleteKeyword removes a single keyword record.
func (d *DB) DeleteKeyword(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM keywords WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrKeywordNotFound
	}
	return nil
}

// InsertKeywordBatch inserts records in a single transaction using one
// batched round trip. The batch is observed all-or-nothing: any failing
// row aborts the whole transaction and the first row error is returned
// with its offending keyword.
func (d *DB) InsertKeywordBatch(ctx context.Context, records []models.KeywordRecord) error {
	if len(records) == 0 {
		return nil
	}

	for i := range records {
		if err := prepareKeywordWrite(&records[i]); err != nil {
			return fmt.Errorf("keyword %q: %w", records[i].Keyword, err)
		}
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin batch: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i := range records {
		batch.Queue(insertKeywordSQL, keywordWriteArgs(&records[i])...)
	}

	results := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := range records {
		if _, err := results.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				err = ErrDuplicateKeyword
			}
			batchErr = fmt.Errorf("keyword %q: %w", records[i].Keyword, err)
			break
		}
	}
	if err := results.Close(); err != nil && batchErr == nil {
		batchErr = err
	}
	if batchErr != nil {
		return batchErr
	}

	return tx.Commit(ctx)
}
