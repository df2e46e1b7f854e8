package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shaiso/Roster/internal/domain"
)

// membersTable — таблица с последним загруженным списком.
const membersTable = "house_members"

// DB — операции пула, которые использует репозиторий.
// *pgxpool.Pool реализует этот интерфейс.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// MemberRepo — репозиторий членов Палаты.
type MemberRepo struct {
	db DB
}

// NewMemberRepo создаёт новый MemberRepo.
func NewMemberRepo(db DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// EnsureSchema создаёт таблицу, если её нет.
func (r *MemberRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS house_members (
			position         INTEGER PRIMARY KEY,
			sortname         TEXT,
			name             TEXT,
			firstname        TEXT,
			middlename       TEXT,
			lastname         TEXT,
			namemod          TEXT,
			nickname         TEXT,
			description      TEXT,
			leadership_title TEXT,
			party            TEXT,
			address          TEXT,
			phone            TEXT,
			website          TEXT,
			loaded_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// ReplaceAll заменяет содержимое таблицы записями в одной транзакции.
// Возвращает количество записанных строк.
func (r *MemberRepo) ReplaceAll(ctx context.Context, records []domain.MemberRecord) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+membersTable); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", membersTable, err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{membersTable},
		copyColumns(),
		pgx.CopyFromRows(memberRows(records)),
	)
	if err != nil {
		return 0, fmt.Errorf("copy %s: %w", membersTable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// copyColumns возвращает колонки COPY: position и затем domain.Columns.
func copyColumns() []string {
	return append([]string{"position"}, domain.Columns...)
}

// memberRows переводит записи в строки для COPY.
// nil значения пишутся как NULL.
func memberRows(records []domain.MemberRecord) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, 0, len(domain.Columns)+1)
		row = append(row, i)
		for _, v := range rec.Values() {
			row = append(row, v)
		}
		rows[i] = row
	}
	return rows
}
