package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/go-event-checkin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const registrantColumns = `id, name, mobile, department, company,
	family_employee, family_infant, family_child, family_adult, family_elderly,
	"group", is_checked, checked_in_time, is_deleted`

// RegistrantRepo provides typed Postgres operations for the registrant table.
// Every read filters out soft-deleted rows.
type RegistrantRepo struct {
	pool *pgxpool.Pool
}

func NewRegistrantRepo(pool *pgxpool.Pool) *RegistrantRepo {
	return &RegistrantRepo{pool: pool}
}

func scanRegistrant(row pgx.Row) (*domain.Registrant, error) {
	var r domain.Registrant
	err := row.Scan(
		&r.ID, &r.Name, &r.Mobile, &r.Department, &r.Company,
		&r.FamilyEmployee, &r.FamilyInfant, &r.FamilyChild, &r.FamilyAdult, &r.FamilyElderly,
		&r.Group, &r.IsChecked, &r.CheckedInTime, &r.IsDeleted,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &r, nil
}

// Insert creates one registrant. The partial unique index on live mobiles
// rejects duplicates even under concurrent creation; that surfaces as
// domain.ErrConflict.
func (r *RegistrantRepo) Insert(ctx context.Context, reg *domain.Registrant) (*domain.Registrant, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO registrant
			(name, mobile, department, company,
			 family_employee, family_infant, family_child, family_adult, family_elderly,
			 "group", is_checked, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, FALSE)
		RETURNING `+registrantColumns,
		reg.Name, reg.Mobile, reg.Department, reg.Company,
		reg.FamilyEmployee, reg.FamilyInfant, reg.FamilyChild, reg.FamilyAdult, reg.FamilyElderly,
		reg.Group,
	)
	return scanRegistrant(row)
}

// InsertBatch inserts all rows inside one transaction. Concurrent readers
// observe the whole batch or none of it; any failure rolls everything back.
func (r *RegistrantRepo) InsertBatch(ctx context.Context, regs []domain.Registrant) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, mapErr(err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, reg := range regs {
		batch.Queue(`
			INSERT INTO registrant
				(name, mobile, department, company,
				 family_employee, family_infant, family_child, family_adult, family_elderly,
				 "group", is_checked, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, FALSE)`,
			reg.Name, reg.Mobile, reg.Department, reg.Company,
			reg.FamilyEmployee, reg.FamilyInfant, reg.FamilyChild, reg.FamilyAdult, reg.FamilyElderly,
			reg.Group,
		)
	}
	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for range regs {
		ct, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, mapErr(err)
		}
		inserted += ct.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, mapErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, mapErr(err)
	}
	return inserted, nil
}

// GetByMobile is a case-sensitive exact-match point lookup.
func (r *RegistrantRepo) GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+registrantColumns+`
		FROM registrant
		WHERE mobile = $1 AND NOT is_deleted`,
		mobile,
	)
	return scanRegistrant(row)
}

func (r *RegistrantRepo) ListAll(ctx context.Context) ([]domain.Registrant, error) {
	return r.list(ctx, `
		SELECT `+registrantColumns+`
		FROM registrant
		WHERE NOT is_deleted
		ORDER BY id`)
}

func (r *RegistrantRepo) ListByGroup(ctx context.Context, group string) ([]domain.Registrant, error) {
	return r.list(ctx, `
		SELECT `+registrantColumns+`
		FROM registrant
		WHERE "group" = $1 AND NOT is_deleted
		ORDER BY id`, group)
}

func (r *RegistrantRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Registrant, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var regs []domain.Registrant
	for rows.Next() {
		reg, err := scanRegistrant(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return regs, nil
}

// CheckIn performs the registered-to-checked-in transition as one
// conditional statement, so concurrent calls for the same mobile race on
// the row lock rather than on a read-then-write in application code.
// Exactly one caller wins; the rest observe zero rows updated and the
// service treats the call as a no-op repeat. Returns nil with no error
// when the row was not transitioned.
func (r *RegistrantRepo) CheckIn(ctx context.Context, mobile string, at time.Time) (*domain.Registrant, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE registrant
		SET is_checked = TRUE, checked_in_time = $2
		WHERE mobile = $1 AND NOT is_deleted AND NOT is_checked
		RETURNING `+registrantColumns,
		mobile, at,
	)
	reg, err := scanRegistrant(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}

// Totals sums each family-count column across checked-in registrants.
// SUM ignores NULLs and COALESCE turns an empty result set into zeros:
// an event with nobody checked in reports all-zero totals, not an error.
func (r *RegistrantRepo) Totals(ctx context.Context) (*domain.ParticipantTotals, error) {
	var t domain.ParticipantTotals
	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(family_employee), 0),
			COALESCE(SUM(family_infant), 0),
			COALESCE(SUM(family_child), 0),
			COALESCE(SUM(family_adult), 0),
			COALESCE(SUM(family_elderly), 0)
		FROM registrant
		WHERE is_checked AND NOT is_deleted`,
	).Scan(&t.Employee, &t.Infant, &t.Child, &t.Adult, &t.Elderly)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}
