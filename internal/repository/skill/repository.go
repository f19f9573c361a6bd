package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, s dto.Skill) (int64, error) {
	query := `
insert into skills (skill_name, category, created_at)
values (@skill_name, @category, now())
returning skill_id;
`
	args := pgx.NamedArgs{
		"skill_name": s.SkillName,
		"category":   s.Category,
	}

	var id int64
	err := r.pool.QueryRow(ctx, query, args).Scan(&id)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == "23505" {
			return 0, dto.ErrAlreadyExists
		}

		return 0, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByName(ctx context.Context, skillName string) (*dto.Skill, error) {
	query := `
select skill_id, skill_name, category, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
from skills
where skill_name = $1;
`
	row := r.pool.QueryRow(ctx, query, skillName)

	var out dto.Skill
	err := row.Scan(&out.SkillID, &out.SkillName, &out.Category, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return &out, nil
}

func (r *Repository) List(ctx context.Context) ([]dto.Skill, error) {
	query := `
select skill_id, skill_name, category, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
from skills
order by skill_id;
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.Skill
	for rows.Next() {
		var s dto.Skill

		err = rows.Scan(&s.SkillID, &s.SkillName, &s.Category, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}
