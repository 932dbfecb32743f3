package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ConceptRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewConceptRepo(db *dbpg.DB) *ConceptRepository {
	return &ConceptRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ConceptRepository) Create(ctx context.Context, c *domain.Concept) error {
	details, err := json.Marshal(c.Details)
	if err != nil {
		return fmt.Errorf("encode concept details: %w", err)
	}

	query := `INSERT INTO concepts (id, owner_id, kind, title, description, details, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.OwnerID, c.Kind(), c.Title, c.Description, details, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return persistence("insert concept", err)
	}

	return nil
}

func (r *ConceptRepository) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	query := `SELECT id, owner_id, kind, title, description, details, created_at, updated_at
			  FROM concepts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, persistence("get concept", err)
	}

	c, err := scanConcept(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConceptNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *ConceptRepository) Update(ctx context.Context, c *domain.Concept) error {
	details, err := json.Marshal(c.Details)
	if err != nil {
		return fmt.Errorf("encode concept details: %w", err)
	}

	query := `UPDATE concepts
			  SET kind = $2, title = $3, description = $4, details = $5, updated_at = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Kind(), c.Title, c.Description, details, c.UpdatedAt,
	)
	if err != nil {
		return persistence("update concept", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return persistence("concept rows affected", err)
	}
	if rows == 0 {
		return domain.ErrConceptNotFound
	}

	return nil
}

func (r *ConceptRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Concept, error) {
	query := `SELECT id, owner_id, kind, title, description, details, created_at, updated_at
			  FROM concepts
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, persistence("list concepts", err)
	}
	defer rows.Close()

	var res []*domain.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanConcept(row rowScanner) (*domain.Concept, error) {
	var (
		c       domain.Concept
		kind    domain.ConceptKind
		details []byte
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &kind, &c.Title, &c.Description, &details, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, persistence("scan concept", err)
	}

	d, err := domain.DecodeConceptDetails(kind, details)
	if err != nil {
		return nil, fmt.Errorf("decode concept %s: %w", c.ID, err)
	}
	c.Details = d
	return &c, nil
}
