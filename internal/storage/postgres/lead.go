package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/zopudigital/content-service/internal/domain"
)

type LeadStore struct {
	db *sqlx.DB
}

func NewLeadStore(db *sqlx.DB) *LeadStore {
	return &LeadStore{db: db}
}

func (s *LeadStore) Insert(ctx context.Context, lead *domain.Lead) (int64, error) {
	query := `
		INSERT INTO leads (
			name, email, phone, company, message, persona_id, source_path, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id`

	var personaID *string
	if lead.PersonaID != nil {
		v := string(*lead.PersonaID)
		personaID = &v
	}

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Message,
		personaID,
		lead.SourcePath,
		lead.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
