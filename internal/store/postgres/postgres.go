package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Profiles() store.Profiles { return &profiles{db: s.db} }
func (s *pgStore) Plans() store.Plans       { return &plans{db: s.db} }
func (s *pgStore) Messages() store.Messages { return &messages{db: s.db} }

func (s *pgStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Profiles ---
type profiles struct{ db *sql.DB }

func (p *profiles) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var out model.Profile
	out.UserID = userID
	var updated *time.Time
	row := p.db.QueryRowContext(ctx, `
        SELECT work_study, hobbies, sports, location, weight_kg, height_cm, age_years, reading, ai_context, created_at, updated_at
        FROM profiles WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.WorkStudy, &out.Hobbies, &out.Sports, &out.Location,
		&out.WeightKg, &out.HeightCm, &out.AgeYears, &out.Reading, &out.AIContext,
		&out.CreatedAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.UpdatedAt = updated
	return &out, nil
}

func (p *profiles) Upsert(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	var created time.Time
	var updated *time.Time
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO profiles (user_id, work_study, hobbies, sports, location, weight_kg, height_cm, age_years, reading, ai_context)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (user_id) DO UPDATE SET
            work_study=EXCLUDED.work_study,
            hobbies=EXCLUDED.hobbies,
            sports=EXCLUDED.sports,
            location=EXCLUDED.location,
            weight_kg=EXCLUDED.weight_kg,
            height_cm=EXCLUDED.height_cm,
            age_years=EXCLUDED.age_years,
            reading=EXCLUDED.reading,
            ai_context=EXCLUDED.ai_context,
            updated_at=now()
        RETURNING created_at, updated_at
    `, in.UserID, in.WorkStudy, in.Hobbies, in.Sports, in.Location,
		in.WeightKg, in.HeightCm, in.AgeYears, in.Reading, in.AIContext)
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}
	out := *in
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

// --- Plans ---
type plans struct{ db *sql.DB }

func (p *plans) Get(ctx context.Context, userID, dateKey string) (*model.PlanDocument, error) {
	var out model.PlanDocument
	out.UserID = userID
	out.DateKey = dateKey
	var payload []byte
	var updated *time.Time
	row := p.db.QueryRowContext(ctx, `
        SELECT timezone, plan_json, created_at, updated_at
        FROM daily_plans WHERE user_id=$1 AND date_key=$2
    `, userID, dateKey)
	if err := row.Scan(&out.Timezone, &payload, &out.CreatedAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.PlanJSON = json.RawMessage(payload)
	out.UpdatedAt = updated
	return &out, nil
}

func (p *plans) Upsert(ctx context.Context, doc *model.PlanDocument) (*model.PlanDocument, error) {
	var created time.Time
	var updated *time.Time
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO daily_plans (user_id, date_key, timezone, plan_json)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (user_id, date_key) DO UPDATE SET
            timezone=EXCLUDED.timezone,
            plan_json=EXCLUDED.plan_json,
            updated_at=now()
        RETURNING created_at, updated_at
    `, doc.UserID, doc.DateKey, doc.Timezone, []byte(doc.PlanJSON))
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}
	out := *doc
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

// --- Messages ---
type messages struct{ db *sql.DB }

func (m *messages) Create(ctx context.Context, in *model.Message) (*model.Message, error) {
	var id int64
	var created time.Time
	row := m.db.QueryRowContext(ctx, `
        INSERT INTO messages (name, email, subject, category, message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at
    `, in.Name, in.Email, in.Subject, in.Category, in.Body)
	if err := row.Scan(&id, &created); err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (m *messages) List(ctx context.Context) ([]*model.Message, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, name, email, subject, category, message, created_at
        FROM messages ORDER BY created_at
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Message
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Category, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &msg)
	}
	return out, rows.Err()
}
