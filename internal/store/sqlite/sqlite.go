package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/store"
)

// New opens (or creates) a SQLite database file and ensures the schema.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB allows wiring with an existing connection (used by factory and tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Profiles() store.Profiles { return &profiles{db: s.db} }
func (s *sqliteStore) Plans() store.Plans       { return &plans{db: s.db} }
func (s *sqliteStore) Messages() store.Messages { return &messages{db: s.db} }

func (s *sqliteStore) Ping(ctx context.Context) error {
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
        FROM profiles WHERE user_id = ?
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
	now := time.Now().UTC()
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO profiles (user_id, work_study, hobbies, sports, location, weight_kg, height_cm, age_years, reading, ai_context, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)
        ON CONFLICT(user_id) DO UPDATE SET
            work_study=excluded.work_study,
            hobbies=excluded.hobbies,
            sports=excluded.sports,
            location=excluded.location,
            weight_kg=excluded.weight_kg,
            height_cm=excluded.height_cm,
            age_years=excluded.age_years,
            reading=excluded.reading,
            ai_context=excluded.ai_context,
            updated_at=excluded.created_at
    `, in.UserID, in.WorkStudy, in.Hobbies, in.Sports, in.Location,
		in.WeightKg, in.HeightCm, in.AgeYears, in.Reading, in.AIContext, now)
	if err != nil {
		return nil, err
	}
	return p.Get(ctx, in.UserID)
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
        FROM daily_plans WHERE user_id = ? AND date_key = ?
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
	now := time.Now().UTC()
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO daily_plans (user_id, date_key, timezone, plan_json, created_at)
        VALUES (?,?,?,?,?)
        ON CONFLICT(user_id, date_key) DO UPDATE SET
            timezone=excluded.timezone,
            plan_json=excluded.plan_json,
            updated_at=excluded.created_at
    `, doc.UserID, doc.DateKey, doc.Timezone, string(doc.PlanJSON), now)
	if err != nil {
		return nil, err
	}
	return p.Get(ctx, doc.UserID, doc.DateKey)
}

// --- Messages ---
type messages struct{ db *sql.DB }

func (m *messages) Create(ctx context.Context, in *model.Message) (*model.Message, error) {
	now := time.Now().UTC()
	res, err := m.db.ExecContext(ctx, `
        INSERT INTO messages (name, email, subject, category, message, created_at)
        VALUES (?,?,?,?,?,?)
    `, in.Name, in.Email, in.Subject, in.Category, in.Body, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = now
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
