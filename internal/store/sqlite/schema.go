package sqlite

import "database/sql"

// EnsureSchema creates the planner tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
            user_id TEXT PRIMARY KEY,
            work_study TEXT NOT NULL,
            hobbies TEXT NOT NULL,
            sports TEXT NOT NULL,
            location TEXT NOT NULL,
            weight_kg REAL,
            height_cm REAL,
            age_years INTEGER,
            reading TEXT,
            ai_context TEXT,
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS daily_plans (
            user_id TEXT NOT NULL,
            date_key TEXT NOT NULL,
            timezone TEXT NOT NULL,
            plan_json TEXT NOT NULL,
            created_at TIMESTAMP NOT NULL,
            updated_at TIMESTAMP,
            PRIMARY KEY(user_id, date_key)
        );`,
		`CREATE TABLE IF NOT EXISTS messages (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            subject TEXT NOT NULL,
            category TEXT NOT NULL,
            message TEXT NOT NULL,
            created_at TIMESTAMP NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
