package sqlite

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Registry хранит чаты всех, кто писал боту: получатели рассылок.
type Registry struct {
	db *sql.DB
}

func NewRegistry(dsn string) (*Registry, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrateApplicants(db); err != nil {
		return nil, err
	}
	return &Registry{db: db}, nil
}

func migrateApplicants(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS applicants (
    chat_id INTEGER PRIMARY KEY,
    created_at TIMESTAMP NOT NULL
);
`)
	return err
}

func (r *Registry) Save(chatID int64) error {
	// upsert by primary key
	_, err := r.db.Exec(`INSERT INTO applicants(chat_id, created_at) VALUES(?, ?) ON CONFLICT(chat_id) DO NOTHING`, chatID, time.Now())
	return err
}

func (r *Registry) ListChatIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT chat_id FROM applicants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]int64, 0, 128)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
