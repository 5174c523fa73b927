package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"toggl-cli/internal/domain"
)

// Sink implements ports.Sink on top of MySQL. Rows are upserted by id so
// repeated exports of the same range are idempotent.
type Sink struct {
	db  *sql.DB
	log *slog.Logger
}

// Open connects to MySQL and checks the connection.
// Example DSN: user:pass@tcp(host:3306)/toggl?parseTime=true&multiStatements=true
func Open(ctx context.Context, dsn string, log *slog.Logger) (*Sink, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required (mysql.dsn or MYSQL_DSN)")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}
	return &Sink{db: db, log: log}, nil
}

const upsertEntry = `
INSERT INTO toggl_time_entries
  (id, description, project_id, workspace_id, task_id, tags, start, stop, duration_sec)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  description=VALUES(description),
  project_id=VALUES(project_id),
  workspace_id=VALUES(workspace_id),
  task_id=VALUES(task_id),
  tags=VALUES(tags),
  start=VALUES(start),
  stop=VALUES(stop),
  duration_sec=VALUES(duration_sec);
`

// SyncEntries upserts entries. Running entries are stored with a NULL stop
// and their negative duration as reported by Toggl.
func (s *Sink) SyncEntries(ctx context.Context, entries []domain.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	err := s.inTx(ctx, upsertEntry, func(stmt *sql.Stmt) error {
		for _, e := range entries {
			tags, err := json.Marshal(e.Tags)
			if err != nil {
				return err
			}
			var stop any
			if e.Stop != nil {
				stop = e.Stop.UTC()
			}
			if _, err := stmt.ExecContext(ctx,
				e.ID, e.Description,
				nullable(e.ProjectID), nullable(e.WorkspaceID), nullable(e.TaskID),
				string(tags), e.Start.UTC(), stop, e.DurationSec,
			); err != nil {
				return fmt.Errorf("entry %d: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("mysql sink upserted entries", slog.Int("count", len(entries)))
	return nil
}

const upsertProject = `
INSERT INTO toggl_projects
  (id, workspace_id, client_id, name, active, billable, is_private, estimated_hours, color, at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  workspace_id=VALUES(workspace_id),
  client_id=VALUES(client_id),
  name=VALUES(name),
  active=VALUES(active),
  billable=VALUES(billable),
  is_private=VALUES(is_private),
  estimated_hours=VALUES(estimated_hours),
  color=VALUES(color),
  at=VALUES(at);
`

func (s *Sink) SyncProjects(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	err := s.inTx(ctx, upsertProject, func(stmt *sql.Stmt) error {
		for _, p := range projects {
			var at any
			if !p.At.IsZero() {
				at = p.At.UTC()
			}
			if _, err := stmt.ExecContext(ctx,
				p.ID, p.WorkspaceID, nullable(p.ClientID), p.Name,
				p.Active, p.Billable, p.Private, p.EstimatedHours, p.Color, at,
			); err != nil {
				return fmt.Errorf("project %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("mysql sink upserted projects", slog.Int("count", len(projects)))
	return nil
}

func (s *Sink) inTx(ctx context.Context, query string, fn func(*sql.Stmt) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	if err := fn(stmt); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func nullable(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func (s *Sink) Close() error { return s.db.Close() }
