// Package sqlstore persists tasks in a relational database. Postgres (pgx),
// MySQL and SQLite (modernc, pure Go) share one set of queries; sqlx rebinds
// the placeholders per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"task-manager/internal/model"
)

// openDB is a package-level var to allow test injection.
var openDB = sqlx.Open

type Store struct {
	db      *sqlx.DB
	dialect dialect
}

// Open connects to the database, verifies it is reachable and creates the
// tasks table when missing. driver is one of "postgres", "mysql", "sqlite".
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}

	db, err := openDB(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", d.name, err)
	}
	if d.maxConns > 0 {
		db.SetMaxOpenConns(d.maxConns)
	}

	s := &Store{db: db, dialect: d}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlstore: ping %s: %w", s.dialect.name, err)
	}
	for _, stmt := range s.dialect.setup {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: %q: %w", stmt, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.schema); err != nil {
		return fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

const selectColumns = `SELECT id, title, description, status, due_date FROM tasks`

func (s *Store) FindAll(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := s.db.SelectContext(ctx, &tasks, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("sqlstore: list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := s.db.GetContext(ctx, &t, s.db.Rebind(selectColumns+` WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("sqlstore: find task %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) Save(ctx context.Context, t model.Task) (model.Task, error) {
	if t.ID == 0 {
		return s.insert(ctx, t)
	}
	return s.update(ctx, t)
}

func (s *Store) insert(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `INSERT INTO tasks (title, description, status, due_date) VALUES (?, ?, ?, ?)`
	args := []any{t.Title, descriptionArg(t), string(t.Status), dueDateArg(t)}

	if s.dialect.returning {
		if err := s.db.QueryRowxContext(ctx, s.db.Rebind(q+` RETURNING id`), args...).Scan(&t.ID); err != nil {
			return model.Task{}, fmt.Errorf("sqlstore: insert task: %w", err)
		}
		return t, nil
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(q), args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlstore: insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlstore: insert task: %w", err)
	}
	t.ID = id
	return t, nil
}

func (s *Store) update(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, s.db.Rebind(q),
		t.Title, descriptionArg(t), string(t.Status), dueDateArg(t), t.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlstore: update task %d: %w", t.ID, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, fmt.Errorf("sqlstore: update task %d: %w", t.ID, err)
	}
	if ra == 0 {
		// MySQL reports zero affected rows when the values did not change.
		if _, err := s.FindByID(ctx, t.ID); err != nil {
			return model.Task{}, err
		}
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("sqlstore: delete task %d: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlstore: delete task %d: %w", id, err)
	}
	if ra == 0 {
		return model.ErrNotFound
	}
	return nil
}

func descriptionArg(t model.Task) any {
	if t.Description == nil {
		return nil
	}
	return *t.Description
}

func dueDateArg(t model.Task) any {
	if t.DueDate == nil {
		return nil
	}
	return t.DueDate.String()
}
