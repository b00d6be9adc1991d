package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"furniture-studio/internal/drawing/models"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("design not found")

//go:embed migrations/*.sql
var migrations embed.FS

// фиксированная ширина дробной части: строки сортируются как время
const timeLayout = "2006-01-02T15:04:05.000000Z"

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Init применяет миграции и, если seed, заполняет пустую базу образцами.
func (r *Repository) Init(ctx context.Context, seed bool) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if !seed {
		return nil
	}
	return r.seedSamples(ctx)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const selectDesign = `
        SELECT id, name, project, type, width, height, depth, options, created_at, updated_at
        FROM designs`

func (r *Repository) Create(ctx context.Context, in models.DesignInput) (*models.Design, error) {
	opts, err := encodeOptions(in.Spec.Options)
	if err != nil {
		return nil, err
	}

	ts := r.now().UTC().Format(timeLayout)
	d := &models.Design{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Project:   in.Project,
		Spec:      in.Spec,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO designs (id, name, project, type, width, height, depth, options, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, d.ID, d.Name, d.Project, d.Spec.Type, d.Spec.Width, d.Spec.Height, d.Spec.Depth, opts, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert design: %w", err)
	}
	return d, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Design, error) {
	row := r.db.QueryRowContext(ctx, selectDesign+`
        WHERE id = ?
    `, id)

	d, err := scanDesign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// List возвращает дизайны проекта в порядке создания; при пустом project все.
func (r *Repository) List(ctx context.Context, project string) ([]models.Design, error) {
	query := selectDesign + `
        ORDER BY created_at, rowid`
	var args []any
	if project != "" {
		query = selectDesign + `
        WHERE project = ?
        ORDER BY created_at, rowid`
		args = append(args, project)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	out := []models.Design{}
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	return out, nil
}

func (r *Repository) Update(ctx context.Context, id string, in models.DesignInput) (*models.Design, error) {
	opts, err := encodeOptions(in.Spec.Options)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
        UPDATE designs
        SET name = ?, project = ?, type = ?, width = ?, height = ?, depth = ?, options = ?, updated_at = ?
        WHERE id = ?
    `, in.Name, in.Project, in.Spec.Type, in.Spec.Width, in.Spec.Height, in.Spec.Depth, opts, r.now().UTC().Format(timeLayout), id)
	if err != nil {
		return nil, fmt.Errorf("update design: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDesign(s scanner) (*models.Design, error) {
	var (
		d    models.Design
		opts string
	)
	if err := s.Scan(&d.ID, &d.Name, &d.Project, &d.Spec.Type, &d.Spec.Width, &d.Spec.Height, &d.Spec.Depth, &opts, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if opts != "" && opts != "{}" {
		if err := json.Unmarshal([]byte(opts), &d.Spec.Options); err != nil {
			return nil, fmt.Errorf("decode options of %s: %w", d.ID, err)
		}
	}
	return &d, nil
}

func encodeOptions(o models.Options) (string, error) {
	if len(o) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(data), nil
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	// fs.Glob возвращает имена по алфавиту
	for _, name := range files {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
