package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Patch is a sparse column→value map. A key's absence leaves the column
// untouched; a nil value clears a nullable column.
type Patch map[string]any

// Low-level failure sentinels. Repositories translate these into domain
// error kinds; nothing above the repo layer should see them.
var (
	ErrNotFound     = errors.New("store: record not found")
	ErrDuplicateKey = errors.New("store: duplicate key")
	ErrForeignKey   = errors.New("store: foreign key constraint violated")
	ErrUnavailable  = errors.New("store: connection unavailable")
)

// Accessor is the per-table primitive set handed out by the scoped
// gateways: plain record CRUD, nothing entity-specific.
type Accessor[R any] struct{ db *gorm.DB }

func NewAccessor[R any](db *gorm.DB) Accessor[R] { return Accessor[R]{db: db} }

func (a Accessor[R]) Create(ctx context.Context, rec *R) error {
	return Translate(a.db.WithContext(ctx).Create(rec).Error)
}

// FindUnique returns nil, nil when no row matches; absence is not an error.
func (a Accessor[R]) FindUnique(ctx context.Context, where Patch) (*R, error) {
	var rec R
	err := a.db.WithContext(ctx).Where(map[string]any(where)).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Translate(err)
	}
	return &rec, nil
}

func (a Accessor[R]) FindMany(ctx context.Context, where Patch, orderBy string, limit, offset int) ([]R, error) {
	recs := []R{}
	q := a.db.WithContext(ctx).Model(new(R))
	if len(where) > 0 {
		q = q.Where(map[string]any(where))
	}
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, Translate(err)
	}
	return recs, nil
}

// Update applies a sparse patch and returns the fresh row. The existence
// probe runs first so a miss performs no write and an empty patch is a
// read-only no-op.
func (a Accessor[R]) Update(ctx context.Context, where Patch, patch Patch) (*R, error) {
	existing, err := a.FindUnique(ctx, where)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if len(patch) == 0 {
		return existing, nil
	}
	err = a.db.WithContext(ctx).
		Model(new(R)).
		Where(map[string]any(where)).
		Updates(map[string]any(patch)).Error
	if err != nil {
		return nil, Translate(err)
	}
	return a.FindUnique(ctx, where)
}

func (a Accessor[R]) Delete(ctx context.Context, where Patch) error {
	res := a.db.WithContext(ctx).Where(map[string]any(where)).Delete(new(R))
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (a Accessor[R]) Count(ctx context.Context, where Patch) (int64, error) {
	var n int64
	q := a.db.WithContext(ctx).Model(new(R))
	if len(where) > 0 {
		q = q.Where(map[string]any(where))
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, Translate(err)
	}
	return n, nil
}

// Ping verifies the underlying connection; gateways call it at
// construction so an unreachable store fails startup.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Translate maps driver/gorm failures onto the store sentinels. The string
// matching mirrors what gorm's TranslateError misses on older drivers.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "unique violation"),
		strings.Contains(msg, "duplicate entry"):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "bad connection"):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
