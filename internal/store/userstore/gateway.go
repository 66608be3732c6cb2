package userstore

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/store"
)

// Gateway is the users bounded context's view of the shared persistence
// client. It exposes accessors for users and user_settings and nothing
// else; code holding a Gateway cannot reach the partners tables. The
// narrowing is the access control, there is no runtime check.
type Gateway struct {
	db       *gorm.DB
	users    store.Accessor[UserRecord]
	settings store.Accessor[UserSettingsRecord]
}

// New pings the datastore before handing out the gateway; callers treat a
// failure as fatal at startup.
func New(db *gorm.DB) (*Gateway, error) {
	if err := store.Ping(db); err != nil {
		return nil, err
	}
	return &Gateway{
		db:       db,
		users:    store.NewAccessor[UserRecord](db),
		settings: store.NewAccessor[UserSettingsRecord](db),
	}, nil
}

func (g *Gateway) Users() store.Accessor[UserRecord]            { return g.users }
func (g *Gateway) Settings() store.Accessor[UserSettingsRecord] { return g.settings }

// Scope is the transaction-bound accessor set handed to InTransaction
// callbacks. It must not be retained past the callback's return.
type Scope struct {
	Users    store.Accessor[UserRecord]
	Settings store.Accessor[UserSettingsRecord]
}

// InTransaction runs fn against a Scope bound to a single transaction:
// commit on nil return, rollback on error or panic.
func (g *Gateway) InTransaction(ctx context.Context, fn func(Scope) error) error {
	return store.Translate(g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Scope{
			Users:    store.NewAccessor[UserRecord](tx),
			Settings: store.NewAccessor[UserSettingsRecord](tx),
		})
	}))
}

// AutoMigrate creates or updates only this context's tables.
func (g *Gateway) AutoMigrate() error {
	return g.db.AutoMigrate(&UserRecord{}, &UserSettingsRecord{})
}

func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
