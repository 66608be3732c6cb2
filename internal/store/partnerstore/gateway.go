package partnerstore

import (
	"context"

	"gorm.io/gorm"

	"partnerdesk/internal/store"
)

// Gateway is the partners bounded context's view of the shared persistence
// client: partner and contract accessors only. See userstore.Gateway for
// the confinement rationale; no transaction here can span into the users
// context's tables.
type Gateway struct {
	db        *gorm.DB
	partners  store.Accessor[PartnerRecord]
	contracts store.Accessor[ContractRecord]
}

func New(db *gorm.DB) (*Gateway, error) {
	if err := store.Ping(db); err != nil {
		return nil, err
	}
	return &Gateway{
		db:        db,
		partners:  store.NewAccessor[PartnerRecord](db),
		contracts: store.NewAccessor[ContractRecord](db),
	}, nil
}

func (g *Gateway) Partners() store.Accessor[PartnerRecord]   { return g.partners }
func (g *Gateway) Contracts() store.Accessor[ContractRecord] { return g.contracts }

type Scope struct {
	Partners  store.Accessor[PartnerRecord]
	Contracts store.Accessor[ContractRecord]
}

func (g *Gateway) InTransaction(ctx context.Context, fn func(Scope) error) error {
	return store.Translate(g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Scope{
			Partners:  store.NewAccessor[PartnerRecord](tx),
			Contracts: store.NewAccessor[ContractRecord](tx),
		})
	}))
}

func (g *Gateway) AutoMigrate() error {
	return g.db.AutoMigrate(&PartnerRecord{}, &ContractRecord{})
}

func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
