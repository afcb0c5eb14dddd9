package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nazmedical/portal/internal/store"
)

// NewStores creates PostgreSQL-backed stores sharing one connection pool.
func NewStores(pool *pgxpool.Pool) store.Stores {
	return store.Stores{
		Organizations:  NewOrganizationStore(pool),
		Users:          NewUserStore(pool),
		Products:       NewProductStore(pool),
		Careers:        NewCareerStore(pool),
		Certifications: NewCertificationStore(pool),
		HomeBanners:    NewHomeBannerStore(pool),
		ActivityLogs:   NewActivityLogStore(pool),
	}
}
