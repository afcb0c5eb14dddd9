package memory

import "github.com/nazmedical/portal/internal/store"

// NewStores creates a complete set of empty in-memory stores.
func NewStores() store.Stores {
	return store.Stores{
		Organizations:  NewOrganizationStore(),
		Users:          NewUserStore(),
		Products:       NewProductStore(),
		Careers:        NewCareerStore(),
		Certifications: NewCertificationStore(),
		HomeBanners:    NewHomeBannerStore(),
		ActivityLogs:   NewActivityLogStore(),
	}
}
