package store

// Stores groups the storage backends used by the portal.
// All members share one backend (memory or postgres).
type Stores struct {
	Organizations  OrganizationStore
	Users          UserStore
	Products       ProductStore
	Careers        CareerStore
	Certifications CertificationStore
	HomeBanners    HomeBannerStore
	ActivityLogs   ActivityLogStore
}
