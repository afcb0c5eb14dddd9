// Package seed loads website content from a YAML file into the stores.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// File is the seed document. Attachment and image paths are relative to the
// file's directory.
type File struct {
	Products       []ProductEntry       `yaml:"products"`
	Careers        []CareerEntry        `yaml:"careers"`
	Certifications []CertificationEntry `yaml:"certifications"`
	Banners        []BannerEntry        `yaml:"banners"`
}

type ProductEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Attachment  string `yaml:"attachment"`
}

type CareerEntry struct {
	Role         string   `yaml:"role"`
	Department   string   `yaml:"department"`
	Location     string   `yaml:"location"`
	ReportTo     string   `yaml:"report_to"`
	JobStatus    string   `yaml:"job_status"`
	Requirements []string `yaml:"requirements"`
	JobScope     []string `yaml:"job_scope"`
}

type CertificationEntry struct {
	Issuer      string `yaml:"issuer"`
	Name        string `yaml:"name"`
	Standard    string `yaml:"standard"`
	Scope       string `yaml:"scope"`
	IssuedDate  string `yaml:"issued_date"`
	ExpiredDate string `yaml:"expired_date"`
	Attachment  string `yaml:"attachment"`
}

type BannerEntry struct {
	Title    string  `yaml:"title"`
	Subtitle *string `yaml:"subtitle"`
	CTALabel *string `yaml:"cta_label"`
	CTAURL   *string `yaml:"cta_url"`
	Image    string  `yaml:"image"`
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if len(bytes.TrimSpace(data)) == 0 {
		return &f, nil
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal seed yaml: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i, p := range f.Products {
		if p.Name == "" {
			return fmt.Errorf("products[%d]: name is required", i)
		}
		if p.Status != "" && !models.ProductStatus(p.Status).Valid() {
			return fmt.Errorf("products[%d]: unknown status %q", i, p.Status)
		}
	}
	for i, c := range f.Careers {
		if c.Role == "" || c.Department == "" {
			return fmt.Errorf("careers[%d]: role and department are required", i)
		}
		if !models.JobStatus(c.JobStatus).Valid() {
			return fmt.Errorf("careers[%d]: unknown job_status %q", i, c.JobStatus)
		}
	}
	for i, c := range f.Certifications {
		if c.Name == "" || c.Issuer == "" {
			return fmt.Errorf("certifications[%d]: name and issuer are required", i)
		}
	}
	for i, b := range f.Banners {
		if b.Title == "" || b.Image == "" {
			return fmt.Errorf("banners[%d]: title and image are required", i)
		}
	}
	return nil
}

// Summary counts the records created by Apply.
type Summary struct {
	Products       int
	Careers        int
	Certifications int
	Banners        int
}

// Seeder writes seed content for one organization. Entries whose name
// (role, title) already exists are skipped, so a file can be applied twice.
type Seeder struct {
	stores  store.Stores
	tenants *tenant.Provisioner
	blobs   blob.Store
	baseDir string
	now     func() time.Time
}

// NewSeeder creates a seeder reading attachments relative to baseDir.
func NewSeeder(stores store.Stores, tenants *tenant.Provisioner, blobs blob.Store, baseDir string) *Seeder {
	return &Seeder{
		stores:  stores,
		tenants: tenants,
		blobs:   blobs,
		baseDir: baseDir,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Apply seeds f into the given organization, or the default organization
// when orgID is nil.
func (s *Seeder) Apply(ctx context.Context, f *File, orgID *uuid.UUID) (Summary, error) {
	var sum Summary

	org, err := s.tenants.ResolveOrganizationID(ctx, orgID)
	if err != nil {
		return sum, fmt.Errorf("failed to resolve organization: %w", err)
	}

	if sum.Products, err = s.seedProducts(ctx, org, f.Products); err != nil {
		return sum, err
	}
	if sum.Careers, err = s.seedCareers(ctx, org, f.Careers); err != nil {
		return sum, err
	}
	if sum.Certifications, err = s.seedCertifications(ctx, org, f.Certifications); err != nil {
		return sum, err
	}
	if sum.Banners, err = s.seedBanners(ctx, org, f.Banners); err != nil {
		return sum, err
	}

	log.Info().
		Str("org_id", org.String()).
		Int("products", sum.Products).
		Int("careers", sum.Careers).
		Int("certifications", sum.Certifications).
		Int("banners", sum.Banners).
		Msg("Seeded content")

	return sum, nil
}

func (s *Seeder) seedProducts(ctx context.Context, org uuid.UUID, entries []ProductEntry) (int, error) {
	existing, err := s.stores.Products.List(ctx, &org)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name] = true
	}

	created := 0
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		attachment, err := s.upload(ctx, e.Attachment)
		if err != nil {
			return created, fmt.Errorf("product %q: %w", e.Name, err)
		}
		status := models.ProductStatusVisible
		if e.Status != "" {
			status = models.ProductStatus(e.Status)
		}
		p := &models.Product{
			ID:                  uuid.Must(uuid.NewV7()),
			Name:                e.Name,
			Description:         e.Description,
			Status:              status,
			AttachmentStorageID: attachment,
			OrganizationID:      org,
			CreatedAt:           s.now(),
		}
		if err := s.stores.Products.Create(ctx, p); err != nil {
			return created, fmt.Errorf("product %q: %w", e.Name, err)
		}
		seen[e.Name] = true
		created++
	}
	return created, nil
}

func (s *Seeder) seedCareers(ctx context.Context, org uuid.UUID, entries []CareerEntry) (int, error) {
	existing, err := s.stores.Careers.List(ctx, &org)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Role] = true
	}

	created := 0
	for _, e := range entries {
		if seen[e.Role] {
			continue
		}
		c := &models.Career{
			ID:             uuid.Must(uuid.NewV7()),
			Role:           e.Role,
			Department:     e.Department,
			Location:       e.Location,
			ReportTo:       e.ReportTo,
			JobStatus:      models.JobStatus(e.JobStatus),
			Requirements:   e.Requirements,
			JobScope:       e.JobScope,
			OrganizationID: org,
			CreatedAt:      s.now(),
		}
		if err := s.stores.Careers.Create(ctx, c); err != nil {
			return created, fmt.Errorf("career %q: %w", e.Role, err)
		}
		seen[e.Role] = true
		created++
	}
	return created, nil
}

func (s *Seeder) seedCertifications(ctx context.Context, org uuid.UUID, entries []CertificationEntry) (int, error) {
	existing, err := s.stores.Certifications.List(ctx, &org)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Name] = true
	}

	created := 0
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		attachment, err := s.upload(ctx, e.Attachment)
		if err != nil {
			return created, fmt.Errorf("certification %q: %w", e.Name, err)
		}
		c := &models.Certification{
			ID:                  uuid.Must(uuid.NewV7()),
			Issuer:              e.Issuer,
			Name:                e.Name,
			Standard:            e.Standard,
			Scope:               e.Scope,
			IssuedDate:          e.IssuedDate,
			ExpiredDate:         e.ExpiredDate,
			AttachmentStorageID: attachment,
			OrganizationID:      org,
			CreatedAt:           s.now(),
		}
		if err := s.stores.Certifications.Create(ctx, c); err != nil {
			return created, fmt.Errorf("certification %q: %w", e.Name, err)
		}
		seen[e.Name] = true
		created++
	}
	return created, nil
}

func (s *Seeder) seedBanners(ctx context.Context, org uuid.UUID, entries []BannerEntry) (int, error) {
	existing, err := s.stores.HomeBanners.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, b := range existing {
		seen[b.Title] = true
	}

	created := 0
	for _, e := range entries {
		if seen[e.Title] {
			continue
		}
		image, err := s.upload(ctx, e.Image)
		if err != nil {
			return created, fmt.Errorf("banner %q: %w", e.Title, err)
		}
		b := &models.HomeBanner{
			ID:             uuid.Must(uuid.NewV7()),
			Title:          e.Title,
			Subtitle:       e.Subtitle,
			CTALabel:       e.CTALabel,
			CTAURL:         e.CTAURL,
			StorageID:      *image,
			OrganizationID: org,
			CreatedAt:      s.now(),
		}
		if err := s.stores.HomeBanners.Create(ctx, b); err != nil {
			return created, fmt.Errorf("banner %q: %w", e.Title, err)
		}
		seen[e.Title] = true
		created++
	}
	return created, nil
}

// upload stores a local file and returns its storage id, or nil for "".
func (s *Seeder) upload(ctx context.Context, rel string) (*string, error) {
	if rel == "" {
		return nil, nil
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, rel)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat attachment: %w", err)
	}

	id, err := blob.NewStorageID()
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.blobs.Put(ctx, id, contentType, f, info.Size()); err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}

	log.Debug().Str("storage_id", id).Str("path", path).Msg("Uploaded seed attachment")
	return &id, nil
}
