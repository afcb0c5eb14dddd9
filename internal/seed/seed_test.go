package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/store/memory"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/stretchr/testify/require"
)

const content = `
products:
  - name: Patient Monitor
    description: Five parameter bedside monitor
    attachment: monitor.pdf
  - name: Syringe Pump
    status: hidden
careers:
  - role: Biomedical Engineer
    department: Service
    location: Jakarta
    report_to: Service Manager
    job_status: full-time
    requirements: [Degree in biomedical engineering, Two years experience]
    job_scope: [Preventive maintenance]
certifications:
  - issuer: Ministry of Health
    name: CDAKB
    standard: CDAKB 2019
    issued_date: "2023-05-01"
    expired_date: "2028-05-01"
banners:
  - title: Trusted medical equipment
    cta_label: View products
    cta_url: /products
    image: banner.jpg
`

func TestParseValidation(t *testing.T) {
	f, err := Parse([]byte(content))
	require.NoError(t, err)
	require.Len(t, f.Products, 2)
	require.Equal(t, []string{"Degree in biomedical engineering", "Two years experience"}, f.Careers[0].Requirements)

	_, err = Parse([]byte("careers:\n  - role: Nurse\n    department: Sales\n    job_status: seasonal\n"))
	require.ErrorContains(t, err, "careers[0]")

	_, err = Parse([]byte("banners:\n  - title: No image\n"))
	require.ErrorContains(t, err, "banners[0]")

	empty, err := Parse([]byte("   \n"))
	require.NoError(t, err)
	require.Empty(t, empty.Products)
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "monitor.pdf"), []byte("%PDF-1.7"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "banner.jpg"), []byte{0xff, 0xd8, 0xff}, 0o600))
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	ctx := context.Background()
	stores := memory.NewStores()
	tenants := tenant.NewProvisioner(stores.Organizations)
	blobs := blob.NewMemoryStore("http://blobs.test")
	seeder := NewSeeder(stores, tenants, blobs, dir)

	sum, err := seeder.Apply(ctx, f, nil)
	require.NoError(t, err)
	require.Equal(t, Summary{Products: 2, Careers: 1, Certifications: 1, Banners: 1}, sum)

	products, err := stores.Products.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 2)
	var withAttachment int
	for _, p := range products {
		if p.AttachmentStorageID != nil {
			withAttachment++
			require.True(t, blobs.Exists(*p.AttachmentStorageID))
		}
	}
	require.Equal(t, 1, withAttachment)

	banners, err := stores.HomeBanners.List(ctx)
	require.NoError(t, err)
	require.True(t, blobs.Exists(banners[0].StorageID))

	def, err := tenants.GetDefaultOrganization(ctx)
	require.NoError(t, err)
	require.Equal(t, def.ID, products[0].OrganizationID)

	// Re-applying the same file creates nothing.
	sum, err = seeder.Apply(ctx, f, nil)
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)
}

func TestApplyMissingAttachment(t *testing.T) {
	f, err := Parse([]byte("products:\n  - name: Ventilator\n    attachment: missing.pdf\n"))
	require.NoError(t, err)

	stores := memory.NewStores()
	seeder := NewSeeder(stores, tenant.NewProvisioner(stores.Organizations), blob.NewMemoryStore(""), t.TempDir())

	_, err = seeder.Apply(context.Background(), f, nil)
	require.ErrorContains(t, err, "Ventilator")
}
