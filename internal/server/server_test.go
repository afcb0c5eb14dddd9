package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	nazv1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/store/memory"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server *Server
	srv    *httptest.Server
	stores store.Stores
	blobs  *blob.MemoryStore

	orgs           nazv1connect.OrganizationServiceClient
	users          nazv1connect.UserServiceClient
	products       nazv1connect.ProductServiceClient
	careers        nazv1connect.CareerServiceClient
	certifications nazv1connect.CertificationServiceClient
	banners        nazv1connect.HomeBannerServiceClient
	activity       nazv1connect.ActivityLogServiceClient
	identity       nazv1connect.IdentityServiceClient
}

type staticSnapshots struct {
	snap identity.Snapshot
	err  error
}

func (s staticSnapshots) Snapshot(_ context.Context, _, _ string) (identity.Snapshot, error) {
	return s.snap, s.err
}

func newTestEnv(t *testing.T, session *auth.Session, snapshots SnapshotSource) *testEnv {
	t.Helper()

	stores := memory.NewStores()
	tenants := tenant.NewProvisioner(stores.Organizations)
	reconciler := identity.NewReconciler(stores.Organizations, stores.Users, tenants)

	blobs := blob.NewMemoryStore("http://blobs.test")
	uploads, err := blob.NewUploads(blobs, blob.UploadsConfig{
		BaseURL:       "http://portal.test",
		SigningSecret: []byte(strings.Repeat("s", 32)),
	})
	require.NoError(t, err)

	srv, err := NewServer(Config{
		Stores:     stores,
		Tenants:    tenants,
		Reconciler: reconciler,
		Snapshots:  snapshots,
		Uploads:    uploads,
	})
	require.NoError(t, err)

	h, err := srv.Handler(zerolog.Nop())
	require.NoError(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session != nil {
			r = r.WithContext(auth.WithSession(r.Context(), session))
		}
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	client := ts.Client()
	return &testEnv{
		server: srv,
		srv:    ts,
		stores: stores,
		blobs:  blobs,

		orgs:           nazv1connect.NewOrganizationServiceClient(client, ts.URL),
		users:          nazv1connect.NewUserServiceClient(client, ts.URL),
		products:       nazv1connect.NewProductServiceClient(client, ts.URL),
		careers:        nazv1connect.NewCareerServiceClient(client, ts.URL),
		certifications: nazv1connect.NewCertificationServiceClient(client, ts.URL),
		banners:        nazv1connect.NewHomeBannerServiceClient(client, ts.URL),
		activity:       nazv1connect.NewActivityLogServiceClient(client, ts.URL),
		identity:       nazv1connect.NewIdentityServiceClient(client, ts.URL),
	}
}

func (env *testEnv) putBlob(t *testing.T) string {
	t.Helper()
	id, err := blob.NewStorageID()
	require.NoError(t, err)
	require.NoError(t, env.blobs.Put(context.Background(), id, "application/pdf", strings.NewReader("%PDF"), 4))
	return id
}

func requireCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect error, got %v", err)
	require.Equal(t, code, connectErr.Code())
}

var staffSession = &auth.Session{UserID: "user_staff", SessionID: "sess_1"}

func TestProductAttachmentLifecycle(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()
	first := env.putBlob(t)

	created, err := env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{
		Name:                "Infusion Pump",
		Description:         "Volumetric pump",
		AttachmentStorageId: &first,
	}))
	require.NoError(t, err)
	productID := created.Msg.Id

	got, err := env.products.Get(ctx, connect.NewRequest(&nazv1.GetProductRequest{Id: productID}))
	require.NoError(t, err)
	require.NotNil(t, got.Msg.Product)
	require.Equal(t, "visible", got.Msg.Product.Status)
	require.Equal(t, "http://blobs.test/blobs/"+first, got.Msg.Product.AttachmentUrl)
	require.NotNil(t, got.Msg.Product.CreatedAt)

	// Replacing the attachment deletes the previous blob.
	second := env.putBlob(t)
	updated, err := env.products.Update(ctx, connect.NewRequest(&nazv1.UpdateProductRequest{
		Id:                  productID,
		AttachmentStorageId: &second,
	}))
	require.NoError(t, err)
	require.Equal(t, second, updated.Msg.Product.GetAttachmentStorageId())
	require.Equal(t, "Infusion Pump", updated.Msg.Product.Name)
	require.False(t, env.blobs.Exists(first))
	require.True(t, env.blobs.Exists(second))

	// Removing clears the reference and the blob.
	updated, err = env.products.Update(ctx, connect.NewRequest(&nazv1.UpdateProductRequest{
		Id:               productID,
		RemoveAttachment: true,
	}))
	require.NoError(t, err)
	require.Nil(t, updated.Msg.Product.AttachmentStorageId)
	require.Empty(t, updated.Msg.Product.AttachmentUrl)
	require.False(t, env.blobs.Exists(second))

	_, err = env.products.Remove(ctx, connect.NewRequest(&nazv1.RemoveProductRequest{Id: productID}))
	require.NoError(t, err)

	got, err = env.products.Get(ctx, connect.NewRequest(&nazv1.GetProductRequest{Id: productID}))
	require.NoError(t, err)
	require.Nil(t, got.Msg.Product)
}

func TestProductUpdateRemovalWinsOverNewAttachment(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()
	old := env.putBlob(t)

	created, err := env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{
		Name:                "Stethoscope",
		AttachmentStorageId: &old,
	}))
	require.NoError(t, err)

	incoming := env.putBlob(t)
	updated, err := env.products.Update(ctx, connect.NewRequest(&nazv1.UpdateProductRequest{
		Id:                  created.Msg.Id,
		AttachmentStorageId: &incoming,
		RemoveAttachment:    true,
	}))
	require.NoError(t, err)
	require.Nil(t, updated.Msg.Product.AttachmentStorageId)
	require.False(t, env.blobs.Exists(old))
	require.False(t, env.blobs.Exists(incoming))
}

func TestProductRemoveDeletesBlob(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()
	attachment := env.putBlob(t)

	created, err := env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{
		Name:                "Monitor",
		AttachmentStorageId: &attachment,
	}))
	require.NoError(t, err)

	_, err = env.products.Remove(ctx, connect.NewRequest(&nazv1.RemoveProductRequest{Id: created.Msg.Id}))
	require.NoError(t, err)
	require.False(t, env.blobs.Exists(attachment))

	_, err = env.products.Remove(ctx, connect.NewRequest(&nazv1.RemoveProductRequest{Id: created.Msg.Id}))
	requireCode(t, err, connect.CodeNotFound)
}

func TestProductCreateUsesDefaultOrganization(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	created, err := env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{Name: "Gloves"}))
	require.NoError(t, err)

	def, err := env.stores.Organizations.GetBySlug(ctx, tenant.DefaultOrganizationSlug)
	require.NoError(t, err)

	got, err := env.products.Get(ctx, connect.NewRequest(&nazv1.GetProductRequest{Id: created.Msg.Id}))
	require.NoError(t, err)
	require.Equal(t, def.ID.String(), got.Msg.Product.OrganizationId)

	orgID := def.ID.String()
	list, err := env.products.List(ctx, connect.NewRequest(&nazv1.ListProductsRequest{OrganizationId: &orgID}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Products, 1)
}

func TestCareerStatusUpdate(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	created, err := env.careers.Create(ctx, connect.NewRequest(&nazv1.CreateCareerRequest{
		Role:         "Field Engineer",
		Department:   "Service",
		Location:     "Jakarta",
		ReportTo:     "Service Manager",
		JobStatus:    "full-time",
		Requirements: []string{"Diploma in electronics", "Driving licence"},
		JobScope:     []string{"Install equipment"},
	}))
	require.NoError(t, err)

	_, err = env.careers.UpdateStatus(ctx, connect.NewRequest(&nazv1.UpdateCareerStatusRequest{
		Id:        created.Msg.Id,
		JobStatus: "internship",
	}))
	require.NoError(t, err)

	got, err := env.careers.Get(ctx, connect.NewRequest(&nazv1.GetCareerRequest{Id: created.Msg.Id}))
	require.NoError(t, err)
	require.Equal(t, "internship", got.Msg.Career.JobStatus)
	require.Equal(t, "Field Engineer", got.Msg.Career.Role)
	require.Equal(t, "Service", got.Msg.Career.Department)
	require.Equal(t, []string{"Diploma in electronics", "Driving licence"}, got.Msg.Career.Requirements)
}

func TestCertificationUpdate(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()
	old := env.putBlob(t)

	created, err := env.certifications.Create(ctx, connect.NewRequest(&nazv1.CreateCertificationRequest{
		Issuer:              "TÜV",
		Name:                "ISO 13485",
		Standard:            "ISO 13485:2016",
		Scope:               "Distribution of medical devices",
		IssuedDate:          "2024-01-10",
		ExpiredDate:         "2027-01-09",
		AttachmentStorageId: &old,
	}))
	require.NoError(t, err)

	newer := env.putBlob(t)
	expired := "2028-01-09"
	updated, err := env.certifications.Update(ctx, connect.NewRequest(&nazv1.UpdateCertificationRequest{
		Id:                  created.Msg.Id,
		ExpiredDate:         &expired,
		AttachmentStorageId: &newer,
	}))
	require.NoError(t, err)
	require.Equal(t, expired, updated.Msg.Certification.ExpiredDate)
	require.Equal(t, "ISO 13485", updated.Msg.Certification.Name)
	require.Equal(t, newer, updated.Msg.Certification.GetAttachmentStorageId())
	require.False(t, env.blobs.Exists(old))

	list, err := env.certifications.List(ctx, connect.NewRequest(&nazv1.ListCertificationsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Certifications, 1)
	require.NotEmpty(t, list.Msg.Certifications[0].AttachmentUrl)
}

func TestHomeBannerLifecycle(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()
	image := env.putBlob(t)

	created, err := env.banners.Create(ctx, connect.NewRequest(&nazv1.CreateHomeBannerRequest{
		Title:     "Trusted medical equipment",
		StorageId: image,
	}))
	require.NoError(t, err)

	list, err := env.banners.List(ctx, connect.NewRequest(&nazv1.ListHomeBannersRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Banners, 1)
	require.Equal(t, "http://blobs.test/blobs/"+image, list.Msg.Banners[0].ImageUrl)

	_, err = env.banners.Remove(ctx, connect.NewRequest(&nazv1.RemoveHomeBannerRequest{Id: created.Msg.Id}))
	require.NoError(t, err)
	require.False(t, env.blobs.Exists(image))
}

func TestMutationsRequireSession(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	ctx := context.Background()

	list, err := env.products.List(ctx, connect.NewRequest(&nazv1.ListProductsRequest{}))
	require.NoError(t, err)
	require.Empty(t, list.Msg.Products)

	_, err = env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{Name: "Gloves"}))
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = env.products.GenerateUploadURL(ctx, connect.NewRequest(&nazv1.GenerateProductUploadURLRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = env.users.List(ctx, connect.NewRequest(&nazv1.ListUsersRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated)
}

func TestJSONClientsAreServed(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	client := nazv1connect.NewProductServiceClient(env.srv.Client(), env.srv.URL, connect.WithProtoJSON())
	created, err := client.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{Name: "Thermometer"}))
	require.NoError(t, err)

	got, err := client.Get(ctx, connect.NewRequest(&nazv1.GetProductRequest{Id: created.Msg.Id}))
	require.NoError(t, err)
	require.Equal(t, "Thermometer", got.Msg.Product.Name)
}

func TestValidationErrors(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	_, err := env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{}))
	requireCode(t, err, connect.CodeInvalidArgument)

	status := "archived"
	_, err = env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{Name: "x", Status: &status}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = env.products.Get(ctx, connect.NewRequest(&nazv1.GetProductRequest{Id: "not-a-uuid"}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = env.careers.UpdateStatus(ctx, connect.NewRequest(&nazv1.UpdateCareerStatusRequest{
		Id:        "0190a5e8-7a5c-7b8e-8f00-000000000001",
		JobStatus: "freelance",
	}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestUpdateMissingProductNotFound(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	name := "renamed"

	_, err := env.products.Update(context.Background(), connect.NewRequest(&nazv1.UpdateProductRequest{
		Id:   "0190a5e8-7a5c-7b8e-8f00-000000000001",
		Name: &name,
	}))
	requireCode(t, err, connect.CodeNotFound)
}

func TestMutationsRecordActivity(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	_, err := env.users.SyncFromClerk(ctx, connect.NewRequest(&nazv1.SyncUserRequest{
		ExternalUserId: staffSession.UserID,
		Email:          "staff@naz.test",
		FullName:       "Staff Member",
	}))
	require.NoError(t, err)

	_, err = env.products.Create(ctx, connect.NewRequest(&nazv1.CreateProductRequest{Name: "Oximeter"}))
	require.NoError(t, err)

	recent, err := env.activity.Recent(ctx, connect.NewRequest(&nazv1.RecentActivityRequest{}))
	require.NoError(t, err)
	require.Len(t, recent.Msg.Entries, 1)
	require.Equal(t, models.ActivityProductCreated, recent.Msg.Entries[0].Type)
	require.NotNil(t, recent.Msg.Entries[0].ActorUserId)
}

func TestOrganizationsAndUsers(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	def, err := env.orgs.EnsureDefault(ctx, connect.NewRequest(&nazv1.EnsureDefaultOrganizationRequest{}))
	require.NoError(t, err)
	again, err := env.orgs.EnsureDefault(ctx, connect.NewRequest(&nazv1.EnsureDefaultOrganizationRequest{}))
	require.NoError(t, err)
	require.Equal(t, def.Msg.OrganizationId, again.Msg.OrganizationId)

	org, err := env.orgs.SyncFromClerk(ctx, connect.NewRequest(&nazv1.SyncOrganizationRequest{
		ExternalOrgId: "org_1",
		Name:          "Acme Clinic",
	}))
	require.NoError(t, err)

	orgRef := "org_1"
	_, err = env.users.SyncFromClerk(ctx, connect.NewRequest(&nazv1.SyncUserRequest{
		ExternalUserId: "user_1",
		Email:          "a@x.com",
		FullName:       "Alice",
		ExternalOrgId:  &orgRef,
	}))
	require.NoError(t, err)
	_, err = env.users.SyncFromClerk(ctx, connect.NewRequest(&nazv1.SyncUserRequest{
		ExternalUserId: "user_2",
		FullName:       "Bob",
	}))
	require.NoError(t, err)

	users, err := env.users.List(ctx, connect.NewRequest(&nazv1.ListUsersRequest{}))
	require.NoError(t, err)
	require.Len(t, users.Msg.Users, 2)
	byID := map[string]*nazv1.User{}
	for _, u := range users.Msg.Users {
		byID[u.ExternalUserId] = u
	}
	require.Equal(t, "Acme Clinic", byID["user_1"].OrganizationName)
	require.Equal(t, org.Msg.OrganizationId, byID["user_1"].GetOrganizationId())
	require.Equal(t, tenant.DefaultOrganizationName, byID["user_2"].OrganizationName)

	active, err := env.orgs.GetActiveForUser(ctx, connect.NewRequest(&nazv1.GetActiveForUserRequest{ExternalOrgId: &orgRef}))
	require.NoError(t, err)
	require.Equal(t, "Acme Clinic", active.Msg.Organization.Name)

	orgs, err := env.orgs.List(ctx, connect.NewRequest(&nazv1.ListOrganizationsRequest{}))
	require.NoError(t, err)
	require.Len(t, orgs.Msg.Organizations, 2)
}

func TestUserSyncResetsTrackedIdentity(t *testing.T) {
	snap := identity.Snapshot{
		ExternalUserID: "user_1",
		Email:          "a@x.com",
		FullName:       "Alice",
	}
	env := newTestEnv(t, staffSession, nil)
	ctx := context.Background()

	res, err := env.server.tracker.Observe(ctx, snap)
	require.NoError(t, err)
	require.NotNil(t, res)

	res, err = env.server.tracker.Observe(ctx, snap)
	require.NoError(t, err)
	require.Nil(t, res)

	_, err = env.users.SyncFromClerk(ctx, connect.NewRequest(&nazv1.SyncUserRequest{
		ExternalUserId: "user_1",
		Email:          "alice@x.com",
		FullName:       "Alice B",
	}))
	require.NoError(t, err)

	// The stored row changed underneath the tracker, so the same snapshot reconciles again.
	res, err = env.server.tracker.Observe(ctx, snap)
	require.NoError(t, err)
	require.NotNil(t, res)

	user, err := env.stores.Users.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, "Alice", *user.FullName)
}

func TestIdentitySync(t *testing.T) {
	snapshots := staticSnapshots{snap: identity.Snapshot{
		ExternalUserID:   staffSession.UserID,
		Email:            "staff@naz.test",
		FullName:         "Staff Member",
		ExternalOrgID:    "org_9",
		OrganizationName: "NAZ Surabaya",
	}}
	env := newTestEnv(t, staffSession, snapshots)
	ctx := context.Background()

	res, err := env.identity.Sync(ctx, connect.NewRequest(&nazv1.SyncIdentityRequest{}))
	require.NoError(t, err)
	require.True(t, res.Msg.Synced)
	require.NotNil(t, res.Msg.UserId)
	require.NotNil(t, res.Msg.OrganizationId)

	user, err := env.stores.Users.GetByExternalID(ctx, staffSession.UserID)
	require.NoError(t, err)
	require.Equal(t, res.Msg.GetOrganizationId(), user.OrganizationID.String())

	// Unchanged identity is skipped.
	res, err = env.identity.Sync(ctx, connect.NewRequest(&nazv1.SyncIdentityRequest{}))
	require.NoError(t, err)
	require.False(t, res.Msg.Synced)
}

func TestIdentitySyncWithoutProvider(t *testing.T) {
	env := newTestEnv(t, staffSession, nil)

	_, err := env.identity.Sync(context.Background(), connect.NewRequest(&nazv1.SyncIdentityRequest{}))
	requireCode(t, err, connect.CodeFailedPrecondition)
}

func TestSyncOnPageLoad(t *testing.T) {
	snapshots := staticSnapshots{snap: identity.Snapshot{
		ExternalUserID: staffSession.UserID,
		Email:          "staff@naz.test",
		FullName:       "Staff Member",
	}}
	env := newTestEnv(t, nil, snapshots)

	served := 0
	h := env.server.SyncOnPageLoad(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
	}))

	// Anonymous and public page loads do not sync.
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/portal", nil))
	r := httptest.NewRequest(http.MethodGet, "/products", nil)
	h.ServeHTTP(httptest.NewRecorder(), r.WithContext(auth.WithSession(r.Context(), staffSession)))
	_, err := env.stores.Users.GetByExternalID(context.Background(), staffSession.UserID)
	require.ErrorIs(t, err, store.ErrUserNotFound)

	r = httptest.NewRequest(http.MethodGet, "/portal", nil)
	h.ServeHTTP(httptest.NewRecorder(), r.WithContext(auth.WithSession(r.Context(), staffSession)))
	user, err := env.stores.Users.GetByExternalID(context.Background(), staffSession.UserID)
	require.NoError(t, err)
	require.Equal(t, "Staff Member", *user.FullName)
	require.Equal(t, 3, served)

	// Snapshot failures never block the page.
	failing := newTestEnv(t, nil, staticSnapshots{err: errors.New("clerk down")})
	h = failing.server.SyncOnPageLoad(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	w := httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/portal", nil)
	h.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), staffSession)))
	require.Equal(t, http.StatusNoContent, w.Code)
}
