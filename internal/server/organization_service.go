package server

import (
	"context"

	"connectrpc.com/connect"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/models"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.OrganizationServiceHandler = &OrganizationServiceServer{}

// OrganizationServiceServer manages tenants.
type OrganizationServiceServer struct {
	*Server
}

func (s *OrganizationServiceServer) EnsureDefault(ctx context.Context, _ *connect.Request[v1.EnsureDefaultOrganizationRequest]) (*connect.Response[v1.EnsureDefaultOrganizationResponse], error) {
	id, err := s.tenants.EnsureDefaultOrganization(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.DefaultTenantHits.Add(ctx, 1)
	return connect.NewResponse(&v1.EnsureDefaultOrganizationResponse{OrganizationId: id.String()}), nil
}

// GetActiveForUser falls back to the session's ids for fields the caller
// leaves out.
func (s *OrganizationServiceServer) GetActiveForUser(ctx context.Context, req *connect.Request[v1.GetActiveForUserRequest]) (*connect.Response[v1.GetActiveForUserResponse], error) {
	orgID, userID := req.Msg.ExternalOrgId, req.Msg.ExternalUserId
	if session := auth.SessionFromContext(ctx); session != nil {
		if orgID == nil && session.OrgID != "" {
			orgID = &session.OrgID
		}
		if userID == nil {
			userID = &session.UserID
		}
	}

	org, err := s.reconciler.GetActiveOrganization(ctx, orgID, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if org == nil {
		return connect.NewResponse(&v1.GetActiveForUserResponse{}), nil
	}
	return connect.NewResponse(&v1.GetActiveForUserResponse{Organization: toOrganization(org)}), nil
}

func (s *OrganizationServiceServer) List(ctx context.Context, _ *connect.Request[v1.ListOrganizationsRequest]) (*connect.Response[v1.ListOrganizationsResponse], error) {
	orgs, err := s.stores.Organizations.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.Organization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, toOrganization(o))
	}
	return connect.NewResponse(&v1.ListOrganizationsResponse{Organizations: out}), nil
}

func (s *OrganizationServiceServer) SyncFromClerk(ctx context.Context, req *connect.Request[v1.SyncOrganizationRequest]) (*connect.Response[v1.SyncOrganizationResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	id, err := s.reconciler.ReconcileOrganization(ctx, identity.OrganizationInput{
		ExternalOrgID: msg.ExternalOrgId,
		Name:          msg.Name,
		Slug:          msg.Slug,
		CreatedBy:     msg.ExternalCreatedBy,
	})
	if err != nil {
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
		return nil, toConnectError(err)
	}

	log.Info().Str("org_id", id.String()).Str("external_org_id", msg.ExternalOrgId).Msg("Synced organization")
	s.metrics.IdentitySyncTotal.Add(ctx, 1)

	return connect.NewResponse(&v1.SyncOrganizationResponse{OrganizationId: id.String()}), nil
}

func toOrganization(o *models.Organization) *v1.Organization {
	return &v1.Organization{
		Id:                      o.ID.String(),
		Name:                    o.Name,
		Slug:                    o.Slug,
		ExternalOrgId:           o.ExternalOrgID,
		CreatedByExternalUserId: o.CreatedByExternalUserID,
		CreatedByUserId:         idString(o.CreatedByUserID),
		CreatedAt:               timestamppb.New(o.CreatedAt),
	}
}
