package server

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.UserServiceHandler = &UserServiceServer{}

// UserServiceServer manages staff accounts.
type UserServiceServer struct {
	*Server
}

// List joins each user with its organization's name. Users without a
// resolvable organization are shown under the default organization name.
func (s *UserServiceServer) List(ctx context.Context, _ *connect.Request[v1.ListUsersRequest]) (*connect.Response[v1.ListUsersResponse], error) {
	users, err := s.stores.Users.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	orgs, err := s.stores.Organizations.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	names := make(map[uuid.UUID]string, len(orgs))
	for _, o := range orgs {
		names[o.ID] = o.Name
	}

	out := make([]*v1.User, 0, len(users))
	for _, u := range users {
		orgName := tenant.DefaultOrganizationName
		if u.OrganizationID != nil {
			if name, ok := names[*u.OrganizationID]; ok {
				orgName = name
			}
		}
		out = append(out, &v1.User{
			Id:               u.ID.String(),
			ExternalUserId:   u.ExternalUserID,
			Email:            u.Email,
			FullName:         u.FullName,
			Role:             u.Role,
			OrganizationId:   idString(u.OrganizationID),
			OrganizationName: orgName,
			CreatedAt:        timestamppb.New(u.CreatedAt),
		})
	}
	return connect.NewResponse(&v1.ListUsersResponse{Users: out}), nil
}

// SyncFromClerk upserts the user and drops the tracker's remembered state for
// it, so the next page load reconciles against the new record.
func (s *UserServiceServer) SyncFromClerk(ctx context.Context, req *connect.Request[v1.SyncUserRequest]) (*connect.Response[v1.SyncUserResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	id, err := s.reconciler.ReconcileUser(ctx, identity.UserInput{
		ExternalUserID: msg.ExternalUserId,
		Email:          msg.Email,
		FullName:       msg.FullName,
		ExternalOrgID:  msg.ExternalOrgId,
	})
	if err != nil {
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
		return nil, toConnectError(err)
	}
	s.tracker.Forget(msg.ExternalUserId)

	log.Info().Str("user_id", id.String()).Str("external_user_id", msg.ExternalUserId).Msg("Synced user")
	s.metrics.IdentitySyncTotal.Add(ctx, 1)

	return connect.NewResponse(&v1.SyncUserResponse{UserId: id.String()}), nil
}
