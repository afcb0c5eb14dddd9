package server

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/auth"
)

var _ nazv1connect.IdentityServiceHandler = &IdentityServiceServer{}

type IdentityServiceServer struct {
	*Server
}

// Sync reconciles the signed-in user from the identity provider's current
// view. Unchanged identities are skipped and reported with synced=false.
func (s *IdentityServiceServer) Sync(ctx context.Context, _ *connect.Request[v1.SyncIdentityRequest]) (*connect.Response[v1.SyncIdentityResponse], error) {
	session := auth.SessionFromContext(ctx)
	if session == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrUnauthenticated)
	}
	if s.snapshots == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("identity provider is not configured"))
	}

	snap, err := s.snapshots.Snapshot(ctx, session.UserID, session.OrgID)
	if err != nil {
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
		return nil, toConnectError(err)
	}

	res, err := s.tracker.Observe(ctx, snap)
	if err != nil {
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
		return nil, toConnectError(err)
	}
	if res == nil {
		s.metrics.IdentitySyncSkipped.Add(ctx, 1)
		return connect.NewResponse(&v1.SyncIdentityResponse{}), nil
	}

	s.metrics.IdentitySyncTotal.Add(ctx, 1)
	userID := res.UserID.String()
	return connect.NewResponse(&v1.SyncIdentityResponse{
		Synced:         true,
		UserId:         &userID,
		OrganizationId: idString(res.OrganizationID),
	}), nil
}
