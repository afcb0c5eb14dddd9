package server

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultRecentLimit = 5
	defaultListLimit   = 20
)

var _ nazv1connect.ActivityLogServiceHandler = &ActivityLogServiceServer{}

// ActivityLogServiceServer serves the tenant audit trail.
type ActivityLogServiceServer struct {
	*Server
}

func (s *ActivityLogServiceServer) Recent(ctx context.Context, req *connect.Request[v1.RecentActivityRequest]) (*connect.Response[v1.RecentActivityResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	entries, err := s.latestActivity(ctx, req.Msg.Limit, defaultRecentLimit)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.RecentActivityResponse{Entries: entries}), nil
}

func (s *ActivityLogServiceServer) List(ctx context.Context, req *connect.Request[v1.ListActivityRequest]) (*connect.Response[v1.ListActivityResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	entries, err := s.latestActivity(ctx, req.Msg.Limit, defaultListLimit)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.ListActivityResponse{Entries: entries}), nil
}

func (s *ActivityLogServiceServer) latestActivity(ctx context.Context, requested *int32, defaultLimit int) ([]*v1.ActivityLog, error) {
	limit := defaultLimit
	if requested != nil {
		limit = int(*requested)
	}

	entries, err := s.stores.ActivityLogs.Latest(ctx, limit)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.ActivityLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityLog(e))
	}
	return out, nil
}

func (s *ActivityLogServiceServer) Log(ctx context.Context, req *connect.Request[v1.LogActivityRequest]) (*connect.Response[v1.LogActivityResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	orgID, err := s.tenants.ResolveOrganizationID(ctx, parseOptionalID(msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	entry, err := s.appendActivity(ctx, msg.Type, msg.Message, parseOptionalID(msg.ActorUserId), orgID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&v1.LogActivityResponse{Id: entry.ID.String()}), nil
}

func (s *Server) appendActivity(ctx context.Context, typ, message string, actor *uuid.UUID, orgID uuid.UUID) (*models.ActivityLog, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity id: %w", err)
	}
	entry := &models.ActivityLog{
		ID:             id,
		Type:           typ,
		Message:        message,
		ActorUserID:    actor,
		OrganizationID: orgID,
		CreatedAt:      s.now(),
	}
	if err := s.stores.ActivityLogs.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// recordActivity appends an audit entry for a completed mutation. The
// mutation has already succeeded, so failures are logged, not returned.
func (s *Server) recordActivity(ctx context.Context, typ string, orgID uuid.UUID, format string, args ...any) {
	if _, err := s.appendActivity(ctx, typ, fmt.Sprintf(format, args...), s.actorID(ctx), orgID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("type", typ).Msg("Failed to record activity")
	}
}

// actorID resolves the local user behind the session, if reconciled.
func (s *Server) actorID(ctx context.Context) *uuid.UUID {
	session := auth.SessionFromContext(ctx)
	if session == nil {
		return nil
	}
	user, err := s.stores.Users.GetByExternalID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to resolve activity actor")
		}
		return nil
	}
	return &user.ID
}

func toActivityLog(e *models.ActivityLog) *v1.ActivityLog {
	return &v1.ActivityLog{
		Id:             e.ID.String(),
		Type:           e.Type,
		Message:        e.Message,
		ActorUserId:    idString(e.ActorUserID),
		OrganizationId: e.OrganizationID.String(),
		CreatedAt:      timestamppb.New(e.CreatedAt),
	}
}
