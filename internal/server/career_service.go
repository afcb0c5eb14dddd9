package server

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.CareerServiceHandler = &CareerServiceServer{}

// CareerServiceServer serves job openings. Reads are public.
type CareerServiceServer struct {
	*Server
}

func (s *CareerServiceServer) List(ctx context.Context, req *connect.Request[v1.ListCareersRequest]) (*connect.Response[v1.ListCareersResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	careers, err := s.stores.Careers.List(ctx, parseOptionalID(req.Msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.Career, 0, len(careers))
	for _, c := range careers {
		out = append(out, toCareer(c))
	}
	return connect.NewResponse(&v1.ListCareersResponse{Careers: out}), nil
}

func (s *CareerServiceServer) Get(ctx context.Context, req *connect.Request[v1.GetCareerRequest]) (*connect.Response[v1.GetCareerResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	c, err := s.stores.Careers.Get(ctx, parseID(req.Msg.Id))
	if err != nil {
		if errors.Is(err, store.ErrCareerNotFound) {
			return connect.NewResponse(&v1.GetCareerResponse{}), nil
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.GetCareerResponse{Career: toCareer(c)}), nil
}

func (s *CareerServiceServer) Create(ctx context.Context, req *connect.Request[v1.CreateCareerRequest]) (*connect.Response[v1.CreateCareerResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	orgID, err := s.tenants.ResolveOrganizationID(ctx, parseOptionalID(msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, toConnectError(fmt.Errorf("failed to generate career id: %w", err))
	}

	c := &models.Career{
		ID:             id,
		Role:           msg.Role,
		Department:     msg.Department,
		Location:       msg.Location,
		ReportTo:       msg.ReportTo,
		JobStatus:      models.JobStatus(msg.JobStatus),
		Requirements:   slices.Clone(msg.Requirements),
		JobScope:       slices.Clone(msg.JobScope),
		OrganizationID: orgID,
		CreatedAt:      s.now(),
	}
	if err := s.stores.Careers.Create(ctx, c); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "career", "created")
	s.recordActivity(ctx, models.ActivityCareerCreated, orgID, "Career %q created", c.Role)

	return connect.NewResponse(&v1.CreateCareerResponse{Id: c.ID.String()}), nil
}

func (s *CareerServiceServer) UpdateStatus(ctx context.Context, req *connect.Request[v1.UpdateCareerStatusRequest]) (*connect.Response[v1.UpdateCareerStatusResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	id := parseID(msg.Id)
	status := models.JobStatus(msg.JobStatus)
	if err := s.stores.Careers.UpdateStatus(ctx, id, status); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "career", "status_updated")
	if c, err := s.stores.Careers.Get(ctx, id); err == nil {
		s.recordActivity(ctx, models.ActivityCareerStatusUpdated, c.OrganizationID, "Career %q is now %s", c.Role, status)
	}

	return connect.NewResponse(&v1.UpdateCareerStatusResponse{}), nil
}

func (s *CareerServiceServer) Remove(ctx context.Context, req *connect.Request[v1.RemoveCareerRequest]) (*connect.Response[v1.RemoveCareerResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	id := parseID(req.Msg.Id)
	existing, err := s.stores.Careers.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.stores.Careers.Delete(ctx, id); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "career", "removed")
	s.recordActivity(ctx, models.ActivityCareerRemoved, existing.OrganizationID, "Career %q removed", existing.Role)

	return connect.NewResponse(&v1.RemoveCareerResponse{}), nil
}

func toCareer(c *models.Career) *v1.Career {
	return &v1.Career{
		Id:             c.ID.String(),
		Role:           c.Role,
		Department:     c.Department,
		Location:       c.Location,
		ReportTo:       c.ReportTo,
		JobStatus:      string(c.JobStatus),
		Requirements:   c.Requirements,
		JobScope:       c.JobScope,
		OrganizationId: c.OrganizationID.String(),
		CreatedAt:      timestamppb.New(c.CreatedAt),
	}
}
