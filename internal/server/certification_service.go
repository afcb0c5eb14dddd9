package server

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/models"
	"github.com/nazmedical/portal/internal/store"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.CertificationServiceHandler = &CertificationServiceServer{}

// CertificationServiceServer serves certificates and their scans. Reads are
// public.
type CertificationServiceServer struct {
	*Server
}

func (s *CertificationServiceServer) List(ctx context.Context, req *connect.Request[v1.ListCertificationsRequest]) (*connect.Response[v1.ListCertificationsResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	certs, err := s.stores.Certifications.List(ctx, parseOptionalID(req.Msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.Certification, 0, len(certs))
	for _, c := range certs {
		out = append(out, s.toCertification(ctx, c))
	}
	return connect.NewResponse(&v1.ListCertificationsResponse{Certifications: out}), nil
}

func (s *CertificationServiceServer) Get(ctx context.Context, req *connect.Request[v1.GetCertificationRequest]) (*connect.Response[v1.GetCertificationResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	c, err := s.stores.Certifications.Get(ctx, parseID(req.Msg.Id))
	if err != nil {
		if errors.Is(err, store.ErrCertificationNotFound) {
			return connect.NewResponse(&v1.GetCertificationResponse{}), nil
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.GetCertificationResponse{Certification: s.toCertification(ctx, c)}), nil
}

func (s *CertificationServiceServer) Create(ctx context.Context, req *connect.Request[v1.CreateCertificationRequest]) (*connect.Response[v1.CreateCertificationResponse], error) {
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
		return nil, toConnectError(fmt.Errorf("failed to generate certification id: %w", err))
	}

	c := &models.Certification{
		ID:                  id,
		Issuer:              msg.Issuer,
		Name:                msg.Name,
		Standard:            msg.Standard,
		Scope:               msg.Scope,
		IssuedDate:          msg.IssuedDate,
		ExpiredDate:         msg.ExpiredDate,
		AttachmentStorageID: msg.AttachmentStorageId,
		OrganizationID:      orgID,
		CreatedAt:           s.now(),
	}
	if err := s.stores.Certifications.Create(ctx, c); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "certification", "created")
	s.recordActivity(ctx, models.ActivityCertificationCreated, orgID, "Certification %q created", c.Name)

	return connect.NewResponse(&v1.CreateCertificationResponse{Id: c.ID.String()}), nil
}

// Update follows the same attachment rules as product updates.
func (s *CertificationServiceServer) Update(ctx context.Context, req *connect.Request[v1.UpdateCertificationRequest]) (*connect.Response[v1.UpdateCertificationResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	id := parseID(msg.Id)
	existing, err := s.stores.Certifications.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	patch := models.CertificationPatch{
		Issuer:      msg.Issuer,
		Name:        msg.Name,
		Standard:    msg.Standard,
		Scope:       msg.Scope,
		IssuedDate:  msg.IssuedDate,
		ExpiredDate: msg.ExpiredDate,
	}

	if err := s.replaceAttachment(ctx, existing.AttachmentStorageID, msg.AttachmentStorageId, msg.RemoveAttachment); err != nil {
		return nil, toConnectError(err)
	}
	if msg.RemoveAttachment {
		patch.ClearAttachment = true
	} else {
		patch.AttachmentStorageID = msg.AttachmentStorageId
	}

	updated, err := s.stores.Certifications.Patch(ctx, id, patch)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "certification", "updated")
	s.recordActivity(ctx, models.ActivityCertificationUpdated, updated.OrganizationID, "Certification %q updated", updated.Name)

	return connect.NewResponse(&v1.UpdateCertificationResponse{Certification: s.toCertification(ctx, updated)}), nil
}

func (s *CertificationServiceServer) Remove(ctx context.Context, req *connect.Request[v1.RemoveCertificationRequest]) (*connect.Response[v1.RemoveCertificationResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	id := parseID(req.Msg.Id)
	existing, err := s.stores.Certifications.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.deleteBlob(ctx, existing.AttachmentStorageID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.stores.Certifications.Delete(ctx, id); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "certification", "removed")
	s.recordActivity(ctx, models.ActivityCertificationRemoved, existing.OrganizationID, "Certification %q removed", existing.Name)

	return connect.NewResponse(&v1.RemoveCertificationResponse{}), nil
}

func (s *CertificationServiceServer) GenerateUploadURL(ctx context.Context, _ *connect.Request[v1.GenerateCertificationUploadURLRequest]) (*connect.Response[v1.GenerateCertificationUploadURLResponse], error) {
	u, err := s.generateUploadURL(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.GenerateCertificationUploadURLResponse{UploadUrl: u}), nil
}

func (s *Server) toCertification(ctx context.Context, c *models.Certification) *v1.Certification {
	return &v1.Certification{
		Id:                  c.ID.String(),
		Issuer:              c.Issuer,
		Name:                c.Name,
		Standard:            c.Standard,
		Scope:               c.Scope,
		IssuedDate:          c.IssuedDate,
		ExpiredDate:         c.ExpiredDate,
		AttachmentStorageId: c.AttachmentStorageID,
		AttachmentUrl:       s.attachmentURL(ctx, c.AttachmentStorageID),
		OrganizationId:      c.OrganizationID.String(),
		CreatedAt:           timestamppb.New(c.CreatedAt),
	}
}
