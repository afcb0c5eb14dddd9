package server

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.HomeBannerServiceHandler = &HomeBannerServiceServer{}

type HomeBannerServiceServer struct {
	*Server
}

func (s *HomeBannerServiceServer) List(ctx context.Context, _ *connect.Request[v1.ListHomeBannersRequest]) (*connect.Response[v1.ListHomeBannersResponse], error) {
	banners, err := s.stores.HomeBanners.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.HomeBanner, 0, len(banners))
	for _, b := range banners {
		out = append(out, &v1.HomeBanner{
			Id:             b.ID.String(),
			Title:          b.Title,
			Subtitle:       b.Subtitle,
			CtaLabel:       b.CTALabel,
			CtaUrl:         b.CTAURL,
			StorageId:      b.StorageID,
			ImageUrl:       s.attachmentURL(ctx, &b.StorageID),
			OrganizationId: b.OrganizationID.String(),
			CreatedAt:      timestamppb.New(b.CreatedAt),
		})
	}
	return connect.NewResponse(&v1.ListHomeBannersResponse{Banners: out}), nil
}

func (s *HomeBannerServiceServer) Create(ctx context.Context, req *connect.Request[v1.CreateHomeBannerRequest]) (*connect.Response[v1.CreateHomeBannerResponse], error) {
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
		return nil, toConnectError(fmt.Errorf("failed to generate banner id: %w", err))
	}

	b := &models.HomeBanner{
		ID:             id,
		Title:          msg.Title,
		Subtitle:       msg.Subtitle,
		CTALabel:       msg.CtaLabel,
		CTAURL:         msg.CtaUrl,
		StorageID:      msg.StorageId,
		OrganizationID: orgID,
		CreatedAt:      s.now(),
	}
	if err := s.stores.HomeBanners.Create(ctx, b); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "banner", "created")
	s.recordActivity(ctx, models.ActivityBannerCreated, orgID, "Banner %q created", b.Title)

	return connect.NewResponse(&v1.CreateHomeBannerResponse{Id: b.ID.String()}), nil
}

// Remove deletes the banner image before the banner itself.
func (s *HomeBannerServiceServer) Remove(ctx context.Context, req *connect.Request[v1.RemoveHomeBannerRequest]) (*connect.Response[v1.RemoveHomeBannerResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	id := parseID(req.Msg.Id)
	existing, err := s.stores.HomeBanners.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.deleteBlob(ctx, &existing.StorageID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.stores.HomeBanners.Delete(ctx, id); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "banner", "removed")
	s.recordActivity(ctx, models.ActivityBannerRemoved, existing.OrganizationID, "Banner %q removed", existing.Title)

	return connect.NewResponse(&v1.RemoveHomeBannerResponse{}), nil
}

func (s *HomeBannerServiceServer) GenerateUploadURL(ctx context.Context, _ *connect.Request[v1.GenerateHomeBannerUploadURLRequest]) (*connect.Response[v1.GenerateHomeBannerUploadURLResponse], error) {
	u, err := s.generateUploadURL(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.GenerateHomeBannerUploadURLResponse{UploadUrl: u}), nil
}
