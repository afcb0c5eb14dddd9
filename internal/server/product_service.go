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
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ nazv1connect.ProductServiceHandler = &ProductServiceServer{}

// ProductServiceServer serves the product catalogue. Reads are public.
type ProductServiceServer struct {
	*Server
}

func (s *ProductServiceServer) List(ctx context.Context, req *connect.Request[v1.ListProductsRequest]) (*connect.Response[v1.ListProductsResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	products, err := s.stores.Products.List(ctx, parseOptionalID(req.Msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*v1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, s.toProduct(ctx, p))
	}
	return connect.NewResponse(&v1.ListProductsResponse{Products: out}), nil
}

// Get returns a null product rather than an error when it is missing.
func (s *ProductServiceServer) Get(ctx context.Context, req *connect.Request[v1.GetProductRequest]) (*connect.Response[v1.GetProductResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	p, err := s.stores.Products.Get(ctx, parseID(req.Msg.Id))
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return connect.NewResponse(&v1.GetProductResponse{}), nil
		}
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.GetProductResponse{Product: s.toProduct(ctx, p)}), nil
}

func (s *ProductServiceServer) Create(ctx context.Context, req *connect.Request[v1.CreateProductRequest]) (*connect.Response[v1.CreateProductResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	orgID, err := s.tenants.ResolveOrganizationID(ctx, parseOptionalID(msg.OrganizationId))
	if err != nil {
		return nil, toConnectError(err)
	}

	status := models.ProductStatusVisible
	if msg.Status != nil {
		status = models.ProductStatus(msg.GetStatus())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, toConnectError(fmt.Errorf("failed to generate product id: %w", err))
	}

	p := &models.Product{
		ID:                  id,
		Name:                msg.Name,
		Description:         msg.Description,
		Status:              status,
		AttachmentStorageID: msg.AttachmentStorageId,
		OrganizationID:      orgID,
		CreatedAt:           s.now(),
	}
	if err := s.stores.Products.Create(ctx, p); err != nil {
		return nil, toConnectError(err)
	}

	log.Debug().Str("product_id", p.ID.String()).Str("org_id", orgID.String()).Msg("Created product")
	s.metrics.RecordMutation(ctx, "product", "created")
	s.recordActivity(ctx, models.ActivityProductCreated, orgID, "Product %q created", p.Name)

	return connect.NewResponse(&v1.CreateProductResponse{Id: p.ID.String()}), nil
}

// Update applies a partial update. A new attachment replaces the old blob;
// remove_attachment deletes the old blob and clears the reference, and wins
// over a new attachment supplied in the same call.
func (s *ProductServiceServer) Update(ctx context.Context, req *connect.Request[v1.UpdateProductRequest]) (*connect.Response[v1.UpdateProductResponse], error) {
	msg := req.Msg
	if err := s.validateRequest(msg); err != nil {
		return nil, err
	}

	id := parseID(msg.Id)
	existing, err := s.stores.Products.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	patch := models.ProductPatch{
		Name:        msg.Name,
		Description: msg.Description,
	}
	if msg.Status != nil {
		status := models.ProductStatus(msg.GetStatus())
		patch.Status = &status
	}

	if err := s.replaceAttachment(ctx, existing.AttachmentStorageID, msg.AttachmentStorageId, msg.RemoveAttachment); err != nil {
		return nil, toConnectError(err)
	}
	if msg.RemoveAttachment {
		patch.ClearAttachment = true
	} else {
		patch.AttachmentStorageID = msg.AttachmentStorageId
	}

	updated, err := s.stores.Products.Patch(ctx, id, patch)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "product", "updated")
	s.recordActivity(ctx, models.ActivityProductUpdated, updated.OrganizationID, "Product %q updated", updated.Name)

	return connect.NewResponse(&v1.UpdateProductResponse{Product: s.toProduct(ctx, updated)}), nil
}

func (s *ProductServiceServer) Remove(ctx context.Context, req *connect.Request[v1.RemoveProductRequest]) (*connect.Response[v1.RemoveProductResponse], error) {
	if err := s.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	id := parseID(req.Msg.Id)
	existing, err := s.stores.Products.Get(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.deleteBlob(ctx, existing.AttachmentStorageID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.stores.Products.Delete(ctx, id); err != nil {
		return nil, toConnectError(err)
	}

	s.metrics.RecordMutation(ctx, "product", "removed")
	s.recordActivity(ctx, models.ActivityProductRemoved, existing.OrganizationID, "Product %q removed", existing.Name)

	return connect.NewResponse(&v1.RemoveProductResponse{}), nil
}

func (s *ProductServiceServer) GenerateUploadURL(ctx context.Context, _ *connect.Request[v1.GenerateProductUploadURLRequest]) (*connect.Response[v1.GenerateProductUploadURLResponse], error) {
	u, err := s.generateUploadURL(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.GenerateProductUploadURLResponse{UploadUrl: u}), nil
}

// replaceAttachment deletes the blobs an attachment change leaves unreferenced.
func (s *Server) replaceAttachment(ctx context.Context, current, incoming *string, remove bool) error {
	changed := incoming != nil && (current == nil || *current != *incoming)
	if remove || changed {
		if err := s.deleteBlob(ctx, current); err != nil {
			return err
		}
	}
	// An upload superseded by removal in the same call is never referenced.
	if remove && changed {
		if err := s.deleteBlob(ctx, incoming); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) toProduct(ctx context.Context, p *models.Product) *v1.Product {
	return &v1.Product{
		Id:                  p.ID.String(),
		Name:                p.Name,
		Description:         p.Description,
		Status:              string(p.Status),
		AttachmentStorageId: p.AttachmentStorageID,
		AttachmentUrl:       s.attachmentURL(ctx, p.AttachmentStorageID),
		OrganizationId:      p.OrganizationID.String(),
		CreatedAt:           timestamppb.New(p.CreatedAt),
	}
}
