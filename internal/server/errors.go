package server

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	v1 "github.com/nazmedical/portal/api/gen/proto/go/naz/v1"
	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/store"
	"github.com/rs/zerolog/log"
)

var notFoundErrors = []error{
	store.ErrOrganizationNotFound,
	store.ErrUserNotFound,
	store.ErrProductNotFound,
	store.ErrCareerNotFound,
	store.ErrCertificationNotFound,
	store.ErrBannerNotFound,
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// toConnectError maps domain and store errors onto connect codes.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, identity.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case isNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, store.ErrOrganizationAlreadyExists), errors.Is(err, store.ErrUserAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case isConnectivityError(err):
		log.Error().Err(err).Msg("Upstream unavailable")
		return connect.NewError(connect.CodeUnavailable, errors.New("storage unavailable"))
	}

	log.Error().Err(err).Msg("Internal error")
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("storageid", func(fl validator.FieldLevel) bool {
		return blob.ValidStorageID(fl.Field().String())
	})
	registerRequestRules(v)
	return v
}

const (
	jobStatusRule     = "required,oneof=full-time part-time contract internship"
	productStatusRule = "omitempty,oneof=visible hidden"
)

// registerRequestRules attaches validation rules to the generated request
// messages, keyed by Go field name.
func registerRequestRules(v *validator.Validate) {
	v.RegisterStructValidationMapRules(map[string]string{"Id": "required,uuid"},
		&v1.GetProductRequest{}, &v1.RemoveProductRequest{},
		&v1.GetCareerRequest{}, &v1.RemoveCareerRequest{},
		&v1.GetCertificationRequest{}, &v1.RemoveCertificationRequest{},
		&v1.RemoveHomeBannerRequest{},
	)
	v.RegisterStructValidationMapRules(map[string]string{"OrganizationId": "omitempty,uuid"},
		&v1.ListProductsRequest{}, &v1.ListCareersRequest{}, &v1.ListCertificationsRequest{},
	)
	v.RegisterStructValidationMapRules(map[string]string{"Limit": "omitempty,min=1,max=100"},
		&v1.RecentActivityRequest{}, &v1.ListActivityRequest{},
	)

	v.RegisterStructValidationMapRules(map[string]string{
		"ExternalOrgId": "required",
		"Name":          "required",
	}, &v1.SyncOrganizationRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"ExternalUserId": "required",
		"Email":          "omitempty,email",
		"FullName":       "required",
	}, &v1.SyncUserRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Name":                "required",
		"Status":              productStatusRule,
		"AttachmentStorageId": "omitempty,storageid",
		"OrganizationId":      "omitempty,uuid",
	}, &v1.CreateProductRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Id":                  "required,uuid",
		"Name":                "omitempty,min=1",
		"Status":              productStatusRule,
		"AttachmentStorageId": "omitempty,storageid",
	}, &v1.UpdateProductRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Role":           "required",
		"Department":     "required",
		"Location":       "required",
		"ReportTo":       "required",
		"JobStatus":      jobStatusRule,
		"Requirements":   "dive,required",
		"JobScope":       "dive,required",
		"OrganizationId": "omitempty,uuid",
	}, &v1.CreateCareerRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Id":        "required,uuid",
		"JobStatus": jobStatusRule,
	}, &v1.UpdateCareerStatusRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Issuer":              "required",
		"Name":                "required",
		"Standard":            "required",
		"IssuedDate":          "required",
		"ExpiredDate":         "required",
		"AttachmentStorageId": "omitempty,storageid",
		"OrganizationId":      "omitempty,uuid",
	}, &v1.CreateCertificationRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Id":                  "required,uuid",
		"Issuer":              "omitempty,min=1",
		"Name":                "omitempty,min=1",
		"Standard":            "omitempty,min=1",
		"IssuedDate":          "omitempty,min=1",
		"ExpiredDate":         "omitempty,min=1",
		"AttachmentStorageId": "omitempty,storageid",
	}, &v1.UpdateCertificationRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Title":          "required",
		"CtaUrl":         "omitempty,uri|startswith=/",
		"StorageId":      "required,storageid",
		"OrganizationId": "omitempty,uuid",
	}, &v1.CreateHomeBannerRequest{})

	v.RegisterStructValidationMapRules(map[string]string{
		"Type":           "required",
		"Message":        "required",
		"ActorUserId":    "omitempty,uuid",
		"OrganizationId": "omitempty,uuid",
	}, &v1.LogActivityRequest{})
}

// validateRequest rejects malformed requests before any store access.
func (s *Server) validateRequest(msg any) error {
	err := s.validate.Struct(msg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(fields, "; ")))
	}
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// parseID parses an id already checked by the validator.
func parseID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func parseOptionalID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
