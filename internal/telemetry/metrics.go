package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/nazmedical/portal"
)

// Metrics holds all the OpenTelemetry metric instruments
type Metrics struct {
	// Content metrics
	ContentMutationsTotal metric.Int64Counter

	// Identity metrics
	IdentitySyncTotal       metric.Int64Counter
	IdentitySyncErrorsTotal metric.Int64Counter
	IdentitySyncSkipped     metric.Int64Counter
	WebhookEventsTotal      metric.Int64Counter

	// Blob metrics
	UploadsTotal      metric.Int64Counter
	UploadBytes       metric.Int64Histogram
	BlobDeletesTotal  metric.Int64Counter
	BlobDeleteErrors  metric.Int64Counter
	DefaultTenantHits metric.Int64Counter
}

var (
	once    sync.Once
	metrics *Metrics
)

// GetMetrics returns the singleton Metrics instance, initializing it if necessary
func GetMetrics() *Metrics {
	once.Do(func() {
		metrics = initMetrics()
	})
	return metrics
}

// RecordMutation counts a content mutation, e.g. ("product", "created").
func (m *Metrics) RecordMutation(ctx context.Context, entity, action string) {
	m.ContentMutationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("action", action),
	))
}

// RecordWebhookEvent counts a webhook delivery by event type and outcome.
func (m *Metrics) RecordWebhookEvent(ctx context.Context, eventType, outcome string) {
	m.WebhookEventsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", eventType),
		attribute.String("outcome", outcome),
	))
}

// initMetrics creates and registers all metric instruments
func initMetrics() *Metrics {
	meter := otel.GetMeterProvider().Meter(meterName)

	m := &Metrics{}

	m.ContentMutationsTotal, _ = meter.Int64Counter(
		"naz.content.mutations.total",
		metric.WithDescription("Total number of content create, update and delete operations"),
		metric.WithUnit("{mutation}"),
	)

	m.IdentitySyncTotal, _ = meter.Int64Counter(
		"naz.identity.sync.total",
		metric.WithDescription("Total number of identity reconciliations run"),
		metric.WithUnit("{sync}"),
	)

	m.IdentitySyncErrorsTotal, _ = meter.Int64Counter(
		"naz.identity.sync.errors.total",
		metric.WithDescription("Total number of failed identity reconciliations"),
		metric.WithUnit("{error}"),
	)

	m.IdentitySyncSkipped, _ = meter.Int64Counter(
		"naz.identity.sync.skipped.total",
		metric.WithDescription("Total number of identity observations skipped as unchanged"),
		metric.WithUnit("{sync}"),
	)

	m.WebhookEventsTotal, _ = meter.Int64Counter(
		"naz.webhook.events.total",
		metric.WithDescription("Total number of identity provider webhook events received"),
		metric.WithUnit("{event}"),
	)

	m.UploadsTotal, _ = meter.Int64Counter(
		"naz.blob.uploads.total",
		metric.WithDescription("Total number of upload URLs issued"),
		metric.WithUnit("{upload}"),
	)

	m.UploadBytes, _ = meter.Int64Histogram(
		"naz.blob.upload.size",
		metric.WithDescription("Size of uploaded blobs"),
		metric.WithUnit("By"),
	)

	m.BlobDeletesTotal, _ = meter.Int64Counter(
		"naz.blob.deletes.total",
		metric.WithDescription("Total number of blobs deleted"),
		metric.WithUnit("{blob}"),
	)

	m.BlobDeleteErrors, _ = meter.Int64Counter(
		"naz.blob.delete.errors.total",
		metric.WithDescription("Total number of failed blob deletions"),
		metric.WithUnit("{error}"),
	)

	m.DefaultTenantHits, _ = meter.Int64Counter(
		"naz.tenant.default_fallback.total",
		metric.WithDescription("Total number of records assigned to the default organization"),
		metric.WithUnit("{record}"),
	)

	return m
}
