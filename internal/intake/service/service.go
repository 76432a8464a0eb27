// Package service orchestrates the rules engine over application snapshots:
// step validation, recap assembly, and the submission gate.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"golang.org/x/sync/errgroup"

	"llm-intake/internal/intake/models"
	"llm-intake/internal/intake/rules"
	"llm-intake/internal/platform/metrics"
	"llm-intake/internal/platform/tracing"
	dErrors "llm-intake/pkg/domain-errors"
)

// Store defines the persistence interface for submitted applications.
// Error Contract:
// - FindByReference returns a CodeNotFound domain error when nothing matches
// - Save returns a CodeConflict domain error on a duplicate reference
type Store interface {
	Save(ctx context.Context, app models.Application) error
	FindByReference(ctx context.Context, ref string) (models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
	Count(ctx context.Context) (int, error)
}

type Option func(*Service)

// Service evaluates snapshots and accepts submissions.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracing.Tracer
	now     func() time.Time
}

func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		logger: logger,
		tracer: tracing.NewNoop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for span emission.
func WithTracer(t tracing.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithClock injects the wall clock. Age and expiry rules depend on "now", so
// tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// EvaluateStep validates one wizard step against the snapshot.
func (s *Service) EvaluateStep(ctx context.Context, step models.Step, snap models.Snapshot) (models.StepResult, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanValidateStep, tracing.String(tracing.AttrStep, string(step)))
	if !snap.Type.IsValid() {
		err := dErrors.New(dErrors.CodeBadRequest, "invalid application type")
		span.End(err)
		return models.StepResult{}, err
	}

	res := rules.ValidateStep(step, snap, s.now())
	span.SetAttributes(tracing.Bool(tracing.AttrValid, res.Valid))
	span.End(nil)

	if s.metrics != nil {
		s.metrics.ValidationsRun.WithLabelValues(string(step)).Inc()
		if !res.Valid {
			s.metrics.ValidationsFailed.WithLabelValues(string(step)).Inc()
		}
	}
	return res, nil
}

// Summary derives the household head counts and the room allowance.
func (s *Service) Summary(ctx context.Context, snap models.Snapshot) (models.HouseholdSummary, error) {
	_, span := s.tracer.Start(ctx, tracing.SpanSummary)
	sum := rules.Summarize(snap, s.now())
	span.SetAttributes(tracing.Float64(tracing.AttrMaxRooms, sum.MaxRooms))
	span.End(nil)
	return sum, nil
}

// Recap assembles the full pre-submission review. The independent scans run
// concurrently; each one is a pure function over the snapshot.
func (s *Service) Recap(ctx context.Context, snap models.Snapshot) (models.Recap, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanRecap)
	start := s.now()
	now := start

	var (
		steps    []models.StepResult
		docs     rules.DocumentReport
		taxation []models.TaxationLine
		critical models.CriticalResult
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		steps = rules.ValidateAll(snap, now)
		return nil
	})
	g.Go(func() error {
		docs = rules.BuildMissingDocs(snap, now)
		return nil
	})
	g.Go(func() error {
		taxation = rules.TaxationLines(snap, now)
		return nil
	})
	g.Go(func() error {
		critical = rules.RunCriticalValidations(snap, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		span.End(err)
		return models.Recap{}, err
	}

	recap := models.Recap{
		Steps:     steps,
		Household: rules.Summarize(snap, now),
		Taxation:  taxation,
		Missing:   docs.Missing,
		Deferred:  docs.Deferred,
		Permit:      docs.Notice,
		Critical:    critical,
		FieldErrors: rules.FieldErrors(snap),
		CanSubmit:   rules.CanSubmit(snap, now),
	}

	if s.metrics != nil {
		s.metrics.RecapLatency.Observe(time.Since(start).Seconds())
		if recap.Permit.Notice {
			s.metrics.PermitNoticesRaised.Inc()
		}
	}
	span.SetAttributes(
		tracing.Int(tracing.AttrRefusals, len(critical.Refusals)),
		tracing.Bool(tracing.AttrValid, recap.CanSubmit),
	)
	span.End(nil)
	return recap, nil
}

// SubmitRequest carries the snapshot plus the submitting client's context.
type SubmitRequest struct {
	Snapshot  models.Snapshot
	UserAgent string
	RemoteIP  string
}

// Submit runs the refusal gate and, when the snapshot passes every check,
// stores the application and returns its receipt.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (models.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanSubmit)
	now := s.now()
	snap := req.Snapshot

	critical := rules.RunCriticalValidations(snap, now)
	if critical.Refused() {
		if s.metrics != nil {
			for _, r := range critical.Refusals {
				s.metrics.SubmissionsRefused.WithLabelValues(r.Code).Inc()
			}
		}
		err := dErrors.New(dErrors.CodeRefused, critical.Refusals[0].Message)
		s.logger.WarnContext(ctx, "submission refused",
			"refusals", len(critical.Refusals),
			"first_code", critical.Refusals[0].Code,
		)
		span.End(err)
		return models.Receipt{}, err
	}

	if !rules.CanSubmit(snap, now) {
		err := dErrors.New(dErrors.CodePolicyViolation, "blocking validations or documents remain")
		span.End(err)
		return models.Receipt{}, err
	}

	recap, err := s.Recap(ctx, snap)
	if err != nil {
		span.End(err)
		return models.Receipt{}, err
	}

	receipt := models.Receipt{
		Reference:   rules.NewReference(now),
		SubmittedAt: now,
		Deferred:    recap.Deferred,
		Client:      clientInfo(req),
	}
	app := models.Application{
		ID:          uuid.NewString(),
		Reference:   receipt.Reference,
		Snapshot:    snap,
		Recap:       recap,
		Receipt:     receipt,
		SubmittedAt: now,
	}
	if err := s.store.Save(ctx, app); err != nil {
		span.End(err)
		return models.Receipt{}, dErrors.Wrap(err, dErrors.CodeInternal, "storing application")
	}

	if s.metrics != nil {
		s.metrics.SubmissionsAccepted.Inc()
		s.metrics.DeferredDocsRecorded.Add(float64(len(recap.Deferred)))
		if n, err := s.store.Count(ctx); err == nil {
			s.metrics.StoredApplications.Set(float64(n))
		}
	}
	s.logger.InfoContext(ctx, "application submitted",
		"reference", receipt.Reference,
		"members", len(snap.Members),
		"deferred_docs", len(recap.Deferred),
	)
	span.SetAttributes(tracing.String(tracing.AttrReference, receipt.Reference))
	span.End(nil)
	return receipt, nil
}

// GetByReference returns a stored application for back-office review.
func (s *Service) GetByReference(ctx context.Context, ref string) (models.Application, error) {
	if ref == "" {
		return models.Application{}, dErrors.New(dErrors.CodeBadRequest, "reference must not be empty")
	}
	return s.store.FindByReference(ctx, ref)
}

// ListApplications returns every stored application, newest first.
func (s *Service) ListApplications(ctx context.Context) ([]models.Application, error) {
	return s.store.List(ctx)
}

func clientInfo(req SubmitRequest) models.ClientInfo {
	info := models.ClientInfo{RemoteIP: req.RemoteIP}
	if req.UserAgent == "" {
		return info
	}
	ua := useragent.New(req.UserAgent)
	name, version := ua.Browser()
	if name != "" {
		info.Browser = name + " " + version
	}
	info.OS = ua.OS()
	info.Mobile = ua.Mobile()
	return info
}
