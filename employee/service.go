package employee

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/handsoncoder/employee-producer/errors"
	"github.com/handsoncoder/employee-producer/logger"
	"github.com/handsoncoder/employee-producer/observability"
	"github.com/handsoncoder/employee-producer/resilience"
)

const guardName = "employee-lookup"

// Directory supplies the records degraded copies are built from.
type Directory interface {
	Lookup(name string) (Employee, bool)
}

// Result is an employee together with how it was obtained.
type Result struct {
	Employee Employee
	// Degraded is true when the fallback copy was served.
	Degraded bool
}

// Service looks employees up through a resilience.Guard.
type Service struct {
	source      Source
	directory   Directory
	defaultName string
	guardConfig resilience.GuardConfig
	log         *logger.Logger
}

// NewService creates a service that fetches from source and falls back to
// degraded copies of the records in directory. A nil log uses the global logger.
func NewService(source Source, directory Directory, defaultName string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("employee")
	return &Service{
		source:      source,
		directory:   directory,
		defaultName: defaultName,
		log:         log,
		guardConfig: resilience.GuardConfig{
			Name: guardName,
			OnTransition: func(name string, from, to resilience.Phase) {
				log.Debug("Guard transition", logger.Fields(
					logger.FieldGuard, name,
					"from", from.String(),
					logger.FieldPhase, to.String(),
				))
			},
		},
	}
}

// Default returns the configured default employee.
func (s *Service) Default(ctx context.Context) (Result, error) {
	return s.Get(ctx, s.defaultName)
}

// Get returns the employee named name. A failed primary fetch is never
// returned; the degraded copy is served instead. An error is returned only
// when no degraded copy can be built either.
func (s *Service) Get(ctx context.Context, name string) (Result, error) {
	// The guard is rebuilt per call so its failure hook can record this
	// call's primary error, including a recovered panic.
	var primaryErr error
	cfg := s.guardConfig
	cfg.OnPrimaryFailure = func(_ string, err error) { primaryErr = err }
	guard := resilience.NewGuard[Employee](cfg)

	ctx, span := observability.StartSpan(ctx, "employee.get")
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrEmployeeName, name),
		attribute.String(observability.AttrGuard, guard.Name()),
	)

	log := s.log.WithContext(ctx)
	degraded := false

	emp, err := guard.Execute(
		func() (Employee, error) {
			return s.source.Fetch(ctx, name)
		},
		func() (Employee, error) {
			degraded = true
			e, ok := s.directory.Lookup(name)
			if !ok {
				return Employee{}, errors.NotFound(resourceEmployee, name)
			}
			return Degraded(e), nil
		},
	)

	span.SetAttributes(attribute.Bool(observability.AttrDegraded, degraded))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("Employee lookup failed", logger.ErrorFields("employee.get", err), logger.Fields(logger.FieldEmployee, name))
		return Result{}, err
	}

	if degraded {
		fields := logger.Fields(logger.FieldEmployee, name, logger.FieldOperation, "employee.get")
		if primaryErr != nil {
			fields[logger.FieldError] = primaryErr.Error()
		}
		log.Warn("Serving fallback employee", fields)
	} else {
		log.Debug("Serving employee", logger.Fields(logger.FieldEmployee, name))
	}
	return Result{Employee: emp, Degraded: degraded}, nil
}
