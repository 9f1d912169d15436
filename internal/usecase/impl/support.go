// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/cache"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "accounts/internal/usecase"

// Operation names reported to the OperationObserver and used as span names.
const (
	opCreate                = "account.create"
	opFindByAll             = "account.find_by_all"
	opFindByID              = "account.find_by_id"
	opFindByEmailOrUsername = "account.find_by_email_or_username"
	opActivate              = "account.activate"
	opDeactivate            = "account.deactivate"
	opAddRole               = "role.add"
	opDeleteRole            = "role.delete"
	opListAccountRoles      = "role.list_by_account"
	opListRoles             = "role.list"
	opEnsureCatalog         = "role.ensure_catalog"
)

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, error) {}

type noopPublisher struct{}

func (noopPublisher) PublishAccountEvent(context.Context, *service.AccountEvent) error { return nil }

func (noopPublisher) Close() error { return nil }

// sideEffects bundles the post-commit collaborators shared by the services.
// Failures in any of them are logged and never change the operation result.
type sideEffects struct {
	publisher service.EventPublisher
	cache     service.AccountCache
	observer  service.OperationObserver
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

func newSideEffects(
	publisher service.EventPublisher,
	accountCache service.AccountCache,
	observer service.OperationObserver,
	logger *slog.Logger,
) sideEffects {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if accountCache == nil {
		accountCache = cache.NewNoopCache()
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return sideEffects{
		publisher: publisher,
		cache:     accountCache,
		observer:  observer,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (se *sideEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, se.logger)
}

func (se *sideEffects) start(ctx context.Context, operation string) (context.Context, trace.Span) {
	return se.tracer.Start(ctx, operation)
}

// finish records the outcome of operation on the span and the observer.
func (se *sideEffects) finish(span trace.Span, operation string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, operation+" failed")
	}
	span.End()
	se.observer.ObserveOperation(operation, err)
}

func (se *sideEffects) publish(ctx context.Context, eventType service.AccountEventType, accountID string, role entity.Role) {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  accountID,
		Role:       role.String(),
		OccurredAt: se.now().UTC(),
	}

	if err := se.publisher.PublishAccountEvent(ctx, event); err != nil {
		se.log(ctx).Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.String("accountID", accountID),
			slog.Any("error", err))
	}
}

func (se *sideEffects) invalidate(ctx context.Context, accountID string) {
	if err := se.cache.Delete(ctx, accountID); err != nil {
		se.log(ctx).Warn("Failed to invalidate cached account", slog.String("accountID", accountID), slog.Any("error", err))
	}
}

// mapRepositoryError translates store sentinels into domain errors.
// Errors that already carry a domain code pass through with the added context.
func mapRepositoryError(err error, message string) error {
	var appErr domainerrors.AppError

	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateAccount):
		return domainerrors.ErrDuplicateAccount.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateRole):
		return domainerrors.ErrDuplicateRole.WrapMessage(message)
	case errors.Is(err, repository.ErrRoleNotAssigned):
		return domainerrors.ErrRoleNotAssigned.WrapMessage(message)
	case errors.Is(err, repository.ErrUnknownRole):
		return domainerrors.ErrInvalidRole.WrapMessage(message)
	case errors.Is(err, repository.ErrIDConflict):
		return errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "account id collision"), message)
	case errors.As(err, &appErr):
		return errors.Wrap(err, message)
	default:
		return errors.Wrap(domainerrors.NewDatabaseExecuteError(err, ""), message)
	}
}

// failWith wraps err under the domain error unless it already carries one.
func failWith(domainErr *domainerrors.BaseError, err error, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainErr, message+": "+err.Error())
}
