package impl

import (
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/service"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
)

func clockOrSystem(clock service.Clock) service.Clock {
	if clock == nil {
		return service.SystemClock{}
	}

	return clock
}

// mapUserLookupError turns the repository sentinel into the domain not-found error.
func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	}

	return errors.Wrap(err, "failed to find user")
}

// validateScope rejects a scope that could not have come from a verified user token.
func validateScope(scope tenant.Scope) error {
	if err := scope.Validate(); err != nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	return nil
}
