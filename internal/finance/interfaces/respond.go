package interfaces

import (
	"net/http"

	financeErrors "github.com/mkarwowski/budgetly/internal/finance/errors"
	"github.com/sirupsen/logrus"
)

// respondServiceError translates a service failure into the public contract.
// Authorization failures deliberately answer with the same 404 as missing
// records so callers cannot probe for other users' record ids; the internal
// distinction stays in the log.
func respondServiceError(
	logger *logrus.Logger,
	respondError func(w http.ResponseWriter, status int, message string),
	w http.ResponseWriter,
	err error,
	fallback string,
) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, "Resource not found")
	case financeErrors.IsAuthorizationError(err):
		logger.WithField("reason", err.Error()).Warn("cross-user access rejected")
		respondError(w, http.StatusNotFound, "Resource not found")
	case financeErrors.IsStorageError(err):
		logger.WithError(err).Error("storage failure")
		respondError(w, http.StatusInternalServerError, fallback)
	default:
		logger.WithError(err).Error(fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
