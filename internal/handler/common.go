// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fathomcrm/fathom/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error string  `json:"error"`
	Code  *string `json:"error_code,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps a classified or sentinel error onto an HTTP
// status with its machine-checkable code in the body.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		code := string(derr.Kind)
		respondWithJSON(w, statusForKind(derr.Kind), ErrorResponse{
			Error: derr.Message,
			Code:  &code,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrOwnerCannotLeave),
		errors.Is(err, domain.ErrNotADowngrade):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrPlanNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindNotAMember, domain.KindInsufficientRole:
		return http.StatusForbidden
	case domain.KindNoActivePlan, domain.KindPlanExpired, domain.KindPlanNotActive,
		domain.KindPaymentIncomplete, domain.KindInsufficientPlan, domain.KindQuotaExceeded:
		return http.StatusPaymentRequired
	case domain.KindStoreError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// orgIDFromRequest parses the {orgID} route parameter.
func orgIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "orgID"))
}
