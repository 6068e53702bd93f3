package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrPermissionDenied: http.StatusForbidden,

	service.ErrValidationNoContactID:   http.StatusBadRequest,
	service.ErrValidationNoContactData: http.StatusBadRequest,
	service.ErrValidationNoGroupID:     http.StatusBadRequest,
	service.ErrValidationNoGroupName:   http.StatusBadRequest,
	service.ErrValidationNegativePage:  http.StatusBadRequest,

	validators.ErrEmptyEmailValue:    http.StatusBadRequest,
	validators.ErrEmptyPhoneValue:    http.StatusBadRequest,
	validators.ErrEmptyURLValue:      http.StatusBadRequest,
	validators.ErrEmptyPostalAddress: http.StatusBadRequest,

	store.ErrContactNotFound: http.StatusNotFound,
	store.ErrGroupNotFound:   http.StatusNotFound,

	store.ErrEmptyBatchResult:        http.StatusInternalServerError,
	store.ErrBackReferenceOutOfRange: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrBeginningTransaction:    http.StatusInternalServerError,
	store.ErrCommitingTransaction:    http.StatusInternalServerError,
	store.ErrScanningRow:             http.StatusInternalServerError,
	store.ErrScanningRows:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
