package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cookie-relay/internal/crypto"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/internal/store"
	"github.com/MKhiriev/cookie-relay/internal/utils"
)

const (
	bodyStoreNotConfigured = "Internal Server Error: KV not configured"
	bodyInternalError      = "Internal Serverless Error"
)

type errorStatus struct {
	status int
	body   string
}

// errorStatusMap is matched in order, first hit wins.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{service.ErrBadRequest, errorStatus{http.StatusBadRequest, http.StatusText(http.StatusBadRequest)}},
	{store.ErrRecordNotFound, errorStatus{http.StatusNotFound, http.StatusText(http.StatusNotFound)}},
	{service.ErrStoreUnavailable, errorStatus{http.StatusInternalServerError, bodyStoreNotConfigured}},
	{store.ErrStoreUnavailable, errorStatus{http.StatusInternalServerError, bodyStoreNotConfigured}},
	{crypto.ErrDecryption, errorStatus{http.StatusInternalServerError, bodyInternalError}},
}

func statusFromError(err error) errorStatus {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorStatus
		}
	}
	return errorStatus{http.StatusInternalServerError, bodyInternalError}
}

func writeError(w http.ResponseWriter, err error) {
	s := statusFromError(err)
	utils.WriteText(w, s.body, s.status)
}
