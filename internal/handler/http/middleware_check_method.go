// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers a known path reached with an unregistered method with 405.
// This handler answers 404 Not Found instead, so /update and /get/{uuid}
// look absent to callers using the wrong method.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not registered for route")

		utils.WriteText(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
