// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/service"
	"github.com/MKhiriev/cookie-relay/internal/utils"
	"github.com/MKhiriev/cookie-relay/models"
)

const (
	uuidURLParam         = "uuid"
	cryptoTypeQueryParam = "crypto_type"
)

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, err := parseRequestFields(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.update").Msg("request body could not be parsed, continuing with empty fields")
	}

	err = h.services.RelayService.Update(r.Context(), models.UpdateRequest{
		UUID:       fields.UUID,
		Encrypted:  fields.Encrypted,
		CryptoType: fields.CryptoType,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Str("uuid", fields.UUID).Msg("error updating record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ActionResponse{Action: models.ActionDone}, http.StatusOK)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.RequestFields
	if r.Header.Get("Content-Type") != "" {
		var err error
		if fields, err = parseRequestFields(r); err != nil {
			log.Debug().Err(err).Str("func", "*Handler.get").Msg("request body could not be parsed, continuing with empty fields")
		}
	}

	id, err := recordID(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.get").Msg("record identifier could not be unescaped")
		writeError(w, err)
		return
	}

	req := models.GetRequest{
		UUID:               id,
		CryptoTypeOverride: r.URL.Query().Get(cryptoTypeQueryParam),
		Password:           fields.Password,
	}

	if req.Password == "" {
		record, err := h.services.RelayService.Get(r.Context(), req)
		if err != nil {
			log.Err(err).Str("func", "*Handler.get").Str("uuid", req.UUID).Msg("error getting record")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, record, http.StatusOK)
		return
	}

	payload, err := h.services.RelayService.GetDecrypted(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.get").Str("uuid", req.UUID).Str("crypto_type", req.CryptoTypeOverride).Msg("error getting decrypted record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}

// recordID returns the decoded {uuid} segment. chi matches on the raw path
// when the request carries escaped bytes such as %2F, so the segment is
// unescaped only in that case.
func recordID(r *http.Request) (string, error) {
	id := chi.URLParam(r, uuidURLParam)
	if r.URL.RawPath == "" {
		return id, nil
	}

	decoded, err := url.PathUnescape(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrBadRequest, err)
	}
	return decoded, nil
}
