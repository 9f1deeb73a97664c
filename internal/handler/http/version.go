package http

import (
	"net/http"

	"github.com/MKhiriev/cookie-relay/internal/utils"
)

const helloWorld = "Hello World!"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, helloWorld, http.StatusOK)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
