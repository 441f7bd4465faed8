package api

import (
	"net/http"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type GenerateUploadLinkRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

func GenerateUploadLinkHandler(svc port.UploadLinkGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateUploadLinkRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		out, err := svc.GenerateUploadLink(r.Context(), port.GenerateUploadLinkInput{Name: req.Name})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not generate upload link", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully generated upload link for media #%s", out.ID)
	}
}

func FinaliseUploadHandler(svc port.UploadFinaliser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		media, err := svc.FinaliseUpload(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, "could not finalise upload of media #"+id.String(), err)
			return
		}

		RespondJSON(w, http.StatusOK, media)
		logger.Infof(r.Context(), "✅  Successfully finalised upload of media #%s", id)
	}
}

func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteMedia(r.Context(), id); err != nil {
			writeUsecaseError(w, "could not delete media #"+id.String(), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted media #%s", id)
	}
}
