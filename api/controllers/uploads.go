package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/responses"
	pkgerrors "github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/errors"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/storage/gcs"
)

const maxUploadBytes = 8 << 20

var uploadExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type uploadResponse struct {
	URL string `json:"url"`
}

// AdminUploadImage stores a product or banner image and returns its public
// URL. The file arrives as the "file" part of a multipart form.
func AdminUploadImage(store *gcs.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "object storage is not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "image file is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "could not read image file"))
			return
		}

		contentType := http.DetectContentType(data)
		ext, ok := uploadExtensions[contentType]
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported image type %s", contentType)))
			return
		}

		object := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)
		url, err := store.UploadObject(r.Context(), store.DefaultBucket(), object, contentType, data)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload image"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, uploadResponse{URL: url})
	}
}
