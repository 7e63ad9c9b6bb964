package media

import (
	"errors"

	xerrors "catalog-service/internal/pkg/errors"
)

// ClientError maps a Read/Inspect failure to the 400 shown to the uploader.
// Errors from Upload or Destroy are not client errors and map to a 500.
func ClientError(err error) error {
	switch {
	case errors.Is(err, ErrEmpty):
		return xerrors.Validation(xerrors.CodeInvalidImage, "No se recibió ninguna imagen")
	case errors.Is(err, ErrTooLarge):
		return xerrors.Validation(xerrors.CodeInvalidImage, "La imagen supera el tamaño máximo de 5 MB")
	case errors.Is(err, ErrUnsupported):
		return xerrors.Validation(xerrors.CodeInvalidImage, "Tipo de archivo no permitido. Solo se aceptan imágenes (JPEG, PNG, GIF, WebP).")
	case errors.Is(err, ErrNotConfigured):
		return xerrors.Upstream("Servicio de imágenes no disponible", err)
	}
	return xerrors.Upstream("Error al subir la imagen", err)
}
