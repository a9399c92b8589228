package echo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	app "github.com/rafaelmp/employee-import/internal/application/employee"
)

// maxUploadBytes caps an uploaded CSV at 2 MiB.
const maxUploadBytes = 2 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type uploadStore interface {
	Store(ctx context.Context, name string, src io.Reader) (string, error)
}

type ImportHandler struct {
	useCase app.StartImport
	uploads uploadStore
}

func NewImportHandler(useCase app.StartImport, uploads uploadStore) *ImportHandler {
	return &ImportHandler{useCase: useCase, uploads: uploads}
}

// UploadCSV accepts a multipart CSV upload, stores it under the import
// base dir, and enqueues the processing job. The caller only ever learns
// that the file was accepted; the outcome arrives by notification.
func (h *ImportHandler) UploadCSV(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
			Code:    "unauthorized",
			Message: "authentication required",
		}})
	}

	header, err := c.FormFile("csv_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "csv_file is required",
		}})
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".txt" {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_file",
			Message: "csv_file must be a .csv or .txt file",
		}})
	}
	if header.Size > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_file",
			Message: "csv_file must not exceed 2MB",
		}})
	}

	src, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to read upload",
		}})
	}
	defer src.Close()

	storedName := uuid.NewString() + "_" + filepath.Base(header.Filename)
	sourcePath, err := h.uploads.Store(c.Request().Context(), storedName, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to store upload",
		}})
	}

	out, err := h.useCase.Execute(c.Request().Context(), app.StartImportInput{
		ManagerID:  m.ID,
		SourcePath: sourcePath,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidImportSource) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_source",
				Message: "upload could not be enqueued",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to enqueue import job",
		}})
	}

	return c.JSON(http.StatusAccepted, apiResponse{
		Data:    out,
		Message: "The file will be processed. Check the /employees later",
	})
}
