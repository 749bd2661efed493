package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/pkg/errors"
	"github.com/excursion-service/internal/pkg/utils"
	"github.com/excursion-service/internal/usecase"
)

// UploadHandler - обработчик загрузки фотографий
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

// NewUploadHandler - создание нового UploadHandler
func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// UploadPhotos godoc
// @Summary Загрузка фотографий маршрута
// @Description Принимает multipart-форму с полем photos; возвращает публичные пути сохранённых файлов
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/admin/uploads/photos [post]
func (h *UploadHandler) UploadPhotos(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return utils.SendError(c, errors.ErrEmptyFile)
	}

	paths, err := h.uploadUC.SavePhotos(c.Context(), files)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"file_paths": paths,
	}, &utils.Meta{
		Total: len(paths),
	})
}
