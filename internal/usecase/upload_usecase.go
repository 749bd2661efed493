package usecase

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/pkg/errors"
)

// UploadUseCase сохраняет загруженные фотографии в каталог медиафайлов.
// Файл получает имя uuid с исходным расширением, клиенту возвращается
// публичный путь.
type UploadUseCase struct {
	mediaDir  string
	publicURL string
	logger    *zap.Logger
}

func NewUploadUseCase(mediaDir, publicURL string, logger *zap.Logger) *UploadUseCase {
	return &UploadUseCase{
		mediaDir:  mediaDir,
		publicURL: publicURL,
		logger:    logger,
	}
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SavePhoto сохраняет один файл и возвращает его публичный путь
func (uc *UploadUseCase) SavePhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", errors.ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", errors.ErrInvalidRequest.WithDetails("недопустимый формат файла: " + ext)
	}

	if err := os.MkdirAll(uc.mediaDir, 0o755); err != nil {
		uc.logger.Error("Failed to create media dir", zap.String("dir", uc.mediaDir), zap.Error(err))
		return "", errors.ErrInternalServer
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(uc.mediaDir, name)

	src, err := file.Open()
	if err != nil {
		uc.logger.Error("Failed to open uploaded file", zap.Error(err))
		return "", errors.ErrInternalServer
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		uc.logger.Error("Failed to create media file", zap.String("path", dst), zap.Error(err))
		return "", errors.ErrInternalServer
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		uc.logger.Error("Failed to write media file", zap.String("path", dst), zap.Error(err))
		os.Remove(dst)
		return "", errors.ErrInternalServer
	}

	uc.logger.Debug("Photo saved", zap.String("file", name), zap.Int64("size", file.Size))
	return uc.publicURL + "/" + name, nil
}

// SavePhotos сохраняет пачку файлов; при ошибке уже сохранённые
// файлы остаются
func (uc *UploadUseCase) SavePhotos(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.ErrEmptyFile
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := uc.SavePhoto(ctx, f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
