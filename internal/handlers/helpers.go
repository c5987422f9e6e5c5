// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"

	"knowledge_keep/internal/model"
	"knowledge_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateStruct はDTOのバリデーションを行い、失敗時は最初のエラーを
// 代表として AppError に変換します。
func validateStruct(logger *slog.Logger, req interface{}) error {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
		}
		// バリデーションライブラリ自体のエラーなど、予期せぬエラー
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		return err
	}
	return nil
}
