// FILE: internal/service/document_service_test.go
package service

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"ai-curriculum-be/internal/constant"
	"ai-curriculum-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Upload validates type and size before touching storage or the database,
// so these cases run without either.

func TestDocumentUpload_RejectsInvalidFileType(t *testing.T) {
	svc := NewDocumentService(nil, t.TempDir(), nil)

	file := &multipart.FileHeader{
		Filename: "notes.csv",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": {"text/csv"}},
	}

	_, err := svc.Upload(context.Background(), uuid.New(), uuid.New(), file)
	assert.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid file type. Only PDF, DOCX, and TXT files are allowed.", appErr.Message)
	}
}

func TestDocumentUpload_RejectsOversizedFile(t *testing.T) {
	svc := NewDocumentService(nil, t.TempDir(), nil)

	file := &multipart.FileHeader{
		Filename: "big.pdf",
		Size:     constant.MaxFileSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": {constant.MimePdf}},
	}

	_, err := svc.Upload(context.Background(), uuid.New(), uuid.New(), file)
	assert.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	if assert.True(t, ok) {
		assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
		assert.Equal(t, "File too large (max 10MB)", appErr.Message)
	}
}
