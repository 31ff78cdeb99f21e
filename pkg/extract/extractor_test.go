package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	err := os.WriteFile(path, []byte("Photosynthesis converts light into energy."), 0644)
	assert.NoError(t, err)

	got := Text(path, MimeText)
	assert.Equal(t, "Photosynthesis converts light into energy.", got)
}

func TestText_MissingFileReturnsEmpty(t *testing.T) {
	got := Text(filepath.Join(t.TempDir(), "missing.txt"), MimeText)
	assert.Empty(t, got)
}

func TestText_DocxReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.docx")
	err := os.WriteFile(path, []byte("not a real docx"), 0644)
	assert.NoError(t, err)

	assert.Empty(t, Text(path, MimeDocx))
}

func TestText_MalformedPdfReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	err := os.WriteFile(path, []byte("%PDF-1.4 garbage"), 0644)
	assert.NoError(t, err)

	assert.Empty(t, Text(path, MimePdf))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.bin")
	err := os.WriteFile(path, []byte("data"), 0644)
	assert.NoError(t, err)

	assert.NoError(t, DeleteFile(path))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// deleting again is a no-op
	assert.NoError(t, DeleteFile(path))
}
