package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, pdfMagic)
	return data
}

func TestAttachFile_AcceptsValidPDF(t *testing.T) {
	d := NewDraft()

	err := d.AttachFile("/home/me/docs/resume.pdf", pdfBytes(1024))

	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", d.FileName(), "path must be reduced to the base name")
	assert.True(t, d.HasAttachment())
}

func TestAttachFile_CaseInsensitiveExtension(t *testing.T) {
	d := NewDraft()
	assert.NoError(t, d.AttachFile("Resume.PDF", pdfBytes(64)))
}

func TestAttachFile_RejectsEmptyFile(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.AttachFile("resume.pdf", nil), ErrFileEmpty)
	assert.False(t, d.HasAttachment())
}

func TestAttachFile_RejectsOversizedFile(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.AttachFile("resume.pdf", pdfBytes(MaxResumeSize+1)), ErrFileTooLarge)
}

func TestAttachFile_AcceptsExactLimit(t *testing.T) {
	d := NewDraft()
	assert.NoError(t, d.AttachFile("resume.pdf", pdfBytes(MaxResumeSize)))
}

func TestAttachFile_RejectsWrongExtension(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.AttachFile("resume.docx", pdfBytes(64)), ErrFileNotPDF)
}

func TestAttachFile_RejectsWrongMagicBytes(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.AttachFile("resume.pdf", []byte("PK\x03\x04 not a pdf")), ErrFileNotPDF)
}

func TestAttachFile_RejectionKeepsPriorAttachment(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AttachFile("first.pdf", pdfBytes(64)))

	assert.Error(t, d.AttachFile("second.txt", []byte("notes")))

	assert.Equal(t, "first.pdf", d.FileName())
}

func TestPageCount_GarbageInputErrors(t *testing.T) {
	_, err := PageCount([]byte("%PDF-1.4 but nothing else"))
	assert.Error(t, err)

	_, err = PageCount(nil)
	assert.Error(t, err)
}
