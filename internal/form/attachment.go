package form

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxResumeSize is the resume store's upload limit.
const MaxResumeSize = 5 << 20 // 5 MiB

var pdfMagic = []byte("%PDF-")

// Attachment is an in-memory file payload staged for upload.
type Attachment struct {
	FileName string
	Data     []byte
}

// Attachment-constraint errors are reported at selection time and block the
// attachment only — the rest of the draft stays valid and submittable.
var (
	ErrFileEmpty    = errors.New("file is empty")
	ErrFileTooLarge = fmt.Errorf("file size must be less than %d MiB", MaxResumeSize>>20)
	ErrFileNotPDF   = errors.New("only PDF files are supported")
)

// AttachFile stages a resume for upload, enforcing the resume store's
// constraints immediately: PDF only, at most 5 MiB, non-empty.
func (d *Draft) AttachFile(name string, data []byte) error {
	if d.submitting.Load() {
		return ErrSubmitInFlight
	}
	if len(data) == 0 {
		return ErrFileEmpty
	}
	if len(data) > MaxResumeSize {
		return ErrFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") || !bytes.HasPrefix(data, pdfMagic) {
		return ErrFileNotPDF
	}
	d.pending = &Attachment{FileName: filepath.Base(name), Data: data}
	d.removeStored = false
	return nil
}

// PageCount probes how many pages a staged PDF has, for display next to the
// file name. Advisory only: a resume the probe cannot read is still
// attachable.
func PageCount(data []byte) (n int, err error) {
	// pdf.NewReader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	return reader.NumPage(), nil
}
