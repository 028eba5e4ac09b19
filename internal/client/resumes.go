package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// Resumes talks to the resume blob endpoints. Constraint checking (PDF only,
// ≤5 MiB, non-empty) happens at file-selection time in the form package; the
// backend re-validates on upload.
type Resumes struct {
	c *Client
}

type resumeDTO struct {
	FileID     string `json:"fileId"`
	FileName   string `json:"fileName"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

// Upload sends the file as multipart form data and returns the opaque
// reference the store issued for it.
func (r *Resumes) Upload(ctx context.Context, fileName string, data []byte) (domain.ResumeInfo, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.c.baseURL+"/resumes", &buf)
	if err != nil {
		return domain.ResumeInfo{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var dto resumeDTO
	if err := r.c.send(req, &dto); err != nil {
		return domain.ResumeInfo{}, err
	}
	return fromResumeDTO(dto), nil
}

// Download fetches the raw blob for a stored resume.
func (r *Resumes) Download(ctx context.Context, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.c.baseURL+"/resumes/"+url.PathEscape(fileID), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if r.c.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.c.token)
	}
	resp, err := r.c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download resume: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}
	return io.ReadAll(resp.Body)
}

func (r *Resumes) Delete(ctx context.Context, fileID string) error {
	return r.c.doJSON(ctx, http.MethodDelete, "/resumes/"+url.PathEscape(fileID), nil, nil)
}

// List returns every resume the current user has stored.
func (r *Resumes) List(ctx context.Context) ([]domain.ResumeInfo, error) {
	var dtos []resumeDTO
	if err := r.c.doJSON(ctx, http.MethodGet, "/resumes", nil, &dtos); err != nil {
		return nil, err
	}
	infos := make([]domain.ResumeInfo, 0, len(dtos))
	for _, dto := range dtos {
		infos = append(infos, fromResumeDTO(dto))
	}
	return infos, nil
}

func fromResumeDTO(dto resumeDTO) domain.ResumeInfo {
	info := domain.ResumeInfo{FileID: dto.FileID, FileName: dto.FileName}
	if t, err := time.Parse(domain.WireTimeLayout, dto.UploadedAt); err == nil {
		info.UploadedAt = t
	}
	return info
}
