package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// Notes talks to the per-application notes endpoints.
type Notes struct {
	c *Client
}

type noteDTO struct {
	ID            string   `json:"id"`
	ApplicationID string   `json:"applicationId"`
	Title         string   `json:"title,omitempty"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type createNoteRequest struct {
	ApplicationID string   `json:"applicationId"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
}

func (n *Notes) ListByApplication(ctx context.Context, applicationID string) ([]domain.Note, error) {
	var dtos []noteDTO
	path := "/notes?applicationId=" + url.QueryEscape(applicationID)
	if err := n.c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(dtos))
	for _, dto := range dtos {
		notes = append(notes, fromNoteDTO(dto))
	}
	return notes, nil
}

func (n *Notes) Create(ctx context.Context, applicationID, title, content string, tags []string) (domain.Note, error) {
	req := createNoteRequest{
		ApplicationID: applicationID,
		Title:         title,
		Content:       content,
		Tags:          tags,
	}
	var dto noteDTO
	if err := n.c.doJSON(ctx, http.MethodPost, "/notes", req, &dto); err != nil {
		return domain.Note{}, err
	}
	return fromNoteDTO(dto), nil
}

func (n *Notes) Delete(ctx context.Context, noteID string) error {
	return n.c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(noteID), nil, nil)
}

func fromNoteDTO(dto noteDTO) domain.Note {
	note := domain.Note{
		ID:            dto.ID,
		ApplicationID: dto.ApplicationID,
		Title:         dto.Title,
		Content:       dto.Content,
		Tags:          dto.Tags,
	}
	if t, err := time.Parse(domain.WireTimeLayout, dto.CreatedAt); err == nil {
		note.CreatedAt = t
	}
	if t, err := time.Parse(domain.WireTimeLayout, dto.UpdatedAt); err == nil {
		note.UpdatedAt = t
	}
	return note
}
