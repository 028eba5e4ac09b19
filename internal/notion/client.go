// Package notion mirrors the tracked applications into a Notion database,
// one page per application.
package notion

import (
	"context"
	"fmt"

	gnt "github.com/dstotijn/go-notion"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

type Client struct {
	api        *gnt.Client
	databaseID string
}

func New(token, databaseID string) *Client {
	return &Client{
		api:        gnt.NewClient(token),
		databaseID: databaseID,
	}
}

// Ping runs a tiny QueryDatabase to check the target DB is reachable before
// an export starts.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.QueryDatabase(ctx, c.databaseID, &gnt.DatabaseQuery{
		PageSize: 1,
	})
	return err
}

// helper: build a valid Notion rich_text slice from a plain string.
func richText(s string) []gnt.RichText {
	if s == "" {
		return nil
	}
	return []gnt.RichText{
		{
			Text: &gnt.Text{
				Content: s,
			},
		},
	}
}

func buildApplicationPageProperties(rec domain.ApplicationRecord) gnt.DatabasePageProperties {
	props := gnt.DatabasePageProperties{}

	// Position — Title (required title property)
	if rec.Position != "" {
		props["Position"] = gnt.DatabasePageProperty{
			Title: richText(rec.Position),
		}
	}

	if rec.Company != "" {
		props["Company"] = gnt.DatabasePageProperty{
			RichText: richText(rec.Company),
		}
	}

	if rec.Location != "" {
		props["Location"] = gnt.DatabasePageProperty{
			RichText: richText(rec.Location),
		}
	}

	if rec.CompanyURL != "" {
		url := rec.CompanyURL
		props["Company URL"] = gnt.DatabasePageProperty{
			URL: &url,
		}
	}

	// Status — Select, using the UI label rather than the wire code.
	props["Status"] = gnt.DatabasePageProperty{
		Select: &gnt.SelectOptions{
			Name: rec.Status.Label(),
		},
	}

	if !rec.DateApplied.IsZero() {
		dt := gnt.NewDateTime(rec.DateApplied, true)
		props["Applied"] = gnt.DatabasePageProperty{
			Date: &gnt.Date{
				Start: dt,
			},
		}
	}

	if rec.InterviewTime != nil {
		dt := gnt.NewDateTime(*rec.InterviewTime, true)
		props["Next Interview"] = gnt.DatabasePageProperty{
			Date: &gnt.Date{
				Start: dt,
			},
		}
	}

	if rec.Notes != "" {
		props["Notes"] = gnt.DatabasePageProperty{
			RichText: richText(rec.Notes),
		}
	}

	if rec.CVFileName != "" {
		props["Resume"] = gnt.DatabasePageProperty{
			RichText: richText(rec.CVFileName),
		}
	}

	return props
}

// CreateApplicationPage creates one row in the target database and returns
// the new page ID.
func (c *Client) CreateApplicationPage(ctx context.Context, rec domain.ApplicationRecord) (string, error) {
	props := buildApplicationPageProperties(rec)

	params := gnt.CreatePageParams{
		ParentType:             gnt.ParentTypeDatabase,
		ParentID:               c.databaseID,
		DatabasePageProperties: &props,
	}

	page, err := c.api.CreatePage(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create page for %q: %w", rec.Position, err)
	}
	return page.ID, nil
}

// ExportAll pushes every record; it stops at the first error so a bad token
// or schema mismatch doesn't spam half-written rows.
func (c *Client) ExportAll(ctx context.Context, records []domain.ApplicationRecord) (int, error) {
	for i, rec := range records {
		if _, err := c.CreateApplicationPage(ctx, rec); err != nil {
			return i, err
		}
	}
	return len(records), nil
}
