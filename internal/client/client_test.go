package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/client"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, "test-token", nil)
}

// ── shared plumbing ─────────────────────────────────────────────────────────

func TestRequestCarriesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	})

	_, err := c.Applications().List(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestErrorResponseSurfacesStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "application not found", http.StatusNotFound)
	})

	err := c.Applications().Delete(context.Background(), "missing")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "application not found")
}

// ── applications ────────────────────────────────────────────────────────────

func TestApplicationsList_MapsWireRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/7/applications", r.URL.Path)
		io.WriteString(w, `[
			{
				"id": "1",
				"companyName": "Acme",
				"position": "Backend Engineer",
				"status": "TECHNICAL_INTERVIEW",
				"applyDate": "2024-03-01 09:30:00",
				"interviewTime": "2024-03-10 14:00:00",
				"emailNotificationsEnabled": true,
				"resumeId": "file-1",
				"cvFileName": "cv.pdf"
			},
			{
				"id": "2",
				"companyName": "Globex",
				"position": "SRE",
				"status": "SOMETHING_NEW",
				"applyDate": "2024-04-01 10:00:00",
				"emailNotificationsEnabled": true
			}
		]`)
	})

	records, err := c.Applications().List(context.Background(), "7")

	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, domain.StatusTechnicalInterview, first.Status)
	assert.Equal(t, "2024-03-01 09:30:00", first.DateApplied.Format(domain.WireTimeLayout))
	require.NotNil(t, first.InterviewTime)
	assert.True(t, first.EmailNotifications)
	assert.Equal(t, "file-1", first.ResumeID)

	second := records[1]
	assert.Equal(t, domain.StatusApplied, second.Status, "unknown status codes fall back to APPLIED")
	assert.Nil(t, second.InterviewTime)
	assert.False(t, second.EmailNotifications, "notifications without an interview slot are dropped")
}

func TestApplicationsCreate_SendsJSONBody(t *testing.T) {
	var got client.ApplicationRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/applications", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"id":"9","companyName":"Acme","position":"Backend Engineer","status":"APPLIED","applyDate":"2024-03-01 09:30:00"}`)
	})

	rec, err := c.Applications().Create(context.Background(), client.ApplicationRequest{
		CompanyName: "Acme",
		Position:    "Backend Engineer",
		Status:      "APPLIED",
		ApplyDate:   "2024-03-01 09:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "2024-03-01 09:30:00", got.ApplyDate)
	assert.Equal(t, "9", rec.ID)
}

func TestApplicationsUpdate_PatchesByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/applications/42", r.URL.Path)
		io.WriteString(w, `{"id":"42","companyName":"Acme","position":"SRE","status":"OFFERED","applyDate":"2024-03-01 09:30:00"}`)
	})

	rec, err := c.Applications().Update(context.Background(), "42", client.ApplicationRequest{
		CompanyName: "Acme", Position: "SRE", Status: "OFFERED", ApplyDate: "2024-03-01 09:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusOffered, rec.Status)
}

// ── resumes ─────────────────────────────────────────────────────────────────

func TestResumesUpload_SendsMultipartFile(t *testing.T) {
	payload := []byte("%PDF-1.4 test payload")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/resumes", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cv.pdf", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, data)

		io.WriteString(w, `{"fileId":"file-9","fileName":"cv.pdf","uploadedAt":"2024-03-01 09:30:00"}`)
	})

	info, err := c.Resumes().Upload(context.Background(), "cv.pdf", payload)

	require.NoError(t, err)
	assert.Equal(t, "file-9", info.FileID)
	assert.Equal(t, "cv.pdf", info.FileName)
	assert.False(t, info.UploadedAt.IsZero())
}

func TestResumesDownload_ReturnsRawBytes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resumes/file-9", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte("%PDF-1.4 blob"))
	})

	data, err := c.Resumes().Download(context.Background(), "file-9")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 blob"), data)
}

// ── notes ───────────────────────────────────────────────────────────────────

func TestNotesListByApplication_FiltersByQueryParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("applicationId"))
		io.WriteString(w, `[{"id":"n1","applicationId":"42","title":"Recruiter call","content":"Ask about remote policy","tags":["phone"],"createdAt":"2024-03-02 10:00:00","updatedAt":"2024-03-02 10:00:00"}]`)
	})

	notes, err := c.Notes().ListByApplication(context.Background(), "42")

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Recruiter call", notes[0].Title)
	assert.Equal(t, []string{"phone"}, notes[0].Tags)
	assert.False(t, notes[0].CreatedAt.IsZero())
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestAuthLogin_BuildsSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "me@example.com", body["email"])
		io.WriteString(w, `{"success":true,"data":{"id":7,"email":"me@example.com","userName":"me","access_token":"tok"}}`)
	})

	sess, err := c.Auth().Login(context.Background(), "me@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "7", sess.User.ID)
	assert.Equal(t, "tok", sess.Token)
}

func TestAuthLogin_RejectedResponseFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"message":"bad credentials"}`)
	})

	_, err := c.Auth().Login(context.Background(), "me@example.com", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")
}
