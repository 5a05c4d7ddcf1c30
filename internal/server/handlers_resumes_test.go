package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kariqs/jobland-api/internal/extract"
)

// multipartUpload builds a request carrying one file part named "resume".
func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestReadUpload(t *testing.T) {
	tests := []struct {
		name          string
		fileName      string
		wantMediaType string
	}{
		{"PDF extension", "my resume.pdf", extract.MediaTypePDF},
		{"DOCX extension", "resume.docx", extract.MediaTypeDOCX},
		{"Uppercase extension", "RESUME.PDF", extract.MediaTypePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := multipartUpload(t, "resume", tt.fileName, []byte("file bytes"))

			upload, err := readUpload(req)
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, upload.fileName)
			assert.Equal(t, tt.wantMediaType, upload.mediaType)
			assert.Equal(t, []byte("file bytes"), upload.data)
		})
	}
}

func TestReadUpload_MissingFilePart(t *testing.T) {
	req := multipartUpload(t, "attachment", "resume.pdf", []byte("file bytes"))

	_, err := readUpload(req)
	require.Error(t, err)
}

func TestReadUpload_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/resumes", bytes.NewBufferString(`{"resume": true}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := readUpload(req)
	require.Error(t, err)
}

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{"Extension stripped", "Ada Lovelace Resume.pdf", "Ada Lovelace Resume"},
		{"DOCX extension stripped", "resume.docx", "resume"},
		{"No extension", "resume", "resume"},
		{"Only an extension", ".pdf", "Resume"},
		{"Empty file name", "", "Resume"},
		{"Surrounding spaces trimmed", "  resume .pdf", "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, defaultTitle(tt.fileName))
		})
	}
}
