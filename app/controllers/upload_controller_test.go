package controllers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajsingh19/wearhouse/app/models"
)

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type uploadResponse struct {
	Success bool `json:"success"`
	Image   struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Format   string `json:"format"`
		Bytes    int    `json:"bytes"`
	} `json:"image"`
}

func TestUploadImage(t *testing.T) {
	h, db := setupAPI(t)
	user := createUser(t, db, "user@example.com", models.RoleUser)
	token := tokenFor(t, user)

	body, contentType := multipartBody(t, "file", "shirt.png", "image/png", smallPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, 20, out.Image.Width)
	assert.Equal(t, 20, out.Image.Height)
	assert.Equal(t, "png", out.Image.Format)
	assert.NotEmpty(t, out.Image.PublicID)
	assert.Contains(t, out.Image.URL, out.Image.PublicID)
}

func TestUploadRequiresAuth(t *testing.T) {
	h, _ := setupAPI(t)

	body, contentType := multipartBody(t, "file", "shirt.png", "image/png", smallPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadRejectsMissingFileField(t *testing.T) {
	h, db := setupAPI(t)
	user := createUser(t, db, "user@example.com", models.RoleUser)

	body, contentType := multipartBody(t, "wrongfield", "shirt.png", "image/png", smallPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided", decodeError(t, rec).Error)
}

func TestUploadRejectsDisallowedMediaType(t *testing.T) {
	h, db := setupAPI(t)
	user := createUser(t, db, "user@example.com", models.RoleUser)

	body, contentType := multipartBody(t, "file", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "unsupported file type")
}

func TestDeleteUpload(t *testing.T) {
	h, db := setupAPI(t)
	user := createUser(t, db, "user@example.com", models.RoleUser)
	token := tokenFor(t, user)

	// Upload first so there is something to delete.
	body, contentType := multipartBody(t, "file", "shirt.png", "image/png", smallPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var uploaded uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))

	rec = doJSON(t, h, http.MethodDelete, "/api/upload", token, map[string]string{
		"public_id": uploaded.Image.PublicID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	// Missing public_id fails validation.
	rec = doJSON(t, h, http.MethodDelete, "/api/upload", token, map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
