package bloglist

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxAvatarWidth = 256
	jpegQuality    = 80
	maxUploadSize  = 10 << 20 // 10MB
	avatarsSubdir  = "avatars"
)

// AvatarImage is the metadata of one processed author avatar.
type AvatarImage struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	OriginalName string `json:"original_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploaded_at"`
}

// processAvatar decodes an image from src, resizes it down to
// maxAvatarWidth if wider, and encodes it as JPEG. Returns metadata and
// the encoded bytes.
func processAvatar(src io.Reader, originalName string) (AvatarImage, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return AvatarImage{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxAvatarWidth {
		newH := h * maxAvatarWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxAvatarWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxAvatarWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return AvatarImage{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	filename := slugifyFilename(originalName) + ".jpg"

	return AvatarImage{
		Filename:     filename,
		URL:          "/public/" + avatarsSubdir + "/" + filename,
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return Slugify(base)
}

// handleAvatarUpload accepts a multipart image upload, processes it into a
// listing-sized JPEG under the static dir, and returns its metadata so the
// admin form can reference the URL in an author line.
func (a *App) handleAvatarUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing image file")
	}
	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	avatar, encoded, err := processAvatar(src, fileHeader.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported image")
	}
	if avatar.Filename == ".jpg" {
		return echo.NewHTTPError(http.StatusBadRequest, "unusable filename")
	}

	dir := filepath.Join(a.staticDir, avatarsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, avatar.Filename), encoded, 0o644); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, avatar)
}
