package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cancha/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const (
	UploadDir    = "./static/courtpic"
	ThumbDir     = "./static/courtpic/thumb"
	MaxImageSize = 10 << 20
)

var (
	ErrNotImage     = errors.New("file must be an image")
	ErrFileTooLarge = errors.New("file size exceeds limit")
)

// SaveCourtImage validates and stores an uploaded court photo, writes a
// thumbnail alongside it, and returns the stored file name.
func SaveCourtImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if int64(len(buf)) > MaxImageSize {
		return "", ErrFileTooLarge
	}

	mimeType := http.DetectContentType(buf[:min(len(buf), 512)])
	if !utils.SupportedImageTypes[mimeType] {
		return "", ErrNotImage
	}

	if err := utils.EnsureDir(UploadDir); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", UploadDir, err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	fullPath := filepath.Join(UploadDir, filename)
	if err := os.WriteFile(fullPath, buf, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fullPath, err)
	}

	if img, _, err := image.Decode(bytes.NewReader(buf)); err == nil {
		_ = generateThumbnail(img, filename)
	}

	return filename, nil
}

func generateThumbnail(img image.Image, filename string) error {
	if err := utils.EnsureDir(ThumbDir); err != nil {
		return err
	}

	thumb := imaging.Fit(img, 300, 200, imaging.Lanczos)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	out, err := os.Create(filepath.Join(ThumbDir, base+".jpg"))
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}
