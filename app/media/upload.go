package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the largest accepted image, matching the public upload
// form's limit.
const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	ErrFileType     = errors.New("invalid file type")
)

// PostImageTypes is the acceptance list for post featured images.
var PostImageTypes = []string{".jpeg", ".jpg", ".png", ".gif"}

// SettingsImageTypes additionally admits icon formats for logo and favicon
// uploads.
var SettingsImageTypes = []string{".jpeg", ".jpg", ".png", ".gif", ".ico", ".svg"}

// Upload is a validated incoming file, decoupled from multipart plumbing so
// services can be tested without HTTP requests.
type Upload struct {
	// Filename is the client-supplied name, used only to derive the
	// extension of the generated stored name.
	Filename string
	Content  io.Reader
	Size     int64
}

// FromMultipart validates a multipart file header against the allowed
// extensions and size cap and opens it as an Upload. The caller owns closing
// the returned file via the second return value.
func FromMultipart(fh *multipart.FileHeader, allowed []string) (*Upload, io.Closer, error) {
	if fh.Size > MaxUploadSize {
		return nil, nil, ErrFileTooLarge
	}
	if err := checkType(fh.Filename, fh.Header.Get("Content-Type"), allowed); err != nil {
		return nil, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open upload: %w", err)
	}

	return &Upload{
		Filename: fh.Filename,
		Content:  f,
		Size:     fh.Size,
	}, f, nil
}

// checkType requires both the extension and the declared MIME type to sit in
// the acceptance list.
func checkType(filename, contentType string, allowed []string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	extOK := false
	for _, a := range allowed {
		if ext == a {
			extOK = true
			break
		}
	}

	mimeOK := false
	for _, a := range allowed {
		sub := strings.TrimPrefix(a, ".")
		if strings.HasSuffix(contentType, sub) ||
			(sub == "jpg" && strings.HasSuffix(contentType, "jpeg")) ||
			(sub == "svg" && strings.HasSuffix(contentType, "svg+xml")) ||
			(sub == "ico" && strings.HasSuffix(contentType, "icon")) {
			mimeOK = true
			break
		}
	}

	if !extOK || !mimeOK {
		return ErrFileType
	}
	return nil
}
