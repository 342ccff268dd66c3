package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// URLPrefix is where saved files are served from.
const URLPrefix = "/uploads/"

var (
	// ErrUnsupportedType rejects anything that is not an image or a video.
	ErrUnsupportedType = errors.New("only image and video files are accepted")
	// ErrTooLarge rejects files above the configured limit.
	ErrTooLarge = errors.New("file exceeds the size limit")
)

var unsafeField = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Disk stores uploaded attachments in a local directory.
type Disk struct {
	dir      string
	maxBytes int64
	nowFn    func() time.Time
	randFn   func() int
}

// NewDisk creates dir if needed.
func NewDisk(dir string, maxBytes int64) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{
		dir:      dir,
		maxBytes: maxBytes,
		nowFn:    time.Now,
		randFn:   func() int { return rand.IntN(1_000_000_000) },
	}, nil
}

// Dir returns the directory files are written to.
func (d *Disk) Dir() string {
	return d.dir
}

// Check reports whether Save would accept the file by its declared type
// and size, without writing anything.
func (d *Disk) Check(header *multipart.FileHeader) error {
	_, _, err := d.classify(header)
	return err
}

func (d *Disk) classify(header *multipart.FileHeader) (domain.AttachmentType, string, error) {
	contentType := header.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(ext)
	}
	kind, ok := domain.AttachmentTypeForMIME(contentType)
	if !ok {
		return "", "", ErrUnsupportedType
	}
	if d.maxBytes > 0 && header.Size > d.maxBytes {
		return "", "", ErrTooLarge
	}
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return kind, ext, nil
}

// Save writes the file as "<field>-<unix millis>-<random><ext>" and returns
// the attachment pointing at its public URL.
func (d *Disk) Save(field string, header *multipart.FileHeader) (domain.Attachment, error) {
	kind, ext, err := d.classify(header)
	if err != nil {
		return domain.Attachment{}, err
	}

	src, err := header.Open()
	if err != nil {
		return domain.Attachment{}, err
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%d%s", sanitizeField(field), d.nowFn().UnixMilli(), d.randFn(), ext)
	path := filepath.Join(d.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return domain.Attachment{}, err
	}

	reader := io.Reader(src)
	if d.maxBytes > 0 {
		reader = io.LimitReader(src, d.maxBytes+1)
	}
	written, err := io.Copy(dst, reader)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && d.maxBytes > 0 && written > d.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		return domain.Attachment{}, err
	}
	return domain.Attachment{Type: kind, URL: URLPrefix + name}, nil
}

// Remove deletes a file previously returned by Save. Files already gone
// are not an error.
func (d *Disk) Remove(att domain.Attachment) error {
	name, ok := strings.CutPrefix(att.URL, URLPrefix)
	if !ok || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("not an upload url: %q", att.URL)
	}
	if err := os.Remove(filepath.Join(d.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func sanitizeField(field string) string {
	field = unsafeField.ReplaceAllString(field, "")
	if field == "" {
		return "file"
	}
	return field
}
