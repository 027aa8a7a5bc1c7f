package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"studysnap-be/internal/config"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/pkg/pdftext"
	"studysnap-be/pkg/spaces"
)

// Space selects which bucket an operation targets. Note documents and
// classroom thumbnails live in separate buckets with separate type
// allowlists.
type Space string

const (
	SpaceNotes  Space = "notes"
	SpaceImages Space = "images"
)

// Text extraction reads at most this many pages per document.
const maxExtractPages = 16

var allowedExtensions = map[Space][]string{
	SpaceNotes:  {"pdf", "doc", "docx"},
	SpaceImages: {"png", "jpg"},
}

type IFilesService interface {
	CreateFile(ctx context.Context, space Space, originalName string, content io.Reader, size int64) (string, error)
	RemoteFileExists(ctx context.Context, space Space, fileUri string) (bool, error)
	GetFileObject(ctx context.Context, space Space, fileUri string) ([]byte, error)
	DeleteFileWithID(ctx context.Context, space Space, fileUri string) error
	IsValidFileType(space Space, fileUri string) bool
	ExtractBodyFromFile(ctx context.Context, fileUri string) (string, error)
	CDNUrl(space Space, fileUri string) string
}

type filesService struct {
	spaces *spaces.Client
	cfg    config.SpacesConfig
}

func NewFilesService(client *spaces.Client, cfg config.SpacesConfig) IFilesService {
	return &filesService{
		spaces: client,
		cfg:    cfg,
	}
}

func (s *filesService) bucket(space Space) string {
	if space == SpaceImages {
		return s.cfg.ImageDataSpace
	}
	return s.cfg.NoteDataSpace
}

// CreateFile stores the content under a fresh uuid-based key, keeping the
// original extension so the type check stays meaningful on later reads.
func (s *filesService) CreateFile(ctx context.Context, space Space, originalName string, content io.Reader, size int64) (string, error) {
	ext := fileExtension(originalName)
	if !extensionAllowed(space, ext) {
		return "", apperrors.NewBadRequest("file type .%s is not supported", ext)
	}

	fileUri := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := s.spaces.Put(ctx, s.bucket(space), fileUri, content, size, contentTypeFor(ext)); err != nil {
		return "", apperrors.NewInternal("could not store file: %v", err)
	}

	return fileUri, nil
}

func (s *filesService) RemoteFileExists(ctx context.Context, space Space, fileUri string) (bool, error) {
	exists, err := s.spaces.Exists(ctx, s.bucket(space), fileUri)
	if err != nil {
		return false, apperrors.NewInternal("could not check file %s: %v", fileUri, err)
	}
	return exists, nil
}

func (s *filesService) GetFileObject(ctx context.Context, space Space, fileUri string) ([]byte, error) {
	data, err := s.spaces.Get(ctx, s.bucket(space), fileUri)
	if err != nil {
		return nil, apperrors.NewInternal("could not fetch file %s: %v", fileUri, err)
	}
	return data, nil
}

func (s *filesService) DeleteFileWithID(ctx context.Context, space Space, fileUri string) error {
	if err := s.spaces.Remove(ctx, s.bucket(space), fileUri); err != nil {
		return apperrors.NewInternal("could not delete file %s: %v", fileUri, err)
	}
	return nil
}

func (s *filesService) IsValidFileType(space Space, fileUri string) bool {
	return extensionAllowed(space, fileExtension(fileUri))
}

// ExtractBodyFromFile pulls plain text out of a stored note document. Only
// PDFs are parsed; other formats get a fixed placeholder body so abstract and
// read-time derivation still produce something sane.
func (s *filesService) ExtractBodyFromFile(ctx context.Context, fileUri string) (string, error) {
	if fileExtension(fileUri) != "pdf" {
		return extractionPlaceholder, nil
	}

	data, err := s.GetFileObject(ctx, SpaceNotes, fileUri)
	if err != nil {
		return "", err
	}

	body, err := pdftext.Extract(data, maxExtractPages)
	if err != nil {
		return "", apperrors.NewInternal("could not extract text from %s: %v", fileUri, err)
	}

	return body, nil
}

// CDNUrl builds the public edge address for a stored object,
// https://{bucket}.{endpoint}/{fileUri} on the default TLS setup.
func (s *filesService) CDNUrl(space Space, fileUri string) string {
	scheme := "https"
	if !s.cfg.UseSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, s.bucket(space), s.cfg.Endpoint, fileUri)
}

func contentTypeFor(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "png":
		return "image/png"
	case "jpg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

func fileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

func extensionAllowed(space Space, ext string) bool {
	for _, allowed := range allowedExtensions[space] {
		if ext == allowed {
			return true
		}
	}
	return false
}
