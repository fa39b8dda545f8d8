package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	document.DocumentRepository
	nextID     int
	documents  map[string]document.Document
	failCreate bool
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: make(map[string]document.Document)}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d document.Document) (document.Document, error) {
	if f.failCreate {
		return document.Document{}, errors.New("insert failed")
	}
	f.nextID++
	d.ID = fmt.Sprintf("doc-%d", f.nextID)
	f.documents[d.ID] = d
	return d, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id string) (document.Document, error) {
	d, ok := f.documents[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return d, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.documents[id]; !ok {
		return document.ErrDocumentNotFound
	}
	delete(f.documents, id)
	return nil
}

type fakeFileService struct {
	stored map[string][]byte
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{stored: make(map[string][]byte)}
}

func (f *fakeFileService) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeFileService) StoreInvoiceDocument(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeFileService) StoreEntityDocument(ctx context.Context, entityType string, filename string, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	key := "documents/" + entityType + "/" + filename
	f.stored[key] = data
	return key, nil
}

func (f *fakeFileService) OpenDocument(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.stored[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	delete(f.stored, path)
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return path, nil
}

func newTestService(repo *fakeDocumentRepo, files *fakeFileService) *DocumentServiceImpl {
	return &DocumentServiceImpl{DocumentRepository: repo, fileService: files}
}

func TestUpload_StoresFileAndMetadata(t *testing.T) {
	repo := newFakeDocumentRepo()
	files := newFakeFileService()
	svc := newTestService(repo, files)

	created, err := svc.Upload(context.Background(),
		document.UploadDocumentRequest{EntityType: "candidate", EntityID: "cand-1", Name: "Signed NDA"},
		"nda.pdf", "application/pdf", 12, bytes.NewReader([]byte("pdf content!")))
	require.NoError(t, err)

	assert.Equal(t, "Signed NDA", created.Name)
	assert.Equal(t, "candidate", created.EntityType)
	assert.Equal(t, "cand-1", created.EntityID)
	assert.Equal(t, int64(12), created.FileSize)
	assert.NotEmpty(t, created.FileKey)
	assert.Contains(t, files.stored, created.FileKey)
}

func TestUpload_DefaultsNameToFilename(t *testing.T) {
	svc := newTestService(newFakeDocumentRepo(), newFakeFileService())

	created, err := svc.Upload(context.Background(),
		document.UploadDocumentRequest{EntityType: "job", EntityID: "job-1"},
		"contract.pdf", "application/pdf", 4, bytes.NewReader([]byte("data")))
	require.NoError(t, err)
	assert.Equal(t, "contract.pdf", created.Name)
}

func TestUpload_CleansUpFileWhenMetadataFails(t *testing.T) {
	repo := newFakeDocumentRepo()
	repo.failCreate = true
	files := newFakeFileService()
	svc := newTestService(repo, files)

	_, err := svc.Upload(context.Background(),
		document.UploadDocumentRequest{EntityType: "candidate", EntityID: "cand-1"},
		"nda.pdf", "application/pdf", 4, bytes.NewReader([]byte("data")))
	require.Error(t, err)
	assert.Empty(t, files.stored, "orphaned file must be removed")
}

func TestDownload_StreamsStoredFile(t *testing.T) {
	repo := newFakeDocumentRepo()
	files := newFakeFileService()
	svc := newTestService(repo, files)

	created, err := svc.Upload(context.Background(),
		document.UploadDocumentRequest{EntityType: "candidate", EntityID: "cand-1", Name: "Resume v2"},
		"resume.pdf", "application/pdf", 11, bytes.NewReader([]byte("resume body")))
	require.NoError(t, err)

	body, contentType, name, err := svc.Download(context.Background(), created.ID)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(data))
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "Resume v2", name)
}

func TestDelete_RemovesFileAndMetadata(t *testing.T) {
	repo := newFakeDocumentRepo()
	files := newFakeFileService()
	svc := newTestService(repo, files)

	created, err := svc.Upload(context.Background(),
		document.UploadDocumentRequest{EntityType: "candidate", EntityID: "cand-1"},
		"nda.pdf", "application/pdf", 4, bytes.NewReader([]byte("data")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.documents)
	assert.Empty(t, files.stored)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}
