package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/Theijiii/plms-sys-sub005/internal/config"
	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
	"github.com/Theijiii/plms-sys-sub005/internal/service"
	"github.com/Theijiii/plms-sys-sub005/mocks"
)

// fakeFile adapts a bytes.Reader to multipart.File.
type fakeFile struct {
	*bytes.Reader
}

func (f *fakeFile) Close() error { return nil }

// jpegBytes starts with the JPEG magic so content sniffing accepts it.
func jpegBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	return data
}

func uploadInput(name string, data []byte) service.FileUploadInput {
	return service.FileUploadInput{
		UploadedBy: uuid.New(),
		File:       &fakeFile{bytes.NewReader(data)},
		Header:     &multipart.FileHeader{Filename: name, Size: int64(len(data))},
	}
}

func testS3Config() *config.S3Config {
	return &config.S3Config{Bucket: "plms-id-uploads", MaxFileSizeMB: 1, PresignExpiry: 3600}
}

func TestFileService_Upload(t *testing.T) {
	data := jpegBytes(64)

	fileRepo := new(mocks.MockFileMetaRepo)
	fileRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.FileMeta) bool {
		return m.FileType == domain.FileTypeJPG &&
			m.OriginalName == "license.jpg" &&
			m.S3Bucket == "plms-id-uploads" &&
			m.Status == domain.FileStatusPending
	})).Return(nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusUploaded).Return(nil)

	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "plms-id-uploads" && in.ContentType == "image/jpeg"
	})).Return(&port.UploadOutput{Location: "s3://x"}, nil)

	svc := service.NewFileService(fileRepo, storage, testS3Config())
	meta, err := svc.Upload(context.Background(), uploadInput("license.jpg", data))
	require.NoError(t, err)

	assert.Equal(t, domain.FileStatusUploaded, meta.Status)
	fileRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestFileService_Upload_RejectsUnknownExtension(t *testing.T) {
	svc := service.NewFileService(new(mocks.MockFileMetaRepo), new(mocks.MockObjectStorage), testS3Config())

	_, err := svc.Upload(context.Background(), uploadInput("malware.exe", jpegBytes(16)))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
}

func TestFileService_Upload_RejectsMismatchedContent(t *testing.T) {
	svc := service.NewFileService(new(mocks.MockFileMetaRepo), new(mocks.MockObjectStorage), testS3Config())

	// .jpg extension over plain text content.
	_, err := svc.Upload(context.Background(), uploadInput("license.jpg", []byte("just some text pretending")))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
}

func TestFileService_Upload_RejectsOversize(t *testing.T) {
	svc := service.NewFileService(new(mocks.MockFileMetaRepo), new(mocks.MockObjectStorage), testS3Config())

	_, err := svc.Upload(context.Background(), uploadInput("license.jpg", jpegBytes(2*1024*1024)))
	assert.True(t, errors.Is(err, domain.ErrFileTooLarge))
}

func TestFileService_Upload_StorageFailureMarksFailed(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	fileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	fileRepo.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusFailed).Return(nil)

	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))

	svc := service.NewFileService(fileRepo, storage, testS3Config())
	_, err := svc.Upload(context.Background(), uploadInput("license.jpg", jpegBytes(64)))

	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
	fileRepo.AssertExpectations(t)
}

func TestFileService_Download(t *testing.T) {
	fileID := uuid.New()
	meta := &domain.FileMeta{ID: fileID, S3Bucket: "plms-id-uploads", S3Key: "applicants/x/doc"}

	fileRepo := new(mocks.MockFileMetaRepo)
	fileRepo.On("GetByID", mock.Anything, fileID).Return(meta, nil)

	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "plms-id-uploads", "applicants/x/doc").Return([]byte("img"), nil)

	svc := service.NewFileService(fileRepo, storage, testS3Config())
	data, gotMeta, err := svc.Download(context.Background(), fileID)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
	assert.Equal(t, fileID, gotMeta.ID)
}

func TestFileService_Download_NotFound(t *testing.T) {
	fileRepo := new(mocks.MockFileMetaRepo)
	fileRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	svc := service.NewFileService(fileRepo, new(mocks.MockObjectStorage), testS3Config())
	_, _, err := svc.Download(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
