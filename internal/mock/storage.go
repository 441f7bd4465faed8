package mock

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// readSeekNopCloser is what GetFile hands back.
type readSeekNopCloser struct{ io.ReadSeeker }

func (readSeekNopCloser) Close() error { return nil }

// Storage implements port.Storage for tests.
type Storage struct {
	mu sync.Mutex

	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker
	ExistsOut   bool

	// captured inputs
	Bucket      string
	ObjectKey   string
	TTL         time.Duration
	CopySrc     string
	CopyDest    string
	SavedKeys   []string
	RemovedKeys []string

	// errors
	InitBucketErr           error
	GenerateDownloadLinkErr error
	GenerateUploadLinkErr   error
	StatErr                 error
	RemoveErr               error
	GetErr                  error
	SaveErr                 error
	CopyErr                 error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	GenerateDownloadLinkCalled bool
	GenerateUploadLinkCalled   bool
	StatCalled                 bool
	RemoveCalled               bool
	GetCalled                  bool
	SaveCalled                 bool
	CopyCalled                 bool
	FileExistsCalled           bool
}

// compile-time check: *Storage must satisfy port.Storage
var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateDownloadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download/" + bucket + "/" + fileKey, nil
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateUploadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	return "https://example.com/upload", nil
}

func (m *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, bucket+"/"+fileKey)
	return m.RemoveErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return readSeekNopCloser{m.GetOut}, nil
	}
	return readSeekNopCloser{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalled = true
	m.SavedKeys = append(m.SavedKeys, bucket+"/"+fileKey)
	return m.SaveErr
}

func (m *Storage) CopyFile(ctx context.Context, srcBucket, srcKey, destBucket, destKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CopyCalled = true
	m.CopySrc = srcBucket + "/" + srcKey
	m.CopyDest = destBucket + "/" + destKey
	return m.CopyErr
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}
