package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant-admin/internal/errors"
)

func TestFileStore_CreatesRootAndOverwrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "logos", "nested")
	store := NewFileStore(root)

	require.NoError(t, store.Write(context.Background(), "42.jpg", strings.NewReader("first")))
	require.NoError(t, store.Write(context.Background(), "42.jpg", strings.NewReader("second")))

	content, err := os.ReadFile(filepath.Join(root, "42.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_ConcurrentWritesToSameKey(t *testing.T) {
	store := NewFileStore(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Write(context.Background(), "7.jpg", strings.NewReader("payload")))
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(store.Path("7.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestFileStore_RejectsBadKeys(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, key := range []string{"", "..", "../escape.jpg", `a\b.jpg`} {
		err := store.Write(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestFileStore_Remove(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Write(context.Background(), "3.jpg", strings.NewReader("x")))

	require.NoError(t, store.Remove(context.Background(), "3.jpg"))
	_, err := os.Stat(store.Path("3.jpg"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.NoError(t, store.Remove(context.Background(), "3.jpg"), "missing key")
	assert.ErrorIs(t, store.Remove(context.Background(), "../3.jpg"), ErrInvalidKey)
}

func TestFileStore_CancelledContext(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Write(ctx, "1.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(store.Path("1.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStore_RootNotCreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewFileStore(filepath.Join(blocker, "logos"))
	err := store.Write(context.Background(), "1.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}

func uploadedFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestResolver_AttacherNilWithoutFile(t *testing.T) {
	resolver := NewResolver(NewFileStore(t.TempDir()))
	assert.Nil(t, resolver.Attacher(nil))
}

func TestResolver_KeyIgnoresOriginalName(t *testing.T) {
	store := NewFileStore(t.TempDir())
	resolver := NewResolver(store)

	attach := resolver.Attacher(uploadedFile(t, "Company Logo.PNG", []byte("0123456789")))
	require.NotNil(t, attach)

	key, discard, err := attach(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "42.jpg", key)

	content, err := os.ReadFile(store.Path("42.jpg"))
	require.NoError(t, err)
	assert.Len(t, content, 10)

	require.NotNil(t, discard)
	discard()
	_, err = os.Stat(store.Path("42.jpg"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestResolver_DiscardSurvivesCancelledRequest(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())

	_, discard, err := NewResolver(store).Attacher(uploadedFile(t, "logo.jpg", []byte("abc")))(ctx, 5)
	require.NoError(t, err)

	cancel()
	discard()

	_, err = os.Stat(store.Path("5.jpg"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

type storeFunc func(ctx context.Context, key string) error

func (f storeFunc) Write(ctx context.Context, key string, _ io.Reader) error {
	return f(ctx, key)
}

func (f storeFunc) Remove(context.Context, string) error {
	return nil
}

func TestResolver_WriteFailureIsFileWriteFailure(t *testing.T) {
	resolver := NewResolver(storeFunc(func(ctx context.Context, key string) error {
		return errors.New("disk full")
	}))

	_, discard, err := resolver.Attacher(uploadedFile(t, "x.gif", []byte("abc")))(context.Background(), 9)
	assert.Nil(t, discard)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.FileWriteFailure))
	assert.Contains(t, err.Error(), "disk full")
}
