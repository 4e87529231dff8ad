package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/myErrors"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImage_AllowList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "gallery"})

	for _, name := range []string{"virus.exe", "doc.pdf", "noext", "archive.png.zip"} {
		_, err := f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{Filename: name, Content: strings.NewReader("x")})
		assert.ErrorIs(t, err, myErrors.ErrValidation, name)
	}
	assert.Empty(t, f.events(t, p.ID)[1:])
}

func TestUploadImage_PNGDimensions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "gallery"})

	m, err := f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{
		Filename:    "My Cat!.PNG",
		ContentType: "application/octet-stream",
		Content:     bytes.NewReader(pngBytes(t, 3, 2)),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", m.MimeType)
	require.NotNil(t, m.Width)
	require.NotNil(t, m.Height)
	assert.Equal(t, 3, *m.Width)
	assert.Equal(t, 2, *m.Height)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/`+p.ID+`/My_Cat_[0-9a-f]{8}\.png$`), m.URL)

	key := strings.TrimPrefix(m.URL, "/uploads/")
	_, err = os.Stat(filepath.Join(f.storage.Root(), filepath.FromSlash(key)))
	assert.NoError(t, err)

	assert.Equal(t, []string{constant.EventPostCreated, constant.EventPostImageUploaded}, eventTypes(f.events(t, p.ID)))
}

func TestUploadImage_FallbackMetadata(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "gallery"})

	m, err := f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{
		Filename:    "broken.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("definitely not a jpeg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", m.MimeType)
	assert.Nil(t, m.Width)
	assert.Nil(t, m.Height)
}

func TestUploadImage_Oversize(t *testing.T) {
	f := newFixture(t)
	p := f.createPost(t, &dto.CreatePostRequest{Title: "big"})

	big := io.LimitReader(zeroReader{}, 2<<20)
	_, err := f.media.UploadImage(context.Background(), p.ID, &dto.ImageUpload{Filename: "big.png", Content: big})
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestUploadImage_PostMustBeActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.media.UploadImage(ctx, "missing", &dto.ImageUpload{Filename: "a.png", Content: bytes.NewReader(pngBytes(t, 1, 1))})
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)

	p := f.createPost(t, &dto.CreatePostRequest{Title: "gone"})
	require.NoError(t, f.posts.DeletePost(ctx, p.ID))
	_, err = f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{Filename: "a.png", Content: bytes.NewReader(pngBytes(t, 1, 1))})
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestDeleteMedia_RemovesObjectAndRecordsEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "gallery"})

	first, err := f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{Filename: "a.png", Content: bytes.NewReader(pngBytes(t, 1, 1))})
	require.NoError(t, err)
	second, err := f.media.UploadImage(ctx, p.ID, &dto.ImageUpload{Filename: "b.gif", ContentType: "image/gif", Content: strings.NewReader("gif?")})
	require.NoError(t, err)

	list, err := f.media.ListMedia(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, f.media.DeleteMedia(ctx, p.ID, first.ID))
	path := filepath.Join(f.storage.Root(), filepath.FromSlash(strings.TrimPrefix(first.URL, "/uploads/")))
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	list, err = f.media.ListMedia(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	types := eventTypes(f.events(t, p.ID))
	assert.Equal(t, constant.EventPostImageDeleted, types[len(types)-1])

	assert.ErrorIs(t, f.media.DeleteMedia(ctx, p.ID, first.ID), myErrors.ErrRepoNotFound)
	assert.ErrorIs(t, f.media.DeleteMedia(ctx, "other-post", second.ID), myErrors.ErrRepoNotFound)

	_, err = f.media.ListMedia(ctx, "missing")
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestSanitizeStem(t *testing.T) {
	tests := map[string]string{
		"photo.png":          "photo",
		"../../etc/passwd":   "passwd",
		"My Cat!.PNG":        "My_Cat",
		"...png":             "image",
		`C:\Users\me\a b.gif`: "a_b",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeStem(in), in)
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}
