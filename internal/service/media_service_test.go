package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngData  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	jpegData = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestMediaService_StoreLocal(t *testing.T) {
	s := &mediaService{}

	name, err := s.Store(context.Background(), "uploads/photo.png", pngData)
	require.NoError(t, err)
	assert.Equal(t, "photo.png", name)

	_, err = s.Store(context.Background(), "notes.txt", []byte("just text"))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestMediaService_StoreUploads(t *testing.T) {
	putter := &fakePutter{}
	s := &mediaService{client: putter, bucket: "media", publicURL: "https://cdn.example.com/"}

	url, err := s.Store(context.Background(), "photo.jpg", jpegData)
	require.NoError(t, err)

	require.NotNil(t, putter.input)
	key := aws.ToString(putter.input.Key)
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "media", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(putter.input.ContentType))
	assert.Equal(t, jpegData, putter.body)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
}

func TestMediaService_StoreUploadFails(t *testing.T) {
	s := &mediaService{client: &fakePutter{err: errors.New("boom")}, bucket: "media"}

	_, err := s.Store(context.Background(), "photo.png", pngData)
	assert.Error(t, err)
}
