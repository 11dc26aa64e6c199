package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"estatehub/utils"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUploadAPI struct {
	mock.Mock
}

func (m *mockUploadAPI) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	args := m.Called(ctx, file, params)
	res, _ := args.Get(0).(*uploader.UploadResult)
	return res, args.Error(1)
}

func (m *mockUploadAPI) Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	args := m.Called(ctx, params)
	res, _ := args.Get(0).(*uploader.DestroyResult)
	return res, args.Error(1)
}

func TestCloudinaryStoreUpload(t *testing.T) {
	m := new(mockUploadAPI)
	store := &CloudinaryStore{api: m, folder: "estatehub/properties"}

	m.On("Upload", mock.Anything, mock.Anything, mock.MatchedBy(func(p uploader.UploadParams) bool {
		return p.Folder == "estatehub/properties" && strings.HasPrefix(p.PublicID, "front-view-")
	})).Return(&uploader.UploadResult{
		PublicID:  "estatehub/properties/front-view-1",
		SecureURL: "https://res.cloudinary.com/demo/image/upload/front-view-1.jpg",
	}, nil)

	img, err := store.Upload(context.Background(), "Front View.JPG", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "estatehub/properties/front-view-1", img.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/front-view-1.jpg", img.URL)
	m.AssertExpectations(t)
}

func TestCloudinaryStoreUploadErrors(t *testing.T) {
	m := new(mockUploadAPI)
	store := &CloudinaryStore{api: m}

	m.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}, nil).Once()
	_, err := store.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorContains(t, err, "Invalid image file")

	m.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("network down")).Once()
	_, err = store.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorContains(t, err, "network down")
}

func TestCloudinaryStoreDelete(t *testing.T) {
	m := new(mockUploadAPI)
	store := &CloudinaryStore{api: m}
	m.On("Destroy", mock.Anything, uploader.DestroyParams{PublicID: "abc"}).
		Return(&uploader.DestroyResult{Result: "ok"}, nil)

	require.NoError(t, store.Delete(context.Background(), "abc"))
	m.AssertExpectations(t)
}

func TestDisabledStore(t *testing.T) {
	_, err := DisabledStore{}.Upload(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, utils.CodeInternal, utils.AsAppError(err).Code)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestPublicIDFor(t *testing.T) {
	assert.True(t, strings.HasPrefix(publicIDFor("My Villa (1).jpeg"), "my-villa--1-"))
	assert.True(t, strings.HasPrefix(publicIDFor("../"), "image-"))
}
