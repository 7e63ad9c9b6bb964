package media

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	xerrors "catalog-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	webpHeader = []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00")
)

func TestInspectAcceptsImages(t *testing.T) {
	cases := map[string][]byte{
		"image/png":  pngHeader,
		"image/jpeg": jpegHeader,
		"image/gif":  gifHeader,
		"image/webp": webpHeader,
	}
	for want, data := range cases {
		img, err := Inspect(data)
		require.NoError(t, err, want)
		assert.Equal(t, want, img.MIMEType)
	}
}

func TestInspectRejectsOtherContent(t *testing.T) {
	_, err := Inspect([]byte("<html><body>hi</body></html>"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Inspect([]byte("%PDF-1.7\n"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Inspect(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadRejectsOversize(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxImageSize)...)
	_, err := Read(bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrTooLarge)

	img, err := Read(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, len(pngHeader), len(img.Data))
}

func TestPresetTransformation(t *testing.T) {
	assert.Equal(t, "c_limit,w_1000,h_1000,q_auto:good", ProductImage.Transformation())
	assert.True(t, strings.Contains(CategoryImage.Transformation(), "w_500,h_500"))
}

func TestDisabledUploader(t *testing.T) {
	var u Uploader = Disabled{}
	_, err := u.Upload(context.Background(), pngHeader, ProductImage)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, u.Destroy(context.Background(), "x"), ErrNotConfigured)
}

func TestClientError(t *testing.T) {
	_, err := Inspect([]byte("plain text"))
	appErr, ok := xerrors.AsError(ClientError(err))
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, xerrors.CodeInvalidImage, appErr.Code)

	appErr, ok = xerrors.AsError(ClientError(ErrTooLarge))
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	appErr, ok = xerrors.AsError(ClientError(errors.New("cdn timeout")))
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.NotContains(t, appErr.Message, "cdn timeout")
}
