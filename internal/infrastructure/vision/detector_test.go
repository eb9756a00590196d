//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeToMat(t *testing.T) {
	mat, err := decodeToMat([]byte("not an image"))
	require.Error(t, err)
	require.Nil(t, mat.Ptr())

	img := image.NewGray(image.Rect(0, 0, 80, 70))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	img.SetGray(10, 10, color.Gray{Y: 10})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	mat, err = decodeToMat(buf.Bytes())
	require.NoError(t, err)
	defer mat.Close()
	require.Equal(t, 80, mat.Cols())
	require.Equal(t, 70, mat.Rows())
}
