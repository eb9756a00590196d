//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"gradation-bot/internal/domain/entity"
)

// Detect находит частицы на снимке. Размер снимка не меняется: линия
// калибровки измерена в его исходных пикселях.
func (d *ParticleDetector) Detect(ctx context.Context, imageData []byte) (*entity.Segmentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if err := d.checkImageQuality(mat); err != nil {
		return nil, err
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(d.BlurKernel, d.BlurKernel), 0, 0, gocv.BorderDefault)

	// Частицы темнее фона: инвертированный порог Оцу делает их белыми.
	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(blur, &thresh, 0, 255, gocv.ThresholdBinaryInv|gocv.ThresholdOtsu)

	contours := gocv.FindContours(thresh, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	regions := make([]entity.Region, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area <= d.MinPixelArea {
			continue
		}

		rect := gocv.BoundingRect(c)
		regions = append(regions, entity.Region{
			X:         rect.Min.X,
			Y:         rect.Min.Y,
			Width:     rect.Dx(),
			Height:    rect.Dy(),
			PixelArea: area,
		})
	}

	return &entity.Segmentation{
		ImageWidth:  mat.Cols(),
		ImageHeight: mat.Rows(),
		Regions:     regions,
	}, nil
}

// HighlightRegions рисует прямоугольники вокруг частиц и возвращает JPEG.
func (d *ParticleDetector) HighlightRegions(imageData []byte, seg *entity.Segmentation) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	for _, r := range seg.Regions {
		rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		gocv.Rectangle(&mat, rect, green, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat. При ошибке
// возвращается нулевой Mat, закрывать его не нужно.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to decode image: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, errors.New("failed to decode image")
	}
	return mat, nil
}

func (d *ParticleDetector) checkImageQuality(mat gocv.Mat) error {
	if mat.Empty() {
		return errors.New("quality gate failed: empty image")
	}
	if mat.Cols() < d.MinImageSide || mat.Rows() < d.MinImageSide {
		return fmt.Errorf("quality gate failed: image is too small (%dx%d)", mat.Cols(), mat.Rows())
	}
	return nil
}
