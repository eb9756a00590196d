//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"gradation-bot/internal/domain/entity"
)

// Detect находит частицы без OpenCV: тот же конвейер, площадь области
// считается числом пикселей 8-связной компоненты.
func (d *ParticleDetector) Detect(ctx context.Context, imageData []byte) (*entity.Segmentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := decodeImage(imageData)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() < d.MinImageSide || b.Dy() < d.MinImageSide {
		return nil, fmt.Errorf("quality gate failed: image is too small (%dx%d)", b.Dx(), b.Dy())
	}

	gray := imaging.Grayscale(img)
	if sigma := blurSigma(d.BlurKernel); sigma > 0 {
		gray = imaging.Blur(gray, sigma)
	}
	levels := luminance(gray)
	threshold := otsuThreshold(levels)

	// Инвертированный порог: всё, что не ярче порога, частица.
	w, h := b.Dx(), b.Dy()
	mask := make([]bool, w*h)
	for i, v := range levels {
		mask[i] = v <= threshold
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	regions := make([]entity.Region, 0)
	for _, r := range components(mask, w, h) {
		if r.PixelArea <= d.MinPixelArea {
			continue
		}
		regions = append(regions, r)
	}

	return &entity.Segmentation{
		ImageWidth:  w,
		ImageHeight: h,
		Regions:     regions,
	}, nil
}

// HighlightRegions рисует прямоугольники вокруг частиц и возвращает JPEG.
func (d *ParticleDetector) HighlightRegions(imageData []byte, seg *entity.Segmentation) ([]byte, error) {
	src, err := decodeImage(imageData)
	if err != nil {
		return nil, err
	}

	dst := imaging.Clone(src)
	green := color.NRGBA{G: 255, A: 255}
	for _, r := range seg.Regions {
		strokeRect(dst, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height), green, 2)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeImage учитывает EXIF-ориентацию, как и OpenCV при чтении снимка.
func decodeImage(imageData []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// blurSigma переводит размер ядра в сигму так же, как OpenCV при sigma = 0.
func blurSigma(kernel int) float64 {
	if kernel < 2 {
		return 0
	}
	if kernel%2 == 0 {
		kernel++
	}
	return 0.3*(float64(kernel-1)*0.5-1) + 0.8
}

// luminance достаёт яркость из серого NRGBA: каналы R, G, B уже равны.
func luminance(img *image.NRGBA) []uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			out[y*w+x] = row[x*4]
		}
	}
	return out
}

// otsuThreshold — порог Оцу по гистограмме яркости.
func otsuThreshold(levels []uint8) uint8 {
	var histogram [256]int
	for _, v := range levels {
		histogram[v]++
	}

	total := len(levels)
	if total == 0 {
		return 128
	}

	var totalSum float64
	for i := 0; i < 256; i++ {
		totalSum += float64(i) * float64(histogram[i])
	}

	var sumBackground, maxVariance float64
	var weightBackground int
	var best uint8
	for t := 0; t < 256; t++ {
		weightBackground += histogram[t]
		if weightBackground == 0 {
			continue
		}
		weightForeground := total - weightBackground
		if weightForeground == 0 {
			break
		}

		sumBackground += float64(t) * float64(histogram[t])
		meanB := sumBackground / float64(weightBackground)
		meanF := (totalSum - sumBackground) / float64(weightForeground)

		variance := float64(weightBackground) * float64(weightForeground) * (meanB - meanF) * (meanB - meanF)
		if variance > maxVariance {
			maxVariance = variance
			best = uint8(t)
		}
	}
	return best
}

// components размечает 8-связные области маски.
func components(mask []bool, w, h int) []entity.Region {
	seen := make([]bool, len(mask))
	var regions []entity.Region
	stack := make([]int, 0, 64)

	for start := range mask {
		if !mask[start] || seen[start] {
			continue
		}

		minX, minY := w, h
		maxX, maxY := -1, -1
		area := 0

		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := p%w, p/w

			area++
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if mask[n] && !seen[n] {
						seen[n] = true
						stack = append(stack, n)
					}
				}
			}
		}

		regions = append(regions, entity.Region{
			X:         minX,
			Y:         minY,
			Width:     maxX - minX + 1,
			Height:    maxY - minY + 1,
			PixelArea: float64(area),
		})
	}
	return regions
}

func strokeRect(img *image.NRGBA, r image.Rectangle, c color.Color, thickness int) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, r.Min.Y+t, c)
			img.Set(x, r.Max.Y-1-t, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.Set(r.Min.X+t, y, c)
			img.Set(r.Max.X-1-t, y, c)
		}
	}
}
