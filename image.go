package hdbpmn

import (
	"github.com/disintegration/imaging"
	"github.com/vine-io/hdbpmn/api"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

//go:generate mockgen -destination=mock/image.go -package=mock github.com/vine-io/hdbpmn ImageDecoder

// ImageDecoder reads the pixel size of a raster image.
type ImageDecoder interface {
	DecodeSize(path string) (width, height int, err error)
}

type imagingDecoder struct{}

// NewImageDecoder returns a decoder for png, jpeg, gif, bmp, tiff and webp
// files that honors the EXIF orientation tag.
func NewImageDecoder() ImageDecoder {
	return imagingDecoder{}
}

func (imagingDecoder) DecodeSize(path string) (int, int, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, api.Internal("decode %s: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
