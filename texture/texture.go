package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/richinsley/learngl/graphics"
)

// ErrDecode is returned when a file is not a supported image.
var ErrDecode = errors.New("cannot decode image")

// Options selects sampling parameters. Wrap is "repeat" or "clamp", Filter is
// "linear", "nearest" or "mipmap"; empty values mean repeat and linear.
type Options struct {
	Wrap   string
	Filter string
}

// Texture is a 2D RGBA8 texture.
type Texture struct {
	dev       graphics.Device
	textureID uint32
	width     int32
	height    int32
	released  bool
}

// vflip vertically flips the provided RGBA image. GL expects the first row to
// be the bottom of the image.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	// This is faster than calling At/Set for each pixel
	rowSize := bounds.Dx() * 4 // 4 bytes per pixel (RGBA)
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// Load decodes an image file (png, jpeg, bmp, tiff or webp) and uploads it.
func Load(dev graphics.Device, path string, opts Options) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	log.Printf("Loaded %s texture %s (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return FromImage(dev, img, opts)
}

// FromImage uploads img as a new texture.
func FromImage(dev graphics.Device, img image.Image, opts Options) (*Texture, error) {
	if img == nil {
		return nil, errors.New("texture image is nil")
	}

	// Convert source image to RGBA with a zero origin for consistency.
	size := img.Bounds().Size()
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	rgba = vflip(rgba)

	width := int32(size.X)
	height := int32(size.Y)

	textureID := dev.GenTexture()
	dev.BindTexture(graphics.Texture2D, textureID)

	dev.TexParameteri(graphics.Texture2D, graphics.TextureWrapS, getWrapMode(opts.Wrap))
	dev.TexParameteri(graphics.Texture2D, graphics.TextureWrapT, getWrapMode(opts.Wrap))

	minFilter, magFilter := getFilterMode(opts.Filter)
	dev.TexParameteri(graphics.Texture2D, graphics.TextureMinFilter, minFilter)
	dev.TexParameteri(graphics.Texture2D, graphics.TextureMagFilter, magFilter)

	dev.TexImage2DRGBA(graphics.Texture2D, width, height, rgba.Pix)

	if opts.Filter == "mipmap" {
		dev.GenerateMipmap(graphics.Texture2D)
	}

	dev.BindTexture(graphics.Texture2D, 0)

	return &Texture{
		dev:       dev,
		textureID: textureID,
		width:     width,
		height:    height,
	}, nil
}

// Checkerboard returns a size x size image of cells x cells alternating
// tiles, used when no texture file is configured.
func Checkerboard(size, cells int, a, b color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// Helper to convert a wrap name to the GL constant.
func getWrapMode(wrap string) int32 {
	switch wrap {
	case "repeat":
		return graphics.Repeat
	case "clamp":
		return graphics.ClampToEdge
	default:
		return graphics.Repeat // Default behavior
	}
}

// Helper to convert a filter name to GL constants.
func getFilterMode(filter string) (minFilter, magFilter int32) {
	switch filter {
	case "mipmap":
		return graphics.LinearMipmapLinear, graphics.Linear
	case "linear":
		return graphics.Linear, graphics.Linear
	case "nearest":
		return graphics.Nearest, graphics.Nearest
	default:
		return graphics.Linear, graphics.Linear // Default behavior
	}
}

// Use binds the texture to the given texture unit.
func (t *Texture) Use(unit uint32) {
	if t == nil || t.released {
		return
	}
	t.dev.ActiveTexture(graphics.Texture0 + unit)
	t.dev.BindTexture(graphics.Texture2D, t.textureID)
}

func (t *Texture) ID() uint32 {
	if t == nil || t.released {
		return 0
	}
	return t.textureID
}

func (t *Texture) Size() (int32, int32) {
	return t.width, t.height
}

// Release deletes the GPU texture; later calls do nothing.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.dev.DeleteTexture(t.textureID)
	t.released = true
}
