package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"FaceAttendance/internal/entity"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	knownColor   = color.RGBA{G: 255, A: 255}
	unknownColor = color.RGBA{R: 255, A: 255}
)

const boxThickness = 2

// Decode parses raw image bytes (JPEG, PNG or GIF) into an image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodeJPEGDataURL renders an image as a browser-ready data URL, the same
// shape the frontend sends frames in.
func EncodeJPEGDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Annotate draws a bounding box and name label for every recognized face.
// Known identities get a green box with "Name (NN%)", unknown ones a red box.
func Annotate(img image.Image, faces []entity.RecognizedFace) image.Image {
	canvas := image.NewRGBA(img.Bounds())
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Src)

	for _, face := range faces {
		boxColor := unknownColor
		label := face.Name
		if face.Known() {
			boxColor = knownColor
			label = fmt.Sprintf("%s (%.0f%%)", face.Name, face.Similarity*100)
		}

		drawRect(canvas, face.BBox, boxColor)
		drawLabel(canvas, face.BBox[0], face.BBox[1]-6, label, boxColor)
	}

	return canvas
}

func drawRect(canvas *image.RGBA, bbox [4]int, c color.RGBA) {
	x1, y1, x2, y2 := bbox[0], bbox[1], bbox[2], bbox[3]

	for t := 0; t < boxThickness; t++ {
		for x := x1; x <= x2; x++ {
			canvas.Set(x, y1+t, c)
			canvas.Set(x, y2-t, c)
		}
		for y := y1; y <= y2; y++ {
			canvas.Set(x1+t, y, c)
			canvas.Set(x2-t, y, c)
		}
	}
}

func drawLabel(canvas *image.RGBA, x, y int, label string, c color.RGBA) {
	if y < basicfont.Face7x13.Ascent {
		y = basicfont.Face7x13.Ascent
	}

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(label)
}
