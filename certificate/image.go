package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Canvas dimensions match the original certificate layout.
const (
	certWidth  = 1200
	certHeight = 850
)

// ImageRenderer draws the certificate to a PNG: layered gold frame, dark
// header band, learner and course panels, detail block and two signature
// lines. It needs a TTF font; without one it returns an error and the
// generator falls back to markup.
type ImageRenderer struct {
	FontPath string
}

// Render produces the PNG artifact.
func (r *ImageRenderer) Render(data Data) (*Artifact, error) {
	if r.FontPath == "" {
		return nil, errors.New("no certificate font configured")
	}
	fontBytes, err := os.ReadFile(r.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsedFont, &truetype.Options{Size: size, DPI: 72})
	}

	dc := gg.NewContext(certWidth, certHeight)

	// Soft gradient background.
	gradient := gg.NewLinearGradient(0, 0, certWidth, certHeight)
	gradient.AddColorStop(0, parseHex("#f8f9fa"))
	gradient.AddColorStop(1, parseHex("#e9ecef"))
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, certWidth, certHeight)
	dc.Fill()

	// Double gold frame.
	dc.SetHexColor("#d4af37")
	dc.SetLineWidth(15)
	dc.DrawRectangle(20, 20, certWidth-40, certHeight-40)
	dc.Stroke()
	dc.SetHexColor("#f39c12")
	dc.SetLineWidth(3)
	dc.DrawRectangle(40, 40, certWidth-80, certHeight-80)
	dc.Stroke()

	// Header band.
	dc.SetHexColor("#2c3e50")
	dc.DrawRectangle(40, 40, certWidth-80, 150)
	dc.Fill()

	dc.SetFontFace(face(48))
	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored("Certificate of Completion", certWidth/2, 110, 0.5, 0.5)

	dc.SetFontFace(face(24))
	dc.SetHexColor("#ecf0f1")
	dc.DrawStringAnchored("This is to certify that", certWidth/2, 160, 0.5, 0.5)

	// Learner name panel.
	dc.SetRGBA(52/255.0, 152/255.0, 219/255.0, 0.1)
	dc.DrawRectangle(certWidth/2-300, 190, 600, 80)
	dc.Fill()
	dc.SetFontFace(face(42))
	dc.SetHexColor("#2c3e50")
	dc.DrawStringAnchored(data.UserName, certWidth/2, 235, 0.5, 0.5)

	dc.SetFontFace(face(24))
	dc.SetHexColor("#34495e")
	dc.DrawStringAnchored("has successfully completed the course", certWidth/2, 305, 0.5, 0.5)

	// Course title panel.
	dc.SetRGBA(46/255.0, 204/255.0, 113/255.0, 0.1)
	dc.DrawRectangle(certWidth/2-350, 340, 700, 80)
	dc.Fill()
	dc.SetFontFace(face(36))
	dc.SetHexColor("#27ae60")
	dc.DrawStringAnchored(data.CourseTitle, certWidth/2, 385, 0.5, 0.5)

	// Detail block.
	dc.SetFontFace(face(18))
	dc.SetHexColor("#7f8c8d")
	dc.DrawString("Date: "+data.CompletionDate, 100, 470)
	dc.DrawString("Certificate ID: "+data.ID, 100, 500)
	dc.DrawString("Score: "+data.Score, 100, 530)
	dc.DrawString("Duration: "+data.Duration, 100, 560)

	// Signature lines.
	dc.SetHexColor("#34495e")
	dc.SetLineWidth(2)
	dc.DrawLine(200, 670, 400, 670)
	dc.Stroke()
	dc.DrawLine(700, 670, 900, 670)
	dc.Stroke()

	dc.SetFontFace(face(16))
	dc.DrawStringAnchored(data.Instructor, 300, 700, 0.5, 0.5)
	dc.DrawStringAnchored("Course Instructor", 300, 720, 0.5, 0.5)
	dc.DrawStringAnchored(data.Issuer, 800, 700, 0.5, 0.5)
	dc.DrawStringAnchored("Issuing Authority", 800, 720, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return &Artifact{
		ContentType: "image/png",
		FileName:    downloadName(data.CourseTitle) + "_Certificate.png",
		Data:        buf.Bytes(),
	}, nil
}

// downloadName collapses whitespace in a title to underscores for the
// download file name.
func downloadName(title string) string {
	return strings.Join(strings.Fields(title), "_")
}

// parseHex converts a #rrggbb string for gradient stops (SetHexColor only
// applies to the context's current color).
func parseHex(hex string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
