package composite

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/enums"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/metrics"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/types"
)

// ErrRenderInFlight is returned when a render is requested while another one
// is still running. Callers drop the request instead of queueing it; the next
// user action will ask for a fresh preview anyway.
var ErrRenderInFlight = errors.New("composite render already in flight")

// Layout constants, expressed as fractions of the base image size. The front
// design sits on the visible face; the back design only appears from the side
// view, shifted toward the trailing edge of the ball.
const (
	frontCenterX = 0.50
	frontCenterY = 0.42
	backCenterX  = 0.78
	backCenterY  = 0.46
	designWidth  = 0.34
	textFontSize = 42
)

// Builder flattens the base ball photo and the current side designs into a
// single PNG data URI. At most one render runs at a time.
type Builder struct {
	base     image.Image
	font     *opentype.Font
	inFlight atomic.Bool
	metrics  *metrics.RenderMetrics
}

// NewBuilder wires a builder around an already-loaded base image. The font
// bytes must parse as an OpenType font; pass nil to use the bundled default.
func NewBuilder(base image.Image, fontData []byte, m *metrics.RenderMetrics) (*Builder, error) {
	if base == nil {
		return nil, errors.New("composite builder requires a base image")
	}
	if fontData == nil {
		fontData = goregular.TTF
	}
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse composite font: %w", err)
	}
	return &Builder{base: base, font: parsed, metrics: m}, nil
}

// Load builds a Builder from the configured base image and font paths.
func Load(cfg config.CustomizerConfig, m *metrics.RenderMetrics) (*Builder, error) {
	base, err := imaging.Open(cfg.BaseImagePath)
	if err != nil {
		return nil, fmt.Errorf("open base image %s: %w", cfg.BaseImagePath, err)
	}

	var fontData []byte
	if cfg.FontPath != "" {
		fontData, err = os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", cfg.FontPath, err)
		}
	}
	return NewBuilder(base, fontData, m)
}

// Build renders the design onto the base photo and returns a PNG data URI.
// The canvas lives only for the duration of the call. A second call while one
// is running returns ErrRenderInFlight.
func (b *Builder) Build(design types.Customization, angle enums.ViewAngle) (string, error) {
	if !angle.IsValid() {
		return "", fmt.Errorf("invalid view angle %q", angle)
	}
	if !b.inFlight.CompareAndSwap(false, true) {
		b.metrics.IncDropped(angle.String())
		return "", ErrRenderInFlight
	}
	defer b.inFlight.Store(false)

	start := time.Now()
	uri, err := b.render(design, angle)
	b.metrics.ObserveDuration(angle.String(), time.Since(start))
	if err != nil {
		b.metrics.IncFailure(angle.String())
		return "", err
	}
	b.metrics.IncSuccess(angle.String())
	return uri, nil
}

func (b *Builder) render(design types.Customization, angle enums.ViewAngle) (string, error) {
	canvas := imaging.Clone(b.base)

	if !design.Front.None() {
		if err := b.drawSide(canvas, design.Front, frontCenterX, frontCenterY); err != nil {
			return "", fmt.Errorf("front side: %w", err)
		}
	}

	// The second print side faces away from a top-down camera, so it only
	// shows up in the side view.
	if angle == enums.ViewAngleSide && !design.Back.None() {
		if err := b.drawSide(canvas, design.Back, backCenterX, backCenterY); err != nil {
			return "", fmt.Errorf("back side: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return "", fmt.Errorf("encode composite: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (b *Builder) drawSide(canvas *image.NRGBA, side types.SideCustomization, cx, cy float64) error {
	switch side.Kind {
	case enums.SideKindLogo:
		return b.drawLogo(canvas, side.Content, cx, cy)
	case enums.SideKindText:
		return b.drawText(canvas, side, cx, cy)
	default:
		return nil
	}
}

func (b *Builder) drawLogo(canvas *image.NRGBA, dataURI string, cx, cy float64) error {
	logo, err := decodeDataURI(dataURI)
	if err != nil {
		return err
	}

	bounds := canvas.Bounds()
	targetW := int(float64(bounds.Dx()) * designWidth)
	resized := imaging.Resize(logo, targetW, 0, imaging.Lanczos)

	pos := image.Pt(
		int(float64(bounds.Dx())*cx)-resized.Bounds().Dx()/2,
		int(float64(bounds.Dy())*cy)-resized.Bounds().Dy()/2,
	)
	result := imaging.Overlay(canvas, resized, pos, 1.0)
	copy(canvas.Pix, result.Pix)
	return nil
}

func (b *Builder) drawText(canvas *image.NRGBA, side types.SideCustomization, cx, cy float64) error {
	face, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    textFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("build font face: %w", err)
	}
	defer face.Close()

	textColor := parseHexColor(side.Color)
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	bounds := canvas.Bounds()
	width := drawer.MeasureString(side.Content)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(int(float64(bounds.Dx())*cx)) - width/2,
		Y: fixed.I(int(float64(bounds.Dy()) * cy)),
	}
	drawer.DrawString(side.Content)
	return nil
}

func decodeDataURI(uri string) (image.Image, error) {
	idx := strings.Index(uri, "base64,")
	if idx < 0 {
		return nil, errors.New("design payload is not a base64 data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode design payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode design image: %w", err)
	}
	return img, nil
}

func parseHexColor(hex string) color.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return color.Black
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
