package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/BeatGlow/wasmframe"
	"github.com/BeatGlow/wasmframe/pixel"
	"github.com/BeatGlow/wasmframe/preview"
)

func TestAnswer(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	if err := app.Run([]string{"frame-preview", "answer"}); err != nil {
		t.Fatal(err)
	}
	if v := strings.TrimSpace(buf.String()); v != "42" {
		t.Errorf("expected 42, got %q", v)
	}
}

func TestRenderFrames(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frame-%02d.png")
	args := []string{"frame-preview", "render", "--frames", "2", "--start", "5", "--workers", "2", "--out", out}
	if err := newApp().Run(args); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"frame-05.png", "frame-06.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if v := img.Bounds().Size(); v.X != wasmframe.Width || v.Y != wasmframe.Height {
			t.Errorf("%s: unexpected size %s", name, v)
		}
	}

	// Frame 5 at the origin is f + 0.
	f, err := os.Open(filepath.Join(dir, "frame-05.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	want := pixel.ABGR{V: 5 | pixel.Opaque}
	if r, g, b, a := img.At(0, 0).RGBA(); [4]uint32{r, g, b, a} != rgba(want) {
		t.Errorf("expected origin %#08x, got %v", want.V, img.At(0, 0))
	}
}

func rgba(c pixel.ABGR) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestRenderFramesScaledLabel(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "f%d.bmp")
	args := []string{"frame-preview", "render", "--pattern", "xor", "--size", "64", "--kernel", "nearest", "--label", "--out", out}
	if err := newApp().Run(args); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir, "f0.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if v := img.Bounds().Size(); v.X != 64 || v.Y != 64 {
		t.Errorf("expected 64x64, got %s", v)
	}
	// The top padding of the label box is black.
	x, y := preview.LabelMargin+preview.LabelRadius, preview.LabelMargin+1
	if r, g, b, _ := img.At(x, y).RGBA(); r|g|b != 0 {
		t.Errorf("expected label background at (%d,%d), got %v", x, y, img.At(x, y))
	}
}

func TestRenderFramesErrors(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"--pattern", "plasma"},
		{"--workers", "-1"},
		{"--frames", "-1"},
		{"--format", "gif"},
		{"--kernel", "lanczos"},
		{"--out", filepath.Join(dir, "frame-%d.jpg")},
	}
	for _, test := range tests {
		args := append([]string{"frame-preview", "render", "--out", filepath.Join(dir, "f%d.png")}, test...)
		if err := newApp().Run(args); err == nil {
			t.Errorf("%v: expected error", test)
		}
	}
}
