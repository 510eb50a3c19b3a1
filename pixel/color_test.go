package pixel

import (
	"image/color"
	"testing"
)

func TestABGR(t *testing.T) {
	c := NewABGR(0x12, 0x34, 0x56, 0xFF)
	if c.V != 0xFF_56_34_12 {
		t.Fatalf("expected packed value 0xff563412, got %#08x", c.V)
	}
	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xffff {
		t.Errorf("expected 1212 3434 5656 ffff, got %04x %04x %04x %04x", r, g, b, a)
	}
	if v := ABGRModel.Convert(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}); v != c {
		t.Errorf("expected conversion to %#+v, got %#+v", c, v)
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		Field Field
		In    uint32
		Want  uint32
	}{
		{Field{0, 5}, 0x1f, 0xffff},
		{Field{5, 6}, 0x3f << 5, 0xffff},
		{Field{11, 5}, 0x10 << 11, 0x8421},
		{Field{0, 8}, 0xab, 0xabab},
		{Field{24, 8}, 0x80 << 24, 0x8080},
		{Field{}, 0xffffffff, 0},
	}
	for _, test := range tests {
		if v := test.Field.unpack(test.In); v != test.Want {
			t.Errorf("%+v: expected %#04x for %#x, got %#04x", test.Field, test.Want, test.In, v)
		}
	}
}

func TestFormatPack(t *testing.T) {
	tests := []struct {
		Format *Format
		Color  color.Color
		Want   uint32
	}{
		{RGB565, color.White, 0xffff},
		{RGB565, color.RGBA{R: 0xff, A: 0xff}, 0xf800},
		{BGR565, color.RGBA{R: 0xff, A: 0xff}, 0x001f},
		{XRGB8888, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, 0x00112233},
		{ABGR8888, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, 0xff332211},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			if v := test.Format.Pack(test.Color); v != test.Want {
				it.Errorf("expected %#08x, got %#08x", test.Want, v)
			}
		})
	}
}
