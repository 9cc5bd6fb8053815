package grayscale

import (
	"testing"

	"github.com/AnyUserName/imgphash/internal/raster"
)

func TestReduce_AverageOfChannels(t *testing.T) {
	c1, c2, c3 := [3]byte{100, 200, 50}, [3]byte{20, 150, 80}, [3]byte{255, 10, 0}
	src, err := raster.FromRGB([][3]byte{
		c1, c2, c3,
		c1, c3, c2,
		c1, c2, c1,
	}, 3)
	if err != nil {
		t.Fatalf("FromRGB: %v", err)
	}

	out, err := Reduce(src)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out.ChannelsPerPixel() != 1 {
		t.Fatalf("channels: got %d, want 1", out.ChannelsPerPixel())
	}
	if out.Width() != 3 || out.Height() != 3 {
		t.Fatalf("dims: got %dx%d, want 3x3", out.Width(), out.Height())
	}

	want := [][1]byte{
		{116}, {83}, {88},
		{116}, {88}, {83},
		{116}, {83}, {116},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got := out.Pixel(x, y)[0]
			w := want[y*3+x][0]
			if got != w {
				t.Errorf("pixel(%d,%d): got %d, want %d", x, y, got, w)
			}
		}
	}
}

func TestReduce_Idempotent(t *testing.T) {
	src, err := raster.FromRGB([][3]byte{{10, 20, 30}, {40, 50, 60}}, 2)
	if err != nil {
		t.Fatalf("FromRGB: %v", err)
	}

	once, err := Reduce(src)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	twice, err := Reduce(once)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatal("reducing an already-grayscale image should be a no-op")
	}
}

func TestReduce_PreservesSource(t *testing.T) {
	src, err := raster.FromRGB([][3]byte{{10, 20, 30}}, 1)
	if err != nil {
		t.Fatalf("FromRGB: %v", err)
	}
	if _, err := Reduce(src); err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if src.ChannelsPerPixel() != 3 {
		t.Fatalf("source mutated: channels now %d", src.ChannelsPerPixel())
	}
}
