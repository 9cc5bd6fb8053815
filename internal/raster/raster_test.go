package raster

import (
	"errors"
	"testing"
)

func TestFromBytes_Dimensions(t *testing.T) {
	// 3 channels, width 4 -> 13 pixels fit into len 40 (floor(40/3)=13, height=3 truncates row 4)
	buf := make([]byte, 40)
	for i := range buf {
		buf[i] = byte(i)
	}

	img, err := FromBytes(buf, 4, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width() != 4 {
		t.Errorf("width: got %d, want 4", img.Width())
	}
	if img.Height() != 3 {
		t.Errorf("height: got %d, want 3 (floor(13/4))", img.Height())
	}
	if len(img.Pixel(0, 0)) != 3 {
		t.Errorf("pixel length: got %d, want 3", len(img.Pixel(0, 0)))
	}
}

func TestFromBytes_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		buf      []byte
		width    int
		channels int
	}{
		{"empty buffer", nil, 1, 1},
		{"zero width", []byte{1, 2, 3}, 0, 1},
		{"zero channels", []byte{1, 2, 3}, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := FromBytes(c.buf, c.width, c.channels)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFromRGB(t *testing.T) {
	triples := [][3]byte{
		{100, 200, 50}, {20, 150, 80},
		{255, 10, 0}, {100, 200, 50},
	}
	img, err := FromRGB(triples, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("dims: got %dx%d, want 2x2", img.Width(), img.Height())
	}
	got := img.Pixel(1, 1)
	want := []byte{100, 200, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel(1,1)[%d]: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplyInPlace_Grayscale(t *testing.T) {
	triples := [][3]byte{{100, 200, 50}, {20, 150, 80}}
	img, err := FromRGB(triples, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = img.ApplyInPlace(func(px []byte) []byte {
		var sum int
		for _, b := range px {
			sum += int(b)
		}
		return []byte{byte(sum / len(px))}
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if img.ChannelsPerPixel() != 1 {
		t.Fatalf("channels: got %d, want 1", img.ChannelsPerPixel())
	}
	if got, want := img.Pixel(0, 0)[0], byte((100+200+50)/3); got != want {
		t.Errorf("pixel(0,0): got %d, want %d", got, want)
	}
}

func TestApplyInPlace_InconsistentLength(t *testing.T) {
	triples := [][3]byte{{1, 2, 3}, {4, 5, 6}}
	img, err := FromRGB(triples, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	called := 0
	err = img.ApplyInPlace(func(px []byte) []byte {
		called++
		if called == 2 {
			return []byte{0, 0}
		}
		return []byte{0}
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestCloneAndEqual(t *testing.T) {
	triples := [][3]byte{{1, 2, 3}, {4, 5, 6}}
	img, _ := FromRGB(triples, 2)
	clone := img.Clone()
	if !img.Equal(clone) {
		t.Fatal("clone should equal original")
	}
	clone.pix[0] = 255
	if img.Equal(clone) {
		t.Fatal("mutating clone should not affect original")
	}
}
