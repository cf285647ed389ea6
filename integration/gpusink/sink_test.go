// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpusink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/corners"
	"github.com/gogpu/gpucontext"
)

// mockTexture implements gpucontext.Texture for testing.
type mockTexture struct {
	width         int
	height        int
	data          []byte
	premultiplied bool
	destroyed     int
}

func (m *mockTexture) Width() int                   { return m.width }
func (m *mockTexture) Height() int                  { return m.height }
func (m *mockTexture) SetPremultiplied(p bool)      { m.premultiplied = p }
func (m *mockTexture) Destroy()                     { m.destroyed++ }
func (m *mockTexture) UpdateData(data []byte) error { return nil }

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   make([]byte, len(data)),
	}
	copy(tex.data, data)
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	drawnX    float32
	drawnY    float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn = tex
	m.drawnX = x
	m.drawnY = y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	return m.creator
}

func TestNew(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilCreator) {
		t.Errorf("New(nil) error = %v, want ErrNilCreator", err)
	}
	if _, err := FromDrawer(nil); !errors.Is(err, ErrNilCreator) {
		t.Errorf("FromDrawer(nil) error = %v, want ErrNilCreator", err)
	}
	if _, err := FromDrawer(&mockDrawer{creator: &mockCreator{}}); err != nil {
		t.Errorf("FromDrawer() unexpected error = %v", err)
	}
}

func TestCreateTextureExpandsCoverage(t *testing.T) {
	creator := &mockCreator{}
	sink, err := New(creator)
	if err != nil {
		t.Fatal(err)
	}

	tex, err := sink.CreateTexture(2, 1, 1, []byte{0, 200})
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}

	if tex.Width() != 2 || tex.Height() != 1 || tex.Channels() != 1 {
		t.Errorf("texture = %dx%d/%d, want 2x1/1", tex.Width(), tex.Height(), tex.Channels())
	}
	if len(creator.textures) != 1 {
		t.Fatalf("created %d GPU textures, want 1", len(creator.textures))
	}

	up := creator.textures[0]
	want := []byte{0, 0, 0, 0, 200, 200, 200, 200}
	if !bytes.Equal(up.data, want) {
		t.Errorf("uploaded %v, want %v", up.data, want)
	}
	if !up.premultiplied {
		t.Error("texture should be marked premultiplied")
	}
}

func TestCreateTextureRGBAPassThrough(t *testing.T) {
	creator := &mockCreator{}
	sink, _ := New(creator)

	data := []byte{1, 2, 3, 4}
	tex, err := sink.CreateTexture(1, 1, 4, data)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Channels() != 4 {
		t.Errorf("Channels() = %d, want 4", tex.Channels())
	}
	if !bytes.Equal(creator.textures[0].data, data) {
		t.Errorf("uploaded %v, want %v", creator.textures[0].data, data)
	}
}

func TestCreateTextureErrors(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		channels int
		data     []byte
		fail     bool
		wantErr  error
	}{
		{name: "zero width", width: 0, height: 1, channels: 1, data: nil, wantErr: corners.ErrInvalidDimensions},
		{name: "short data", width: 2, height: 2, channels: 1, data: make([]byte, 3), wantErr: corners.ErrDataSize},
		{name: "two channels", width: 1, height: 1, channels: 2, data: make([]byte, 2), wantErr: ErrUnsupportedChannels},
		{name: "creator failure", width: 1, height: 1, channels: 1, data: make([]byte, 1), fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{failNext: tt.fail}
			sink, _ := New(creator)

			tex, err := sink.CreateTexture(tt.width, tt.height, tt.channels, tt.data)
			if err == nil {
				t.Fatalf("CreateTexture() = %v, want error", tex)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if len(creator.textures) != 0 {
				t.Errorf("created %d GPU textures on error", len(creator.textures))
			}
		})
	}
}

func TestDraw(t *testing.T) {
	dc := &mockDrawer{creator: &mockCreator{}}
	sink, err := FromDrawer(dc)
	if err != nil {
		t.Fatal(err)
	}

	f := corners.NewFactory(sink)
	tex, err := f.Corner(4)
	if err != nil {
		t.Fatal(err)
	}

	if err := Draw(dc, tex, 10, 20); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if dc.drawCount != 1 || dc.drawnX != 10 || dc.drawnY != 20 {
		t.Errorf("drawn %d times at (%v, %v)", dc.drawCount, dc.drawnX, dc.drawnY)
	}
	if dc.drawn != tex.(*Texture).GPU() {
		t.Error("Draw() did not pass the host texture")
	}

	// The corner's top-left pixel is fully covered.
	up := dc.creator.textures[0]
	if up.width != 4 || up.data[3] != 255 {
		t.Errorf("uploaded width %d alpha %d, want 4 and 255", up.width, up.data[3])
	}
}

func TestDrawForeignTexture(t *testing.T) {
	dc := &mockDrawer{creator: &mockCreator{}}
	tex, _ := corners.NewMemorySink().CreateTexture(1, 1, 1, []byte{9})

	if err := Draw(dc, tex, 0, 0); !errors.Is(err, ErrForeignTexture) {
		t.Errorf("Draw() error = %v, want ErrForeignTexture", err)
	}
	if dc.drawCount != 0 {
		t.Error("foreign texture should not be drawn")
	}
}

func TestDestroy(t *testing.T) {
	creator := &mockCreator{}
	sink, _ := New(creator)
	tex, err := sink.CreateTexture(3, 2, 1, make([]byte, 6))
	if err != nil {
		t.Fatal(err)
	}

	gt := tex.(*Texture)
	gt.Destroy()
	gt.Destroy()

	if n := creator.textures[0].destroyed; n != 1 {
		t.Errorf("Destroy called %d times on host texture, want 1", n)
	}
	if gt.Width() != 3 || gt.Height() != 2 {
		t.Errorf("size after Destroy = %dx%d, want 3x2", gt.Width(), gt.Height())
	}
	if err := Draw(&mockDrawer{}, gt, 0, 0); !errors.Is(err, ErrForeignTexture) {
		t.Errorf("Draw() after Destroy error = %v", err)
	}
}

func TestExpandCoverage(t *testing.T) {
	got := ExpandCoverage([]byte{7, 255})
	want := []byte{7, 7, 7, 7, 255, 255, 255, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("ExpandCoverage() = %v, want %v", got, want)
	}
	if len(ExpandCoverage(nil)) != 0 {
		t.Error("ExpandCoverage(nil) should be empty")
	}
}
