//go:build sdl2
// +build sdl2

// Command presenter is a minimal demonstration host: it opens an SDL2
// window and streams a bitmap to it every frame, exercising the
// Presenter interface against a real windowing backend.
package main

import (
	"fmt"
	"os"
	"unsafe"

	ggdt "github.com/gered/ggdt-sub001"
	"github.com/veandco/go-sdl2/sdl"
)

// Presenter writes a back-buffer bitmap to a window, expanding indexed
// bitmaps through a palette on the way.
type Presenter interface {
	Present(back *ggdt.IndexedBitmap, pal *ggdt.Palette) error
	PresentRGBA(back *ggdt.RgbaBitmap) error
	PollEvents() (mouseX, mouseY int32, quit bool)
	Close()
}

// sdl2Presenter implements Presenter directly against go-sdl2 with one
// window, one renderer and one streaming ARGB8888 texture.
type sdl2Presenter struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int32
	height   int32
}

// NewSDL2Presenter opens a window of the given size and prepares a
// streaming ARGB8888 texture to present into.
func NewSDL2Presenter(title string, width, height int32) (*sdl2Presenter, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			sdl.Quit()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &sdl2Presenter{window: window, renderer: renderer, texture: texture, width: width, height: height}, nil
}

// Present expands an indexed back-buffer through pal and streams the
// result to the window.
func (p *sdl2Presenter) Present(back *ggdt.IndexedBitmap, pal *ggdt.Palette) error {
	rgba, err := pal.ToRGBA(back)
	if err != nil {
		return err
	}
	return p.PresentRGBA(rgba)
}

// PresentRGBA streams an RGBA back-buffer directly to the window.
func (p *sdl2Presenter) PresentRGBA(back *ggdt.RgbaBitmap) error {
	if int32(back.Width()) != p.width || int32(back.Height()) != p.height {
		return fmt.Errorf("presenter: bitmap size %dx%d does not match window size %dx%d", back.Width(), back.Height(), p.width, p.height)
	}

	pixels := back.Pixels()
	pitch := int(p.width) * 4
	if err := p.texture.Update(nil, unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}

	p.renderer.Clear()
	p.renderer.Copy(p.texture, nil, nil)
	p.renderer.Present()
	return nil
}

// PollEvents drains the SDL2 event queue, reporting the latest mouse
// position and whether the window was asked to close.
func (p *sdl2Presenter) PollEvents() (mouseX, mouseY int32, quit bool) {
	for {
		event := sdl.PollEvent()
		if event == nil {
			break
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.MouseMotionEvent:
			mouseX, mouseY = e.X, e.Y
		}
	}
	mouseX, mouseY, _ = sdl.GetMouseState()
	return
}

// Close tears down the window, renderer, texture, and SDL2 itself.
func (p *sdl2Presenter) Close() {
	if p.texture != nil {
		p.texture.Destroy()
	}
	if p.renderer != nil {
		p.renderer.Destroy()
	}
	if p.window != nil {
		p.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	const width, height = 320, 240

	presenter, err := NewSDL2Presenter("presenter", width, height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer presenter.Close()

	back, err := ggdt.NewBitmap[uint32](width, height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	back.Clear(uint32(ggdt.ColorBlack))

	cursor := ggdt.DefaultCursorRGBA()
	overlay, err := ggdt.NewCustomMouseCursor[uint32](cursor, uint32(ggdt.DefaultCursorRGBATransparent), 0, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for {
		mouseX, mouseY, quit := presenter.PollEvents()
		if quit {
			return
		}

		overlay.Hide(back)
		overlay.Update(mouseX, mouseY)
		overlay.Render(back)

		if err := presenter.PresentRGBA(back); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
}
