package ogmaker

import (
	"errors"
	"fmt"
)

// Per-item rendering failure kinds. Match them with errors.Is on the error
// returned by Renderer.Render or Renderer.Generate.
var (
	ErrResourceLoad = errors.New("resource load")
	ErrDraw         = errors.New("draw")
	ErrEncode       = errors.New("encode")
	ErrWrite        = errors.New("write")
)

// RenderError is a failure to produce the image for one item.
type RenderError struct {
	Title string // title of the item being rendered
	Kind  error  // one of ErrResourceLoad, ErrDraw, ErrEncode, ErrWrite
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v error for %q: %v", e.Kind, e.Title, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
