package render

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bilihot/bilihot/bilibili"
	"github.com/bilihot/bilihot/filesystem"
)

// ErrFileWrite is matched by every WriteJSON failure.
var ErrFileWrite = errors.New("failed to write JSON")

// WriteJSON writes v to path as two-space indented UTF-8 JSON. Non-ASCII
// and HTML characters are written literally.
func WriteJSON(path string, v bilibili.Video) (err error) {
	f, err := filesystem.API().Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrFileWrite, cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}
