//go:build !windows

package window

import (
	"fmt"

	"github.com/bcmister/mondpi/internal/config"
	"github.com/bcmister/mondpi/internal/dpi"
)

// Run reports that the window needs Windows.
func Run(opts config.Options) error {
	return fmt.Errorf("%w: %w: %w", ErrInit, ErrCreate, dpi.ErrUnsupported)
}
