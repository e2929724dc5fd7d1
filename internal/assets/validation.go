package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Dots are allowed (modio.crt), but the name must be a single path element:
// no separators, no NUL byte, and neither "." nor "..".
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
