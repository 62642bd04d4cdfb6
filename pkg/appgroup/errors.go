package appgroup

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Error kinds returned by this package. Use errors.Is to classify a failure.
var (
	ErrDiscovery       = errors.New("xcode project discovery failed")
	ErrRead            = errors.New("read failed")
	ErrParse           = errors.New("parse failed")
	ErrWrite           = errors.New("write failed")
	ErrProfileMismatch = errors.New("provisioning profile does not grant app group")
)

// PartialUpdateError is returned when some entitlements files were already
// rewritten before a later one failed. Rewritten files are not rolled back.
type PartialUpdateError struct {
	Updated []string // files rewritten before the failure
	Failed  string   // file that could not be patched
	Err     error
}

func (e *PartialUpdateError) Error() string {
	names := make([]string, len(e.Updated))
	for i, p := range e.Updated {
		names[i] = filepath.Base(p)
	}
	return fmt.Sprintf("failed to patch %s (already updated: %s): %v",
		filepath.Base(e.Failed), strings.Join(names, ", "), e.Err)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}
