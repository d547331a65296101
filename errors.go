package qtxt

import "errors"

// Returned (wrapped) by [Text.ReplaceFragment]() when the index is
// out of range. Test for it with [errors.Is].
var ErrFragmentIndex = errors.New("fragment index out of range")
