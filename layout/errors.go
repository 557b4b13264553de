package layout

import "errors"

// ErrInconsistentModel is returned by Model.Validate when the conversion
// tables don't match the text or the glyphs.
var ErrInconsistentModel = errors.New("layout: inconsistent text model")
