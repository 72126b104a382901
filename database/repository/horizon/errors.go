package horizonRepo

import "errors"

// Errors reported by EditByCriteria when the request carries no usable fields.
// Handlers map both to a 400.
var (
	ErrNoEditCriteria = errors.New("at least one existing field must be provided to identify the horizons to edit")
	ErrNoEditUpdates  = errors.New("at least one new field must be provided to update")
)
