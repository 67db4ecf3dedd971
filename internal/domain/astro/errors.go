package astro

// Error codes attached to apperrors.AppError values produced by this package.
const (
	CodeInvalidMoment     = "invalid_moment"
	CodeInvalidCoordinate = "invalid_coordinate"
	CodeEphemerisFailure  = "ephemeris_failure"
	CodeCalculation       = "calculation_error"
	CodeInvalidInput      = "invalid_input"
	CodeStorage           = "storage_error"
	CodeNotFound          = "profile_not_found"
)
