// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Request
	KeyMethodNotAllowed   = "request.method_not_allowed"
	KeyInvalidFormat      = "request.invalid_format"
	KeyInvalidContentType = "request.invalid_content_type"
	KeyRateLimited        = "request.rate_limited"
	KeyRouteNotFound      = "request.route_not_found"
	KeyInternalError      = "request.internal_error"

	// Query
	KeyInvalidPagination = "query.invalid_pagination"
	KeyInvalidFilter     = "query.invalid_filter"

	// Validation
	KeyValidationMissingFields = "validation.missing_fields"
	KeyValidationInvalid       = "validation.invalid"
	KeyValidationAddress       = "validation.invalid_address"

	// Resources
	KeyIPNotFound        = "ip.not_found"
	KeyIPAlreadyExists   = "ip.already_registered"
	KeyListingNotFound   = "listing.not_found"
	KeyProposalNotFound  = "proposal.not_found"
	KeyViolationNotFound = "violation.not_found"

	// File Upload
	KeyFileNoFiles         = "file.no_files"
	KeyFileTooLarge        = "file.too_large"
	KeyFileRequestTooLarge = "file.request_too_large"
	KeyFileUploadFailed    = "file.upload_failed"
)
