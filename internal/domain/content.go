package domain

// Upload is the content of one object version sent to the repository.
type Upload struct {
	Key         string
	ContentType string
	// Checksum is the client-computed digest the repository verifies.
	Checksum string
	Content  []byte
}

// Validate reports the first missing field as a validation error.
func (u Upload) Validate() error {
	switch {
	case u.Key == "":
		return NewValidationError(KindEmptyKey, "")
	case u.ContentType == "":
		return NewValidationError(KindEmptyContentType, u.Key)
	case u.Checksum == "":
		return NewValidationError(KindEmptyChecksum, u.Key)
	default:
		return nil
	}
}

// Pagination selects a page of a listing. Zero Limit leaves the page size to
// the repository.
type Pagination struct {
	Offset         int
	Limit          int
	IncludeDeleted bool
}

// Validate rejects negative offsets and limits.
func (p Pagination) Validate() error {
	if p.Offset < 0 || p.Limit < 0 {
		return NewValidationError(KindInvalidPagination, "")
	}

	return nil
}

// ValidateKey rejects an empty object or collection key.
func ValidateKey(key string) error {
	if key == "" {
		return NewValidationError(KindEmptyKey, "")
	}

	return nil
}

// ValidateTag rejects an empty tag.
func ValidateTag(key, tag string) error {
	if tag == "" {
		return NewValidationError(KindEmptyTag, key)
	}

	return nil
}

// ValidateVersion rejects version numbers below 1.
func ValidateVersion(key string, version int) error {
	if version < 1 {
		return NewValidationError(KindInvalidVersion, key)
	}

	return nil
}
