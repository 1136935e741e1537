package domain

import "fmt"

// Kind classifies a failure by the operation that was being attempted.
// The integer value is the stable code used for cross-system correlation.
//
// Kind implements error so callers can match with errors.Is:
//
//	if errors.Is(err, domain.KindCreatingBucket) { ... }
type Kind int

// Validation kinds. Raised before any request is sent.
const (
	KindEmptyKey          Kind = 101
	KindEmptyTag          Kind = 102
	KindEmptyChecksum     Kind = 103
	KindEmptyContentType  Kind = 104
	KindEmptyBucketName   Kind = 105
	KindInvalidVersion    Kind = 106
	KindInvalidPagination Kind = 107
)

// Object kinds.
const (
	KindCreatingObject         Kind = 201
	KindCreatingObjectVersion  Kind = 202
	KindDeletingObject         Kind = 203
	KindFetchingObject         Kind = 204
	KindFetchingObjectVersion  Kind = 205
	KindFetchingObjectVersions Kind = 206
	KindFetchingObjects        Kind = 207
	KindFetchingObjectContent  Kind = 208
	KindTaggingObjectVersion   Kind = 209
	KindFetchingObjectByTag    Kind = 210
)

// Collection kinds.
const (
	KindCreatingCollection         Kind = 301
	KindCreatingCollectionVersion  Kind = 302
	KindDeletingCollection         Kind = 303
	KindFetchingCollection         Kind = 304
	KindFetchingCollectionVersion  Kind = 305
	KindFetchingCollectionVersions Kind = 306
	KindFetchingCollections        Kind = 307
)

// Bucket kinds.
const (
	KindCreatingBucket  Kind = 401
	KindDeletingBucket  Kind = 402
	KindFetchingBucket  Kind = 403
	KindFetchingBuckets Kind = 404
)

// Config and status kinds.
const (
	KindFetchingConfig Kind = 501
	KindUpdatingConfig Kind = 502
	KindFetchingStatus Kind = 503
)

type kindInfo struct {
	name     string
	template string
}

var kindTable = map[Kind]kindInfo{
	KindEmptyKey:          {"EmptyKey", "Key must not be empty"},
	KindEmptyTag:          {"EmptyTag", "Tag must not be empty"},
	KindEmptyChecksum:     {"EmptyChecksum", "Checksum must not be empty"},
	KindEmptyContentType:  {"EmptyContentType", "Content type must not be empty"},
	KindEmptyBucketName:   {"EmptyBucketName", "Bucket name must not be empty"},
	KindInvalidVersion:    {"InvalidVersion", "Version number must be positive"},
	KindInvalidPagination: {"InvalidPagination", "Pagination offset and limit must not be negative"},

	KindCreatingObject:         {"ErrorCreatingObject", "Error creating object on server"},
	KindCreatingObjectVersion:  {"ErrorCreatingObjectVersion", "Error creating object version on server"},
	KindDeletingObject:         {"ErrorDeletingObject", "Error deleting object on server"},
	KindFetchingObject:         {"ErrorFetchingObject", "Error fetching object from server"},
	KindFetchingObjectVersion:  {"ErrorFetchingObjectVersion", "Error fetching object version from server"},
	KindFetchingObjectVersions: {"ErrorFetchingObjectVersions", "Error fetching object versions from server"},
	KindFetchingObjects:        {"ErrorFetchingObjects", "Error fetching objects from server"},
	KindFetchingObjectContent:  {"ErrorFetchingObjectContent", "Error fetching object content from server"},
	KindTaggingObjectVersion:   {"ErrorTaggingObjectVersion", "Error tagging object version on server"},
	KindFetchingObjectByTag:    {"ErrorFetchingObjectByTag", "Error fetching object by tag from server"},

	KindCreatingCollection:         {"ErrorCreatingCollection", "Error creating collection on server"},
	KindCreatingCollectionVersion:  {"ErrorCreatingCollectionVersion", "Error creating collection version on server"},
	KindDeletingCollection:         {"ErrorDeletingCollection", "Error deleting collection on server"},
	KindFetchingCollection:         {"ErrorFetchingCollection", "Error fetching collection from server"},
	KindFetchingCollectionVersion:  {"ErrorFetchingCollectionVersion", "Error fetching collection version from server"},
	KindFetchingCollectionVersions: {"ErrorFetchingCollectionVersions", "Error fetching collection versions from server"},
	KindFetchingCollections:        {"ErrorFetchingCollections", "Error fetching collections from server"},

	KindCreatingBucket:  {"ErrorCreatingBucket", "Error creating bucket on server"},
	KindDeletingBucket:  {"ErrorDeletingBucket", "Error deleting bucket on server"},
	KindFetchingBucket:  {"ErrorFetchingBucket", "Error fetching bucket metadata from server"},
	KindFetchingBuckets: {"ErrorFetchingBuckets", "Error fetching buckets from server"},

	KindFetchingConfig: {"ErrorFetchingConfig", "Error fetching config from server"},
	KindUpdatingConfig: {"ErrorUpdatingConfig", "Error updating config on server"},
	KindFetchingStatus: {"ErrorFetchingStatus", "Error fetching status from server"},
}

// allKinds is the registry in code order.
var allKinds = []Kind{
	KindEmptyKey, KindEmptyTag, KindEmptyChecksum, KindEmptyContentType,
	KindEmptyBucketName, KindInvalidVersion, KindInvalidPagination,

	KindCreatingObject, KindCreatingObjectVersion, KindDeletingObject,
	KindFetchingObject, KindFetchingObjectVersion, KindFetchingObjectVersions,
	KindFetchingObjects, KindFetchingObjectContent, KindTaggingObjectVersion,
	KindFetchingObjectByTag,

	KindCreatingCollection, KindCreatingCollectionVersion, KindDeletingCollection,
	KindFetchingCollection, KindFetchingCollectionVersion, KindFetchingCollectionVersions,
	KindFetchingCollections,

	KindCreatingBucket, KindDeletingBucket, KindFetchingBucket, KindFetchingBuckets,

	KindFetchingConfig, KindUpdatingConfig, KindFetchingStatus,
}

// Kinds returns every known kind in code order.
// The returned slice is a copy.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)

	return out
}

// Code returns the stable numeric code.
func (k Kind) Code() int {
	return int(k)
}

// Valid reports whether k is part of the taxonomy.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Name returns the symbolic name, e.g. "ErrorCreatingBucket".
func (k Kind) Name() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Template returns the default message every error of this kind starts with.
func (k Kind) Template() string {
	if info, ok := kindTable[k]; ok {
		return info.template
	}

	return fmt.Sprintf("Unknown error (code %d)", int(k))
}

// IsValidation reports whether k belongs to the caller-input group.
func (k Kind) IsValidation() bool {
	return k.Valid() && k >= 100 && k < 200
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return fmt.Sprintf("%s(%d)", k.Name(), int(k))
}

// Error implements the error interface so a Kind can be an errors.Is target.
func (k Kind) Error() string {
	return k.Template()
}
