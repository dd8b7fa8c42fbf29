package filestorage

import "mime/multipart"

// Storage persists uploaded files and deletes them when their note goes away
type Storage interface {
	// SaveUpload stores a multipart upload and returns the path recorded on
	// the note as its fileUrl.
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)

	// Delete removes a stored file given its recorded fileUrl. Deleting a
	// missing file is not an error.
	Delete(fileURL string) error

	// FullPath resolves a recorded fileUrl to an absolute filesystem path
	FullPath(fileURL string) string
}
