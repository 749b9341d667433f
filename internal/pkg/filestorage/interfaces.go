package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for storing uploaded artifacts.
type FileStorage interface {
	// SaveArtifact stores an uploaded file and returns the generated
	// filename under which it can be retrieved. The field name is used
	// as a filename prefix so artifacts are recognizable on disk.
	SaveArtifact(field string, fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not
	// an error.
	DeleteFile(filename string) error
}
