package models

import "strings"

// FileType is the declared type of an uploaded file, derived from the
// original filename extension. It never changes after the note is created.
type FileType string

const (
	FileTypeTXT  FileType = "txt"
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypePPT  FileType = "ppt"
	FileTypePPTX FileType = "pptx"
	FileTypeJPG  FileType = "jpg"
	FileTypeJPEG FileType = "jpeg"
	FileTypePNG  FileType = "png"
	FileTypeMP3  FileType = "mp3"
	FileTypeMP4  FileType = "mp4"
	FileTypeWAV  FileType = "wav"
)

// ParseFileType maps a filename extension (with or without the leading dot)
// to a FileType. The second return value is false for unsupported types.
func ParseFileType(ext string) (FileType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ft := FileType(ext); ft {
	case FileTypeTXT, FileTypePDF, FileTypeDOCX, FileTypePPT, FileTypePPTX,
		FileTypeJPG, FileTypeJPEG, FileTypePNG, FileTypeMP3, FileTypeMP4, FileTypeWAV:
		return ft, true
	}
	return "", false
}

// IsImage reports whether the type is OCR-extracted
func (ft FileType) IsImage() bool {
	return ft == FileTypeJPG || ft == FileTypeJPEG || ft == FileTypePNG
}

// IsMedia reports whether the type goes through audio transcription
func (ft FileType) IsMedia() bool {
	return ft == FileTypeMP3 || ft == FileTypeMP4 || ft == FileTypeWAV
}

// Category classifies a note
type Category string

const (
	CategoryLecture    Category = "lecture"
	CategoryAssignment Category = "assignment"
	CategoryStudy      Category = "study"
	CategoryResearch   Category = "research"
	CategoryOther      Category = "other"
)

// ParseCategory returns the category for a raw value, defaulting to "other"
// for empty input. The second return value is false for unknown values.
func ParseCategory(raw string) (Category, bool) {
	if raw == "" {
		return CategoryOther, true
	}
	switch c := Category(strings.ToLower(raw)); c {
	case CategoryLecture, CategoryAssignment, CategoryStudy, CategoryResearch, CategoryOther:
		return c, true
	}
	return "", false
}

// ProcessingStatus is the note lifecycle marker. It only ever moves forward:
// pending -> processing -> completed | failed. Both completed and failed are
// terminal.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// Terminal reports whether the status permits no further transition
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether moving from s to next respects the forward
// only lifecycle.
func (s ProcessingStatus) CanTransition(next ProcessingStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	}
	return false
}

// Permission is a collaborator access level. Levels are stored and returned
// but not yet enforced as an access gate; enforcement is an extension point.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
	PermissionAdmin Permission = "admin"
)

// ParsePermission validates a raw permission value, defaulting to read
func ParsePermission(raw string) (Permission, bool) {
	if raw == "" {
		return PermissionRead, true
	}
	switch p := Permission(strings.ToLower(raw)); p {
	case PermissionRead, PermissionWrite, PermissionAdmin:
		return p, true
	}
	return "", false
}
