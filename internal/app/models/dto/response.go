package dto

// APIResponse is the envelope returned by every notes endpoint. Exactly one
// of Note, Notes or Message is set on success; Error is set otherwise.
type APIResponse struct {
	Success    bool            `json:"success"`
	Note       *NoteResponse   `json:"note,omitempty"`
	Notes      []NoteResponse  `json:"notes,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
}

// NoteSuccess wraps a single note
func NoteSuccess(note *NoteResponse) APIResponse {
	return APIResponse{Success: true, Note: note}
}

// NotesSuccess wraps a note list. A nil slice is rendered as an empty array.
func NotesSuccess(notes []NoteResponse, pagination PaginationInfo) APIResponse {
	if notes == nil {
		notes = []NoteResponse{}
	}
	return APIResponse{Success: true, Notes: notes, Pagination: &pagination}
}

// MessageSuccess wraps a plain confirmation message
func MessageSuccess(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// Failure wraps an error detail
func Failure(detail *ErrorDetail) APIResponse {
	return APIResponse{Success: false, Error: detail}
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
