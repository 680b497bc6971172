package requests

// UploadFileRequest represents a file upload request. Data carries the
// base64-encoded content for non-folder types.
type UploadFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}
