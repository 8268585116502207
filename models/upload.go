package models

// ImageUpload carries a single multipart image payload into the upload
// service after it has been read off the wire.
type ImageUpload struct {
	// Filename is the original client-side file name. Only its extension is
	// used; the stored object key is generated server-side.
	Filename string

	// ContentType is the declared MIME type of the payload. Must be one of
	// the allowed image types.
	ContentType string

	// Data is the full payload.
	Data []byte
}

// UploadResult is the success body of the image upload endpoint.
type UploadResult struct {
	// URL is the public URL of the stored object.
	URL string `json:"url"`

	// Filename is the generated storage key, namespaced by the owner's
	// user identifier.
	Filename string `json:"filename"`
}
