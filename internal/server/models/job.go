package models

// ThumbnailJob is the transient work item placed on the job queue when an
// image entry is created. It only carries identifiers; the worker reloads
// the entry to find the content object.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}
