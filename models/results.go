package models

// InsertResult mirrors the acknowledgement of a single-document insert.
// Conflicts reuse the same shape with Acknowledged=false and a Message.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// UpdateResult mirrors the acknowledgement of a single-document update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the acknowledgement of a single-document delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Conflict builds the body returned for a rejected write.
func Conflict(message string) InsertResult {
	return InsertResult{Acknowledged: false, Message: message}
}
