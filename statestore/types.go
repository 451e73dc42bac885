package statestore

import (
	"time"

	"github.com/refstack/refstore"
)

// TaskID identifies a platform background-transfer task.
type TaskID int

// Upload describes one pending background upload, enough to resume or
// finalize it after a crash or relaunch.
type Upload struct {
	ItemKey   string    `json:"key"`
	LibraryID int64     `json:"libraryId"`
	GroupID   int64     `json:"groupId,omitempty"`
	UserID    int64     `json:"userId"`
	RemoteURL string    `json:"remoteUrl"`
	FilePath  string    `json:"filePath"`
	MD5       string    `json:"md5"`
	Size      int64     `json:"size"`
	Date      time.Time `json:"date"`
	SessionID string    `json:"sessionId,omitempty"`
}

// Library returns the library the upload belongs to.
func (u Upload) Library() refstore.LibraryID {
	if u.GroupID != 0 {
		return refstore.GroupLibrary(u.GroupID)
	}
	return refstore.UserLibrary(u.LibraryID)
}
