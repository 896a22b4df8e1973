package model

// User application user with on-chain reward progress
type User struct {
	UserID      string   `json:"userId" example:"fdb12d51-0e3f-4ff8-821e-fbc255d8e413"` // UUID v4, primary identifier
	SolanaToken string   `json:"solanaToken" example:"fdb12d51-0e3f-4ff8-821e-fbc255d8e413"`
	ChapterIDs  []string `json:"chapterIds"` // completed chapters, append-only, duplicates allowed
}

// Clone returns a copy decoupled from the receiver. The chapter slice is
// duplicated so callers can serialize the copy without further locking.
func (u User) Clone() User {
	chapters := make([]string, len(u.ChapterIDs))
	copy(chapters, u.ChapterIDs)
	return User{
		UserID:      u.UserID,
		SolanaToken: u.SolanaToken,
		ChapterIDs:  chapters,
	}
}
