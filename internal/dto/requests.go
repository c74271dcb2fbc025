package dto

import "time"

// CreateMemberRequest is the body for POST /api/members
type CreateMemberRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// CreateBoardRequest is the body for POST /api/boards
type CreateBoardRequest struct {
	ID    string `json:"id" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// UpdateBoardRequest is the body for PATCH /api/boards/:id
type UpdateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateColumnRequest is the body for POST /api/columns
type CreateColumnRequest struct {
	ID      string `json:"id" binding:"required"`
	BoardID string `json:"board_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

// UpdateColumnRequest is the body for PATCH /api/columns/:id
type UpdateColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

// TaskRequest is the body for POST /api/tasks and PUT /api/tasks/:id.
// Updates replace every assignable field, so both verbs share it; the id is
// ignored on update (the URL wins).
type TaskRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	MemberID    string     `json:"member_id"`
	RequesterID string     `json:"requester_id"`
	StartDate   *time.Time `json:"start_date"`
	Effort      int        `json:"effort" binding:"required"`
	Priority    string     `json:"priority"`
	ColumnID    string     `json:"column_id" binding:"required"`
	BoardID     string     `json:"board_id" binding:"required"`
	Position    int        `json:"position"`
}

// AttachmentPayload describes one attachment carried by a comment create
type AttachmentPayload struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// CreateCommentRequest is the body for POST /api/comments
type CreateCommentRequest struct {
	ID          string              `json:"id" binding:"required"`
	TaskID      string              `json:"task_id" binding:"required"`
	Text        string              `json:"text" binding:"required"`
	AuthorID    string              `json:"author_id"`
	Attachments []AttachmentPayload `json:"attachments"`
}
