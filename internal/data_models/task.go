package dto

import "time"

// TaskReadDto is the shape returned to clients.
type TaskReadDto struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IsDone      bool       `json:"isDone"`
	CreatedUtc  time.Time  `json:"createdUtc"`
	DueUtc      *time.Time `json:"dueUtc,omitempty"`
	ProjectID   uint       `json:"projectId"`
}

// TaskCreateDto is what clients POST. IsDone and CreatedUtc are ignored if
// sent; the server decides both.
type TaskCreateDto struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueUtc      *time.Time `json:"dueUtc,omitempty"`
	ProjectID   uint       `json:"projectId"`
}

// TaskUpdateDto is what clients PUT. Id must match the route id.
type TaskUpdateDto struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IsDone      bool       `json:"isDone"`
	DueUtc      *time.Time `json:"dueUtc,omitempty"`
}

// TaskListDto wraps a page of results with the total match count so
// clients can compute page totals.
type TaskListDto struct {
	Items      []TaskReadDto `json:"items"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
}
