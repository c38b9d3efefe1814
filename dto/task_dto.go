package dto

// CreateTaskRequest carries the client-supplied fields for a new task.
// The project binding is set at creation time and immutable after.
type CreateTaskRequest struct {
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
}

// UpdateTaskRequest is a partial-merge patch. An absent or empty
// projectId must not erase the existing binding.
type UpdateTaskRequest struct {
	ProjectID   *string `json:"projectId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   *bool   `json:"completed"`
}
