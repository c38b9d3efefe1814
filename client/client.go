// Package client is the typed facade over the HTTP API: one function
// per entity and operation, JSON in and out, and a single error kind
// for every non-success status. There is no retry, caching or
// deduplication; each call is independent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
)

// APIError is raised for any non-success HTTP status. Body carries the
// raw response text, usually the server's {"error": message} JSON.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
}

// Client issues requests against the resource handlers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionToken sends the session JWT as a bearer header on every
// call, for callers that are not a cookie-holding browser.
func WithSessionToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client against baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request and decodes the JSON response into out when the
// status is a success. Any other status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// ListProjects returns every project.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, nil, &projects)
	return projects, err
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, nil, &project)
	return project, err
}

// CreateProject creates a project and returns the stored record.
func (c *Client) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (models.Project, error) {
	var project models.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", nil, req, &project)
	return project, err
}

// UpdateProject applies a partial-merge patch.
func (c *Client) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (models.Project, error) {
	var project models.Project
	err := c.do(ctx, http.MethodPatch, "/api/projects/"+url.PathEscape(id), nil, req, &project)
	return project, err
}

// DeleteProject deletes a project and its dependents.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil, nil)
}

// ListTasks returns tasks, narrowed to one project when projectID is
// non-empty.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", query, nil, &tasks)
	return tasks, err
}

// ListProjectTasks uses the project-scoped collection route.
func (c *Client) ListProjectTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID)+"/tasks", nil, nil, &tasks)
	return tasks, err
}

// GetTask returns one task by id.
func (c *Client) GetTask(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, nil, &task)
	return task, err
}

// CreateTask creates a task bound to its project.
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", nil, req, &task)
	return task, err
}

// UpdateTask applies a partial-merge patch.
func (c *Client) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPatch, "/api/tasks/"+url.PathEscape(id), nil, req, &task)
	return task, err
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil, nil)
}

// ListBilling returns billing services, narrowed to one project when
// projectID is non-empty.
func (c *Client) ListBilling(ctx context.Context, projectID string) ([]models.BillingService, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var billing []models.BillingService
	err := c.do(ctx, http.MethodGet, "/api/billing", query, nil, &billing)
	return billing, err
}

// GetBilling returns one billing service by id.
func (c *Client) GetBilling(ctx context.Context, id string) (models.BillingService, error) {
	var billing models.BillingService
	err := c.do(ctx, http.MethodGet, "/api/billing/"+url.PathEscape(id), nil, nil, &billing)
	return billing, err
}

// CreateBilling creates a billing service.
func (c *Client) CreateBilling(ctx context.Context, req dto.CreateBillingRequest) (models.BillingService, error) {
	var billing models.BillingService
	err := c.do(ctx, http.MethodPost, "/api/billing", nil, req, &billing)
	return billing, err
}

// UpdateBilling applies a partial-merge patch.
func (c *Client) UpdateBilling(ctx context.Context, id string, req dto.UpdateBillingRequest) (models.BillingService, error) {
	var billing models.BillingService
	err := c.do(ctx, http.MethodPatch, "/api/billing/"+url.PathEscape(id), nil, req, &billing)
	return billing, err
}

// DeleteBilling deletes a billing service.
func (c *Client) DeleteBilling(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/billing/"+url.PathEscape(id), nil, nil, nil)
}

func filesPath(entityType, entityID string) string {
	return "/api/files/" + url.PathEscape(entityType) + "/" + url.PathEscape(entityID)
}

// ListAttachments returns the attachments bound to one entity.
func (c *Client) ListAttachments(ctx context.Context, entityType, entityID string) ([]models.FileAttachment, error) {
	var files []models.FileAttachment
	err := c.do(ctx, http.MethodGet, filesPath(entityType, entityID), nil, nil, &files)
	return files, err
}

// GetAttachment returns one attachment by file id.
func (c *Client) GetAttachment(ctx context.Context, entityType, entityID, fileID string) (models.FileAttachment, error) {
	var file models.FileAttachment
	err := c.do(ctx, http.MethodGet, filesPath(entityType, entityID), url.Values{"fileId": {fileID}}, nil, &file)
	return file, err
}

// UploadAttachment sends one document as multipart form data and
// returns the created metadata.
func (c *Client) UploadAttachment(ctx context.Context, entityType, entityID, fileName, contentType string, content io.Reader) (models.FileAttachment, error) {
	var file models.FileAttachment

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return file, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return file, err
	}
	if err := writer.Close(); err != nil {
		return file, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+filesPath(entityType, entityID), &buf)
	if err != nil {
		return file, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return file, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		text, _ := io.ReadAll(resp.Body)
		return file, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	err = json.NewDecoder(resp.Body).Decode(&file)
	return file, err
}

// DeleteAttachment removes one attachment by file id.
func (c *Client) DeleteAttachment(ctx context.Context, entityType, entityID, fileID string) error {
	return c.do(ctx, http.MethodDelete, filesPath(entityType, entityID), url.Values{"fileId": {fileID}}, nil, nil)
}

// GetSession fetches the session introspection document.
func (c *Client) GetSession(ctx context.Context) (dto.SessionResponse, error) {
	var session dto.SessionResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &session)
	return session, err
}
