package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// ListTasks retrieves the inspection tasks assigned to the manager
func (c *Client) ListTasks(ctx context.Context, token string) ([]models.InspectionTask, error) {
	var tasks []models.InspectionTask
	if err := c.do(ctx, http.MethodGet, "/manager/tasks", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a single inspection task
func (c *Client) GetTask(ctx context.Context, token, taskID string) (*models.InspectionTask, error) {
	var task models.InspectionTask
	if err := c.do(ctx, http.MethodGet, "/manager/tasks/"+url.PathEscape(taskID), token, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SubmitInspection posts an inspection decision as multipart form data:
// the decision fields plus the JSON-stringified checklist as text fields,
// and the inspection photos as file parts
func (c *Client) SubmitInspection(ctx context.Context, token, taskID string, fields map[string]string, files []Upload) (*models.InspectionReport, error) {
	var report models.InspectionReport
	path := "/manager/inspections/" + url.PathEscape(taskID)
	if err := c.doMultipart(ctx, path, token, fields, files, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports retrieves past inspection reports
func (c *Client) ListReports(ctx context.Context, token string) ([]models.InspectionReport, error) {
	var reports []models.InspectionReport
	if err := c.do(ctx, http.MethodGet, "/manager/reports", token, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport retrieves a single inspection report
func (c *Client) GetReport(ctx context.Context, token, id string) (*models.InspectionReport, error) {
	var report models.InspectionReport
	if err := c.do(ctx, http.MethodGet, "/manager/reports/"+url.PathEscape(id), token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetItemReport retrieves the latest inspection report for an auction item,
// used to show a prior rejection alongside a re-inspection
func (c *Client) GetItemReport(ctx context.Context, token, itemID string) (*models.InspectionReport, error) {
	var report models.InspectionReport
	path := "/manager/items/" + url.PathEscape(itemID) + "/report"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListChecklistTemplates retrieves all checklist templates
func (c *Client) ListChecklistTemplates(ctx context.Context, token string) ([]models.ChecklistTemplate, error) {
	var templates []models.ChecklistTemplate
	if err := c.do(ctx, http.MethodGet, "/manager/checklists", token, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateChecklistTemplate creates a new checklist template
func (c *Client) CreateChecklistTemplate(ctx context.Context, token string, req models.ChecklistTemplateRequest) (*models.ChecklistTemplate, error) {
	var tmpl models.ChecklistTemplate
	if err := c.do(ctx, http.MethodPost, "/manager/checklists", token, req, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// UpdateChecklistTemplate updates an existing checklist template
func (c *Client) UpdateChecklistTemplate(ctx context.Context, token, id string, req models.ChecklistTemplateRequest) (*models.ChecklistTemplate, error) {
	var tmpl models.ChecklistTemplate
	if err := c.do(ctx, http.MethodPut, "/manager/checklists/"+url.PathEscape(id), token, req, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// DeleteChecklistTemplate removes a checklist template
func (c *Client) DeleteChecklistTemplate(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/manager/checklists/"+url.PathEscape(id), token, nil, nil)
}

// AuctionAction performs a manager action on an auction, e.g. "close"
func (c *Client) AuctionAction(ctx context.Context, token, itemID, action string) error {
	path := "/manager/auctions/" + url.PathEscape(itemID) + "/action"
	return c.do(ctx, http.MethodPost, path, token, models.AuctionActionRequest{Action: action}, nil)
}
