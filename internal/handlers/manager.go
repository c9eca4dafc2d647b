package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/api"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/inspection"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
)

// ManagerQueue lists the manager's assigned inspection tasks
func (h *Handler) ManagerQueue(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	tasks, err := h.API.ListTasks(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, "/sign-in")
		return
	}
	h.render(w, r, "manager-queue.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Tasks": tasks},
	})
}

// review is everything the inspection page needs to render
type review struct {
	Task      *models.InspectionTask
	Checklist inspection.Checklist
	Counts    map[string]inspection.Count
	Report    *models.InspectionReport // prior rejection, if any
	Images    []string                 // resolved media URLs
}

// loadReview fetches the task, resolves its checklist template and, for a
// previously rejected item, the rejection report. A missing or malformed
// template leaves the checklist empty without failing the page.
func (h *Handler) loadReview(r *http.Request, sess *session.Session, taskID string) (*review, error) {
	task, err := h.API.GetTask(r.Context(), sess.AccessToken, taskID)
	if err != nil {
		return nil, err
	}

	rev := &review{Task: task}
	for _, img := range task.Item.Images {
		rev.Images = append(rev.Images, h.mediaURL(img))
	}

	templates, err := h.API.ListChecklistTemplates(r.Context(), sess.AccessToken)
	if err == nil {
		tmpl := inspection.ResolveTemplate(templates, task.Item.Category)
		rev.Checklist = inspection.Build(tmpl)
	}

	if task.Item.Status == models.StatusRejected {
		if report, err := h.API.GetItemReport(r.Context(), sess.AccessToken, task.Item.ID); err == nil {
			rev.Report = report
		}
	}
	return rev, nil
}

// InspectionGet renders the inspection review page
func (h *Handler) InspectionGet(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	taskID := mux.Vars(r)["taskID"]

	rev, err := h.loadReview(r, sess, taskID)
	if err != nil {
		h.handleAPIError(w, r, err, "/manager")
		return
	}
	rev.Counts = inspection.NewState().Counts(rev.Checklist)
	h.render(w, r, "manager-inspection.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Review": rev},
	})
}

// checklistFromForm rebuilds the checklist state from the submitted
// checkbox values; every item of the resolved checklist appears in the
// flattened result, checked or not
func checklistFromForm(r *http.Request, c inspection.Checklist) *inspection.State {
	checked := make(map[string]bool)
	for _, key := range r.PostForm["check"] {
		checked[key] = true
	}
	state := inspection.NewState()
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			state.Set(cat.Name, item.ID, checked[inspection.Key(cat.Name, item.ID)])
		}
	}
	return state
}

// parseReviewDate accepts the datetime-local form format plus the wire
// formats the backend echoes back
func parseReviewDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formUploads collects the uploaded inspection photos
func formUploads(r *http.Request) []api.Upload {
	if r.MultipartForm == nil {
		return nil
	}
	var uploads []api.Upload
	for _, fh := range r.MultipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			continue
		}
		uploads = append(uploads, api.Upload{FileName: fh.Filename, Content: f})
	}
	return uploads
}

// InspectionApprove submits an APPROVED decision with the publishing
// fields. Validation runs before any network call; a second submit while
// one is in flight performs none.
func (h *Handler) InspectionApprove(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	taskID := mux.Vars(r)["taskID"]
	reviewPath := "/manager/inspections/" + taskID

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.flashError(w, r, "could not read the submitted form")
		http.Redirect(w, r, reviewPath, http.StatusSeeOther)
		return
	}

	if !h.Guard.Begin(taskID) {
		http.Redirect(w, r, reviewPath, http.StatusSeeOther)
		return
	}
	defer h.Guard.End(taskID)

	rev, err := h.loadReview(r, sess, taskID)
	if err != nil {
		h.handleAPIError(w, r, err, "/manager")
		return
	}
	state := checklistFromForm(r, rev.Checklist)

	rating, _ := strconv.Atoi(r.FormValue("overall_rating"))
	initialPrice, _ := strconv.ParseFloat(r.FormValue("initial_price"), 64)
	buyNowPrice, _ := strconv.ParseFloat(r.FormValue("buy_now_price"), 64)
	input := inspection.ApprovalInput{
		OverallRating: rating,
		Feedback:      r.FormValue("feedback"),
		InitialPrice:  initialPrice,
		BuyNowPrice:   buyNowPrice,
		BuyNowEnabled: r.FormValue("buy_now_enabled") != "",
		StartDate:     parseReviewDate(r.FormValue("start_date")),
		EndDate:       parseReviewDate(r.FormValue("end_date")),
	}

	fields, err := inspection.BuildApproval(input, state.Flatten())
	if err != nil {
		errs := map[string]string{}
		var verrs inspection.ValidationErrors
		if errors.As(err, &verrs) {
			errs = verrs
		}
		rev.Counts = state.Counts(rev.Checklist)
		h.render(w, r, "manager-inspection.html", &pageData{
			Session: sess,
			Errors:  errs,
			Data:    map[string]interface{}{"Review": rev},
		})
		return
	}

	if _, err := h.API.SubmitInspection(r.Context(), sess.AccessToken, taskID, fields, formUploads(r)); err != nil {
		h.handleAPIError(w, r, err, reviewPath)
		return
	}
	h.flashSuccess(w, r, "item approved and scheduled for auction")
	http.Redirect(w, r, "/manager", http.StatusSeeOther)
}

// InspectionReject submits a REJECTED decision; empty feedback falls back
// to the canned default, so rejection always goes through
func (h *Handler) InspectionReject(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	taskID := mux.Vars(r)["taskID"]
	reviewPath := "/manager/inspections/" + taskID

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.flashError(w, r, "could not read the submitted form")
		http.Redirect(w, r, reviewPath, http.StatusSeeOther)
		return
	}

	if !h.Guard.Begin(taskID) {
		http.Redirect(w, r, reviewPath, http.StatusSeeOther)
		return
	}
	defer h.Guard.End(taskID)

	rev, err := h.loadReview(r, sess, taskID)
	if err != nil {
		h.handleAPIError(w, r, err, "/manager")
		return
	}
	state := checklistFromForm(r, rev.Checklist)

	fields, err := inspection.BuildRejection(r.FormValue("feedback"), state.Flatten())
	if err != nil {
		h.flashError(w, r, "could not assemble the rejection")
		http.Redirect(w, r, reviewPath, http.StatusSeeOther)
		return
	}

	if _, err := h.API.SubmitInspection(r.Context(), sess.AccessToken, taskID, fields, formUploads(r)); err != nil {
		h.handleAPIError(w, r, err, reviewPath)
		return
	}
	h.flashSuccess(w, r, "item rejected, the seller has been notified")
	http.Redirect(w, r, "/manager", http.StatusSeeOther)
}

// ManagerReports lists past inspection reports
func (h *Handler) ManagerReports(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	reports, err := h.API.ListReports(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, "/manager")
		return
	}
	h.render(w, r, "manager-reports.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Reports": reports},
	})
}

// ManagerReportDetail shows one inspection report
func (h *Handler) ManagerReportDetail(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	report, err := h.API.GetReport(r.Context(), sess.AccessToken, mux.Vars(r)["id"])
	if err != nil {
		h.handleAPIError(w, r, err, "/manager/reports")
		return
	}
	h.render(w, r, "manager-report.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"Report": report},
	})
}

// ManagerCloseAuction closes a running auction
func (h *Handler) ManagerCloseAuction(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	itemID := mux.Vars(r)["id"]
	if err := h.API.AuctionAction(r.Context(), sess.AccessToken, itemID, "close"); err != nil {
		h.handleAPIError(w, r, err, "/manager")
		return
	}
	h.flashSuccess(w, r, "auction closed")
	http.Redirect(w, r, "/manager", http.StatusSeeOther)
}
