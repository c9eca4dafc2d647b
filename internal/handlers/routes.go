package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
)

// SetupRoutes configures the console's routes
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// authentication
	router.HandleFunc("/", h.Home).Methods("GET")
	router.HandleFunc("/sign-in", h.SignInGet).Methods("GET")
	router.HandleFunc("/sign-in", h.SignInPost).Methods("POST")
	router.HandleFunc("/sign-up", h.SignUpGet).Methods("GET")
	router.HandleFunc("/sign-up", h.SignUpPost).Methods("POST")
	router.HandleFunc("/verify-otp", h.OTPGet).Methods("GET")
	router.HandleFunc("/verify-otp", h.OTPPost).Methods("POST")
	router.HandleFunc("/verify-otp/resend", h.OTPResend).Methods("POST")
	router.HandleFunc("/reset-password", h.ResetRequestGet).Methods("GET")
	router.HandleFunc("/reset-password", h.ResetRequestPost).Methods("POST")
	router.HandleFunc("/reset-password/verify", h.ResetVerifyGet).Methods("GET")
	router.HandleFunc("/reset-password/verify", h.ResetVerifyPost).Methods("POST")
	router.HandleFunc("/reset-password/confirm", h.ResetConfirmGet).Methods("GET")
	router.HandleFunc("/reset-password/confirm", h.ResetConfirmPost).Methods("POST")
	router.HandleFunc("/logout", h.Logout).Methods("POST")

	// profile (any authenticated role)
	router.HandleFunc("/profile", h.requireSession(h.ProfileGet)).Methods("GET")
	router.HandleFunc("/profile", h.requireSession(h.ProfilePost)).Methods("POST")

	// admin dashboards
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("", h.requireRole(models.RoleAdmin, h.AdminDashboard)).Methods("GET")
	admin.HandleFunc("/completed", h.requireRole(models.RoleAdmin, h.AdminCompleted)).Methods("GET")
	admin.HandleFunc("/live", h.requireRole(models.RoleAdmin, h.LiveAuctions)).Methods("GET")
	admin.HandleFunc("/auctions/{id}", h.requireRole(models.RoleAdmin, h.AuctionDetail)).Methods("GET")
	admin.HandleFunc("/users", h.requireRole(models.RoleAdmin, h.AdminUsers)).Methods("GET")
	admin.HandleFunc("/checklists", h.requireRole(models.RoleAdmin, h.AdminChecklists)).Methods("GET")
	admin.HandleFunc("/checklists", h.requireRole(models.RoleAdmin, h.AdminChecklistCreate)).Methods("POST")
	admin.HandleFunc("/checklists/{id}", h.requireRole(models.RoleAdmin, h.AdminChecklistUpdate)).Methods("POST")
	admin.HandleFunc("/checklists/{id}/delete", h.requireRole(models.RoleAdmin, h.AdminChecklistDelete)).Methods("POST")

	// manager dashboards and the inspection workflow
	manager := router.PathPrefix("/manager").Subrouter()
	manager.HandleFunc("", h.requireRole(models.RoleManager, h.ManagerQueue)).Methods("GET")
	manager.HandleFunc("/live", h.requireRole(models.RoleManager, h.LiveAuctions)).Methods("GET")
	manager.HandleFunc("/inspections/{taskID}", h.requireRole(models.RoleManager, h.InspectionGet)).Methods("GET")
	manager.HandleFunc("/inspections/{taskID}/approve", h.requireRole(models.RoleManager, h.InspectionApprove)).Methods("POST")
	manager.HandleFunc("/inspections/{taskID}/reject", h.requireRole(models.RoleManager, h.InspectionReject)).Methods("POST")
	manager.HandleFunc("/reports", h.requireRole(models.RoleManager, h.ManagerReports)).Methods("GET")
	manager.HandleFunc("/reports/{id}", h.requireRole(models.RoleManager, h.ManagerReportDetail)).Methods("GET")
	manager.HandleFunc("/auctions/{id}", h.requireRole(models.RoleManager, h.AuctionDetail)).Methods("GET")
	manager.HandleFunc("/auctions/{id}/close", h.requireRole(models.RoleManager, h.ManagerCloseAuction)).Methods("POST")

	// live bid-event stream for dashboard pages
	router.HandleFunc("/ws/live/{itemID}", h.requireSession(h.LiveSocket)).Methods("GET")

	router.Use(loggingMiddleware)

	return router
}

// HealthCheck reports liveness
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"ht-console","time":"%s"}`, time.Now().UTC().Format(time.RFC3339))
}
