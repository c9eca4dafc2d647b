package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Arslan-Abrahum/test-ht-sub002/internal/models"
	"github.com/Arslan-Abrahum/test-ht-sub002/internal/session"
)

// Home sends the user to their role's dashboard, or to sign-in
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Load(r)
	if err != nil {
		http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, sess.LandingRoute(), http.StatusSeeOther)
}

// SignInGet renders the sign-in page
func (h *Handler) SignInGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "sign-in.html", nil)
}

// SignInPost logs the user in, persists the session, and lands on the
// role-specific dashboard
func (h *Handler) SignInPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	errs := map[string]string{}
	if email == "" {
		errs["email"] = "email is required"
	}
	if password == "" {
		errs["password"] = "password is required"
	}
	if len(errs) > 0 {
		h.render(w, r, "sign-in.html", &pageData{Errors: errs, Form: map[string]string{"email": email}})
		return
	}

	resp, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		h.handleAPIError(w, r, err, "/sign-in")
		return
	}

	sess := &session.Session{
		User:         resp.User,
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		IssuedAt:     time.Now().UTC(),
	}
	if err := h.Sessions.Save(w, r, sess); err != nil {
		h.flashError(w, r, "could not persist your session")
		http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, sess.LandingRoute(), http.StatusSeeOther)
}

// SignUpGet renders the registration page
func (h *Handler) SignUpGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "sign-up.html", nil)
}

// SignUpPost registers a new account and moves on to OTP verification
func (h *Handler) SignUpPost(w http.ResponseWriter, r *http.Request) {
	req := models.RegisterRequest{
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Phone:     r.FormValue("phone"),
		Role:      r.FormValue("role"),
	}

	errs := map[string]string{}
	if req.Email == "" {
		errs["email"] = "email is required"
	}
	if req.Password == "" {
		errs["password"] = "password is required"
	}
	if req.FirstName == "" {
		errs["first_name"] = "first name is required"
	}
	if len(errs) > 0 {
		h.render(w, r, "sign-up.html", &pageData{Errors: errs, Form: map[string]string{
			"email":      req.Email,
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"phone":      req.Phone,
		}})
		return
	}

	if _, err := h.API.Register(r.Context(), req); err != nil {
		h.handleAPIError(w, r, err, "/sign-up")
		return
	}
	h.flashSuccess(w, r, "account created, check your email for the verification code")
	http.Redirect(w, r, "/verify-otp?email="+url.QueryEscape(req.Email), http.StatusSeeOther)
}

// OTPGet renders the OTP entry page; the resend countdown runs in the
// page itself
func (h *Handler) OTPGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "verify-otp.html", &pageData{Form: map[string]string{"email": r.URL.Query().Get("email")}})
}

// OTPPost verifies the one-time code
func (h *Handler) OTPPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	code := r.FormValue("code")
	if code == "" {
		h.render(w, r, "verify-otp.html", &pageData{
			Errors: map[string]string{"code": "code is required"},
			Form:   map[string]string{"email": email},
		})
		return
	}
	if err := h.API.VerifyOTP(r.Context(), email, code); err != nil {
		h.handleAPIError(w, r, err, "/verify-otp?email="+url.QueryEscape(email))
		return
	}
	h.flashSuccess(w, r, "email verified, you can sign in now")
	http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
}

// OTPResend requests a fresh code
func (h *Handler) OTPResend(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if err := h.API.ResendOTP(r.Context(), email); err != nil {
		h.handleAPIError(w, r, err, "/verify-otp?email="+url.QueryEscape(email))
		return
	}
	h.flashSuccess(w, r, "a new code is on its way")
	http.Redirect(w, r, "/verify-otp?email="+url.QueryEscape(email), http.StatusSeeOther)
}

// ResetRequestGet renders the password reset request page
func (h *Handler) ResetRequestGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "reset-request.html", nil)
}

// ResetRequestPost mails a reset code
func (h *Handler) ResetRequestPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if email == "" {
		h.render(w, r, "reset-request.html", &pageData{Errors: map[string]string{"email": "email is required"}})
		return
	}
	if err := h.API.RequestPasswordReset(r.Context(), email); err != nil {
		h.handleAPIError(w, r, err, "/reset-password")
		return
	}
	http.Redirect(w, r, "/reset-password/verify?email="+url.QueryEscape(email), http.StatusSeeOther)
}

// ResetVerifyGet renders the reset-code entry page
func (h *Handler) ResetVerifyGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "reset-verify.html", &pageData{Form: map[string]string{"email": r.URL.Query().Get("email")}})
}

// ResetVerifyPost checks the reset code
func (h *Handler) ResetVerifyPost(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	code := r.FormValue("code")
	if err := h.API.VerifyPasswordReset(r.Context(), email, code); err != nil {
		h.handleAPIError(w, r, err, "/reset-password/verify?email="+url.QueryEscape(email))
		return
	}
	target := "/reset-password/confirm?email=" + url.QueryEscape(email) + "&code=" + url.QueryEscape(code)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ResetConfirmGet renders the new-password page
func (h *Handler) ResetConfirmGet(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "reset-confirm.html", &pageData{Form: map[string]string{
		"email": r.URL.Query().Get("email"),
		"code":  r.URL.Query().Get("code"),
	}})
}

// ResetConfirmPost sets the new password
func (h *Handler) ResetConfirmPost(w http.ResponseWriter, r *http.Request) {
	req := models.PasswordResetConfirm{
		Email:       r.FormValue("email"),
		Code:        r.FormValue("code"),
		NewPassword: r.FormValue("new_password"),
	}
	if req.NewPassword == "" {
		h.render(w, r, "reset-confirm.html", &pageData{
			Errors: map[string]string{"new_password": "new password is required"},
			Form:   map[string]string{"email": req.Email, "code": req.Code},
		})
		return
	}
	if err := h.API.ConfirmPasswordReset(r.Context(), req); err != nil {
		h.handleAPIError(w, r, err, "/reset-password")
		return
	}
	h.flashSuccess(w, r, "password updated, sign in with the new one")
	http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
}

// Logout clears the session wholesale
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.flashError(w, r, "could not clear your session")
	}
	http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
}
