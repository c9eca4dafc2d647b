package handlers

import "net/http"

// ProfileGet renders the authenticated user's profile
func (h *Handler) ProfileGet(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	user, err := h.API.Profile(r.Context(), sess.AccessToken)
	if err != nil {
		h.handleAPIError(w, r, err, sess.LandingRoute())
		return
	}
	h.render(w, r, "profile.html", &pageData{
		Session: sess,
		Data:    map[string]interface{}{"User": user, "Avatar": h.mediaURL(user.Avatar)},
	})
}

// ProfilePost updates profile fields and refreshes the cached session user
func (h *Handler) ProfilePost(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	fields := map[string]string{
		"first_name": r.FormValue("first_name"),
		"last_name":  r.FormValue("last_name"),
		"phone":      r.FormValue("phone"),
	}
	user, err := h.API.UpdateProfile(r.Context(), sess.AccessToken, fields)
	if err != nil {
		h.handleAPIError(w, r, err, "/profile")
		return
	}

	sess.User = *user
	if err := h.Sessions.Save(w, r, sess); err != nil {
		h.flashError(w, r, "profile saved but your session could not be refreshed")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	h.flashSuccess(w, r, "profile updated")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
