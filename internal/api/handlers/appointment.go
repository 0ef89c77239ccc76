package handlers

import (
	"net/http"

	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
	render             *web.Renderer
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, render *web.Renderer) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService, render: render}
}

// BookForm shows the booking form with the caller's own appointments.
func (h *AppointmentHandler) BookForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	appointments, err := h.appointmentService.ListForUser(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, "book", appointments)
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ownerID := sess.UserID
	_, err := h.appointmentService.Book(r.Context(), &ownerID, service.BookingInput{
		Name:   r.FormValue("name"),
		Email:  r.FormValue("email"),
		Date:   r.FormValue("date"),
		Time:   r.FormValue("time"),
		Reason: r.FormValue("reason"),
	})
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			web.SetFlash(w, "danger", ve.Message)
			http.Redirect(w, r, "/book", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, "success", "Appointment booked successfully.")
	http.Redirect(w, r, "/book", http.StatusSeeOther)
}
