package handlers

import (
	"CarePulse/forms"
	"CarePulse/models"
	"CarePulse/services"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Room for the form fields next to the largest accepted document.
const maxRegistrationBody = services.MaxDocumentSize + 1<<20

// PatientHandler serves the registration page and form.
type PatientHandler struct {
	users     UserService
	patients  PatientService
	submitter *forms.RegistrationSubmitter
	observer  SubmissionObserver
}

func NewPatientHandler(users UserService, patients PatientService, submitter *forms.RegistrationSubmitter, observer SubmissionObserver) *PatientHandler {
	return &PatientHandler{users: users, patients: patients, submitter: submitter, observer: observerOrNop(observer)}
}

// RegisterPage renders the registration form prefilled from the user record.
// Registered patients go straight to booking.
func (h *PatientHandler) RegisterPage(c *gin.Context) {
	userID := c.Param("userId")
	ctx := c.Request.Context()

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		renderError(c, err)
		return
	}
	if _, err := h.patients.GetPatient(ctx, userID); err == nil {
		c.Redirect(http.StatusSeeOther, forms.NewAppointmentPath(userID))
		return
	} else if !errors.Is(err, services.ErrNotFound) {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "register", h.registerView(userID, forms.RawRegistration{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}))
}

// Register handles the multipart registration form.
func (h *PatientHandler) Register(c *gin.Context) {
	userID := c.Param("userId")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRegistrationBody)

	var raw forms.RawRegistration
	if err := c.ShouldBind(&raw); err != nil {
		view := h.registerView(userID, raw)
		view.Error = "Invalid form submission"
		c.HTML(http.StatusBadRequest, "register", view)
		return
	}

	values, err := forms.DecodeRegistration(raw)
	if err != nil {
		h.observer.ObserveSubmission("registration", "invalid")
		view := h.registerView(userID, raw)
		view.Fields = fieldErrors(err)
		view.Error = formError(err)
		c.HTML(statusFor(err), "register", view)
		return
	}

	uploads, err := readUploads(c, "identificationDocument")
	if err != nil {
		view := h.registerView(userID, raw)
		view.Fields = map[string]string{"identificationDocument": err.Error()}
		c.HTML(http.StatusUnprocessableEntity, "register", view)
		return
	}
	values.IdentificationDocument = uploads

	result := h.submitter.Submit(c.Request.Context(), forms.RegistrationSubmission{
		UserID: userID,
		Values: values,
		Hooks:  forms.Hooks{Navigate: navigate(c)},
	})
	h.observer.ObserveSubmission("registration", result.Outcome.String())
	if !result.OK() {
		view := h.registerView(userID, raw)
		view.Fields = fieldErrors(result.Err)
		view.Error = formError(result.Err)
		c.HTML(statusFor(result.Err), "register", view)
	}
}

// GetDocument streams a stored identification document.
func (h *PatientHandler) GetDocument(c *gin.Context) {
	doc, err := h.patients.GetDocument(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": doc.FileName}))
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func (h *PatientHandler) registerView(userID string, values forms.RawRegistration) registerView {
	return registerView{
		page:                page{Title: "Register"},
		UserID:              userID,
		Values:              values,
		GenderOptions:       models.GenderOptions,
		IdentificationTypes: models.IdentificationTypes,
	}
}

// readUploads collects the files of a multipart field. A missing field is no files.
func readUploads(c *gin.Context, field string) ([]forms.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	headers := form.File[field]
	uploads := make([]forms.Upload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > services.MaxDocumentSize {
			return nil, fmt.Errorf("%s is larger than %d MB", filepath.Base(fh.Filename), services.MaxDocumentSize>>20)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		uploads = append(uploads, forms.Upload{
			Name:        filepath.Base(fh.Filename),
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return uploads, nil
}
