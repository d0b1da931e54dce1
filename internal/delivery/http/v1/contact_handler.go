package v1

import (
	"errors"
	"net/http"

	"contact-relay/internal/delivery/http/response"
	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"
	"contact-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingField       = "All fields are required: name, email, subject, message"
	msgInvalidEmail       = "The email address is not valid"
	msgInvalidBody        = "Invalid request body"
	msgSendFailed         = "Error sending email"
	msgConfirmationFailed = "Error sending confirmation email"
	msgSent               = "Email sent successfully and confirmation sent."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public gin.IRoutes, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/send-email", handler.SendEmail)
}

// SendEmail godoc
// @Summary      Send Contact Email
// @Description  Relay a contact form submission: notify the owner, then send the submitter a confirmation. Accepts form-encoded or JSON bodies.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      plain
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {string}  string  "Email sent successfully and confirmation sent."
// @Failure      400      {string}  string  "Missing field, invalid email or malformed body"
// @Failure      500      {string}  string  "Notification or confirmation delivery failed"
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		c.Error(apperror.BadRequest(msgInvalidBody, err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(mapContactError(err))
		return
	}

	metrics.RecordSubmission(metrics.OutcomeSuccess)
	response.Text(c, http.StatusOK, msgSent)
}

func mapContactError(err error) *apperror.AppError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		if vErr.Reason == domain.ReasonInvalidEmail {
			return apperror.BadRequest(msgInvalidEmail, nil)
		}
		return apperror.BadRequest(msgMissingField, nil)
	}

	var dErr *domain.DeliveryError
	if errors.As(err, &dErr) {
		if dErr.Stage == domain.StageConfirmation {
			metrics.RecordSubmission(metrics.OutcomeConfirmationFailed)
			return apperror.Internal(msgConfirmationFailed, err)
		}
		metrics.RecordSubmission(metrics.OutcomeNotificationFailed)
		return apperror.Internal(msgSendFailed, err)
	}

	metrics.RecordSubmission(metrics.OutcomeNotificationFailed)
	return apperror.Internal(msgSendFailed, err)
}
