package metrics

import (
	"context"
	"time"

	"contact-relay/pkg/email"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess            = "success"
	OutcomeInvalid            = "invalid"
	OutcomeNotificationFailed = "notification_failed"
	OutcomeConfirmationFailed = "confirmation_failed"
)

var (
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	MailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_deliveries_total",
			Help: "Total number of outbound mail delivery attempts",
		},
		[]string{"kind", "status"}, // status: success, failed
	)

	MailDeliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_delivery_duration_seconds",
			Help:    "Outbound mail delivery duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"kind"},
	)
)

func RecordSubmission(outcome string) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
}

type instrumentedMailer struct {
	next email.Mailer
}

// InstrumentMailer counts and times every delivery made through next
func InstrumentMailer(next email.Mailer) email.Mailer {
	return &instrumentedMailer{next: next}
}

func (m *instrumentedMailer) Send(ctx context.Context, msg *email.Message) error {
	start := time.Now()
	err := m.next.Send(ctx, msg)
	MailDeliveryDuration.WithLabelValues(msg.Kind).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "failed"
	}
	MailDeliveries.WithLabelValues(msg.Kind, status).Inc()
	return err
}
