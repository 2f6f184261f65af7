package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/NexaiGuy/nexai-website/internal/notify"
	"github.com/NexaiGuy/nexai-website/internal/observability/metrics"
	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

// Service renders and sends the two booking notification emails: the
// company notification first, then the client confirmation. If the company
// send fails the client email is not attempted. There is no retry and no
// deduplication key; calling Dispatch twice sends two sets of emails.
type Service struct {
	sender       notify.EmailSender
	companyEmail string
	logger       *logging.Logger
	metrics      *metrics.BookingMetrics
}

// NewService creates a dispatch service. companyEmail is the internal
// recipient of new-consultation notifications.
func NewService(sender notify.EmailSender, companyEmail string, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if companyEmail == "" {
		companyEmail = "hello@nexai.com"
	}
	return &Service{
		sender:       sender,
		companyEmail: companyEmail,
		logger:       logger,
		metrics:      m,
	}
}

// Dispatch validates the request, then sends both emails. The returned
// Result is only non-nil on success; every failure is reported as an error
// and mapped to the wire contract at the handler boundary.
func (s *Service) Dispatch(ctx context.Context, req *EmailDispatchRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.sender == nil {
		return nil, ErrSenderNotConfigured
	}

	start := time.Now()

	subject, html, err := renderCompanyEmail(req)
	if err != nil {
		return nil, err
	}
	companyMsg := notify.EmailMessage{
		To:      s.companyEmail,
		Subject: subject,
		Body:    companyTextBody(req),
		HTML:    html,
	}
	if err := s.sender.Send(ctx, companyMsg); err != nil {
		s.metrics.ObserveEmail("company", "failed")
		s.logger.Error("dispatch: company notification failed", "error", err, "company", req.FormData.Company)
		return nil, fmt.Errorf("dispatch: company notification: %w", err)
	}
	s.metrics.ObserveEmail("company", "sent")

	subject, html, err = renderClientEmail(req)
	if err != nil {
		return nil, err
	}
	clientMsg := notify.EmailMessage{
		To:      req.FormData.Email,
		ToName:  req.FormData.Name,
		Subject: subject,
		Body:    clientTextBody(req),
		HTML:    html,
	}
	if err := s.sender.Send(ctx, clientMsg); err != nil {
		s.metrics.ObserveEmail("client", "failed")
		s.logger.Error("dispatch: client confirmation failed", "error", err, "to", req.FormData.Email)
		return nil, fmt.Errorf("dispatch: client confirmation: %w", err)
	}
	s.metrics.ObserveEmail("client", "sent")
	s.metrics.ObserveDispatchDuration(time.Since(start).Seconds())

	s.logger.Info("dispatch: booking emails sent",
		"company", req.FormData.Company,
		"client", req.FormData.Email,
		"time_slot", req.TimeSlot,
	)

	return &Result{Success: true, Message: "Emails sent successfully"}, nil
}

func companyTextBody(req *EmailDispatchRequest) string {
	d := newTemplateData(req)
	return fmt.Sprintf(`New AI project consultation request.

Name: %s
Email: %s
Company: %s
Phone: %s

Service Type: %s
Budget: %s
Timeline: %s
Meeting Time: %s

Description:
%s
`, d.Name, d.Email, d.Company, d.Phone, d.ProjectType, d.Budget, d.Timeline, d.TimeSlot, d.Description)
}

func clientTextBody(req *EmailDispatchRequest) string {
	d := newTemplateData(req)
	return fmt.Sprintf(`Hi %s,

Your AI consultation is confirmed for %s (30 minutes, video call).
We'll send a calendar invite and meeting link 24 hours before the call.

Best regards,
The Nex AI Team
`, d.Name, d.TimeSlot)
}
