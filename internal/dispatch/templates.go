package dispatch

import (
	"bytes"
	"fmt"
	"html/template"
)

// templateData is what both email templates are rendered against. Fallback
// text for unset optional fields is computed here, not in the templates.
type templateData struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	ProjectType string
	Budget      string
	Timeline    string
	Description string
	TimeSlot    string
}

func newTemplateData(req *EmailDispatchRequest) templateData {
	return templateData{
		Name:        req.FormData.Name,
		Email:       req.FormData.Email,
		Company:     req.FormData.Company,
		Phone:       orElse(req.FormData.Phone, "Not provided"),
		ProjectType: orElse(req.FormData.ProjectType, "Not specified"),
		Budget:      orElse(req.FormData.Budget, "Not specified"),
		Timeline:    orElse(req.FormData.Timeline, "Not specified"),
		Description: orElse(req.FormData.Description, "No description provided"),
		TimeSlot:    orElse(req.TimeSlot, "Not scheduled"),
	}
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

var companyTmpl = template.Must(template.New("company").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f7f7f7; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-block { background: white; padding: 20px; margin: 15px 0; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
    .label { font-weight: bold; color: #333; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New AI Project Consultation Request</h1>
    </div>
    <div class="content">
      <div class="info-block">
        <h2>Client Information</h2>
        <p><span class="label">Name:</span> {{.Name}}</p>
        <p><span class="label">Email:</span> {{.Email}}</p>
        <p><span class="label">Company:</span> {{.Company}}</p>
        <p><span class="label">Phone:</span> {{.Phone}}</p>
      </div>

      <div class="info-block">
        <h2>Project Details</h2>
        <p><span class="label">Service Type:</span> {{.ProjectType}}</p>
        <p><span class="label">Budget:</span> {{.Budget}}</p>
        <p><span class="label">Timeline:</span> {{.Timeline}}</p>
        <p><span class="label">Meeting Time:</span> {{.TimeSlot}}</p>
      </div>

      <div class="info-block">
        <h2>Project Description</h2>
        <p>{{.Description}}</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

var clientTmpl = template.Must(template.New("client").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 40px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: white; padding: 40px; border: 1px solid #e0e0e0; border-radius: 0 0 10px 10px; }
    .info-card { background: #f8f9fa; padding: 25px; margin: 20px 0; border-radius: 10px; }
    .footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎉 Your AI Consultation is Confirmed!</h1>
    </div>
    <div class="content">
      <p>Hi <strong>{{.Name}}</strong>,</p>

      <p>Thank you for choosing Nex AI for your AI transformation journey! We're excited to discuss how we can help {{.Company}} leverage cutting-edge AI technology.</p>

      <div class="info-card">
        <h2>📅 Your Consultation Details</h2>
        <p><strong>Date &amp; Time:</strong> {{.TimeSlot}}</p>
        <p><strong>Duration:</strong> 30 minutes</p>
        <p><strong>Format:</strong> Video Call (link will be sent 24 hours before)</p>
      </div>

      <h3>What We'll Discuss:</h3>
      <ul>
        <li>Your specific AI requirements and goals</li>
        <li>Custom solution architecture tailored to your needs</li>
        <li>Realistic timeline and implementation milestones</li>
        <li>Investment options and ROI projections</li>
        <li>Next steps and action plan</li>
      </ul>

      <h3>How to Prepare:</h3>
      <ul>
        <li>Gather any examples or references you'd like to discuss</li>
        <li>Think about your must-have features and nice-to-haves</li>
        <li>Prepare any questions about our process or technology</li>
      </ul>

      <p>We'll send you a calendar invite and meeting link 24 hours before our scheduled call.</p>

      <p>Looking forward to speaking with you!</p>

      <p><strong>Best regards,<br>The Nex AI Team</strong></p>

      <div class="footer">
        <p>Nex AI - Transforming Business with AI<br>
        📧 hello@nexai.com | 📱 +1 (555) 123-4567<br>
        🌐 www.nexai.com</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

func renderCompanyEmail(req *EmailDispatchRequest) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := companyTmpl.Execute(&buf, newTemplateData(req)); err != nil {
		return "", "", fmt.Errorf("dispatch: render company email: %w", err)
	}
	return fmt.Sprintf("New Consultation Request - %s", req.FormData.Company), buf.String(), nil
}

func renderClientEmail(req *EmailDispatchRequest) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := clientTmpl.Execute(&buf, newTemplateData(req)); err != nil {
		return "", "", fmt.Errorf("dispatch: render client email: %w", err)
	}
	return "Your AI Consultation is Confirmed - Nex AI", buf.String(), nil
}
