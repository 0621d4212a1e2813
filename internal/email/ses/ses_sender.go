package ses

import (
	"context"
	"fmt"
	"html"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	portalURL   string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, portalURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		portalURL:   portalURL,
	}, nil
}

func (s *sesSender) SendVerificationOutcome(ctx context.Context, toEmail, toName string, outcome port.VerificationOutcome) error {
	subject := "Your identity document did not pass verification"
	if outcome.Valid {
		subject = "Your identity document has been verified"
	}

	htmlBody := buildOutcomeHTML(toName, s.portalURL, outcome)
	textBody := buildOutcomeText(toName, s.portalURL, outcome)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildOutcomeText(name, portalURL string, outcome port.VerificationOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	if outcome.Valid {
		fmt.Fprintf(&b, "Your %s passed verification. You can continue your permit application at:\n%s\n", outcome.IDType, portalURL)
	} else {
		fmt.Fprintf(&b, "Your %s did not pass verification for the following reasons:\n\n", outcome.IDType)
		for _, reason := range outcome.Reasons {
			fmt.Fprintf(&b, "  - %s\n", reason)
		}
		fmt.Fprintf(&b, "\nPlease upload a clearer photo or a different valid ID at:\n%s\n", portalURL)
	}
	b.WriteString("\nPermit Licensing Portal")
	return b.String()
}

func buildOutcomeHTML(name, portalURL string, outcome port.VerificationOutcome) string {
	var body strings.Builder
	fmt.Fprintf(&body, "<p>Hi %s,</p>", html.EscapeString(name))
	if outcome.Valid {
		fmt.Fprintf(&body, "<p>Your %s passed verification. You can continue your permit application.</p>",
			html.EscapeString(outcome.IDType))
	} else {
		fmt.Fprintf(&body, "<p>Your %s did not pass verification for the following reasons:</p><ul>",
			html.EscapeString(outcome.IDType))
		for _, reason := range outcome.Reasons {
			fmt.Fprintf(&body, "<li>%s</li>", html.EscapeString(reason))
		}
		body.WriteString("</ul><p>Please upload a clearer photo or a different valid ID.</p>")
	}

	heading := "Verification failed"
	if outcome.Valid {
		heading = "Verification passed"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  %s
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #166534; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Portal</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Permit Licensing Portal - Identity Verification</p>
</body>
</html>`, heading, body.String(), portalURL)
}
