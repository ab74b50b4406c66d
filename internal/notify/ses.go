package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/mkiplagat/bursary-intake/internal/entity"
)

// SESNotifier sends notifications through Amazon SES.
type SESNotifier struct {
	client *ses.Client
	from   string
	logger *slog.Logger
}

func NewSESNotifier(ctx context.Context, region, fromAddress string, logger *slog.Logger) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESNotifier{
		client: ses.NewFromConfig(cfg),
		from:   fromAddress,
		logger: logger,
	}, nil
}

func (n *SESNotifier) SendSubmissionConfirmation(ctx context.Context, to string, app *entity.Application) error {
	subject := fmt.Sprintf("Bursary application %s received", app.ApplicationNumber)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour bursary application %s has been received and is awaiting review.\n"+
			"You will be notified when a decision is made.\n\n"+
			"Keep this reference number for any follow-up.\n",
		app.StudentName, app.ApplicationNumber)
	return n.send(ctx, to, subject, body)
}

func (n *SESNotifier) SendStatusChange(ctx context.Context, to string, app *entity.Application) error {
	subject := fmt.Sprintf("Bursary application %s: %s", app.ApplicationNumber, app.Status)
	body := fmt.Sprintf(
		"Dear %s,\n\nThe status of your bursary application %s has changed to: %s.\n",
		app.StudentName, app.ApplicationNumber, app.Status)
	if app.ReviewerComments != nil && *app.ReviewerComments != "" {
		body += fmt.Sprintf("\nReviewer comments: %s\n", *app.ReviewerComments)
	}
	return n.send(ctx, to, subject, body)
}

func (n *SESNotifier) send(ctx context.Context, to, subject, body string) error {
	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.from),
	})
	if err != nil {
		n.logger.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return err
	}
	n.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}
