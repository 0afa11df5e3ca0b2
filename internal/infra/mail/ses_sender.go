package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/xavierca1/site-forms/internal/entity"
)

// SesApi is the subset of the SES v2 client used for contact notifications.
type SesApi interface {
	SendEmail(
		context.Context, *sesv2.SendEmailInput, ...func(*sesv2.Options),
	) (*sesv2.SendEmailOutput, error)
}

type SESSender struct {
	Client    SesApi
	ConfigSet string
}

// NewSESSender loads the default AWS credential chain for region.
func NewSESSender(ctx context.Context, region, configSet string) (*SESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESSender{Client: sesv2.NewFromConfig(cfg), ConfigSet: configSet}, nil
}

func (s *SESSender) Name() string {
	return "ses"
}

func (s *SESSender) Send(ctx context.Context, n entity.Notification) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.From),
		Destination:      &sestypes.Destination{ToAddresses: []string{n.To}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(n.Subject), Charset: aws.String("UTF-8")},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(n.Text), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []sestypes.MessageTag{
			{Name: aws.String("submission_id"), Value: aws.String(n.ID)},
		},
	}
	if n.ReplyTo != "" {
		input.ReplyToAddresses = []string{n.ReplyTo}
	}
	if s.ConfigSet != "" {
		input.ConfigurationSetName = aws.String(s.ConfigSet)
	}

	if _, err := s.Client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %s failed: %w", n.To, err)
	}
	return nil
}
