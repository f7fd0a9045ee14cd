package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
)

// pubsubSender hands mail to a delivery worker through a Google Cloud Pub/Sub topic.
type pubsubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

func newPubSubSender(ctx context.Context, projectID, topicID, credentialsPath string, logger *slog.Logger) (*pubsubSender, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Fail fast when the topic is missing
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Mail Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &pubsubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (s *pubsubSender) Send(ctx context.Context, mail *service.Mail) error {
	data, err := json.Marshal(mail)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{"kind": "mail"}
	if requestID := logs.RequestID(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	serverID, err := s.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	logs.FromContext(ctx, s.logger).DebugContext(ctx, "[PubSubMail] Mail queued",
		slog.String("subject", mail.Subject),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (s *pubsubSender) Close() error {
	s.publisher.Stop()

	return errors.WithStack(s.client.Close())
}
