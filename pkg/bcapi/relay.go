package bcapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
)

// Notification is one change notification delivered to a webhook
// subscription's notification URL.
type Notification struct {
	SubscriptionID     string     `json:"subscriptionId"`
	ClientState        string     `json:"clientState,omitempty"`
	ExpirationDateTime *time.Time `json:"expirationDateTime,omitempty"`
	Resource           string     `json:"resource"`
	ChangeType         string     `json:"changeType"`
	LastModified       *time.Time `json:"lastModifiedDateTime,omitempty"`
}

// NotificationBatch is the envelope the service posts to the notification
// URL: a batch of notifications under "value".
type NotificationBatch struct {
	Value []Notification `json:"value"`
}

// Publisher publishes notification payloads to a subject. *nats.Conn
// satisfies this interface.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher connects a Relay to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to a NATS server for notification publishing.
func NewNATSPublisher(url string, opts ...nats.Option) (*NATSPublisher, error) {
	opts = append([]nats.Option{nats.Name("bcapi-relay")}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn}, nil
}

// Publish implements Publisher.
func (p *NATSPublisher) Publish(subject string, data []byte) error {
	err := p.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Close drains the underlying connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// Relay is the HTTP handler a webhook subscription points at. It answers
// the service's validation handshake (echoing the validationToken query
// parameter) and republishes each notification in a batch to
// "{subjectPrefix}.{changeType}".
//
// When clientState is non-empty, batches whose notifications carry a
// different client state are rejected with 401, since anyone who knows the
// notification URL could post to it otherwise.
type Relay struct {
	publisher     Publisher
	subjectPrefix string
	clientState   string
	logger        Logger
}

// NewRelay creates a relay publishing through the given publisher.
func NewRelay(publisher Publisher, subjectPrefix, clientState string, logger Logger) *Relay {
	if subjectPrefix == "" {
		subjectPrefix = "bc.notifications"
	}

	return &Relay{
		publisher:     publisher,
		subjectPrefix: subjectPrefix,
		clientState:   clientState,
		logger:        logger,
	}
}

// ServeHTTP implements http.Handler.
func (r *Relay) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	// Subscription creation and renewal both trigger the handshake.
	if token := request.URL.Query().Get("validationToken"); token != "" {
		writer.Header().Set("Content-Type", "text/plain")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(token))

		return
	}

	if request.Method != http.MethodPost {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	var batch NotificationBatch

	err := json.NewDecoder(request.Body).Decode(&batch)
	if err != nil {
		http.Error(writer, "malformed notification batch", http.StatusBadRequest)

		return
	}

	for _, notification := range batch.Value {
		if r.clientState != "" && notification.ClientState != r.clientState {
			http.Error(writer, "client state mismatch", http.StatusUnauthorized)

			return
		}
	}

	for _, notification := range batch.Value {
		if publishErr := r.publish(notification); publishErr != nil {
			if r.logger != nil {
				r.logger.Error("failed to publish notification", map[string]interface{}{
					"subscription": notification.SubscriptionID,
					"resource":     notification.Resource,
					"error":        publishErr.Error(),
				})
			}

			http.Error(writer, "publish failed", http.StatusInternalServerError)

			return
		}
	}

	writer.WriteHeader(http.StatusAccepted)
}

func (r *Relay) publish(notification Notification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}

	subject := r.subjectPrefix + "." + notification.ChangeType

	err = r.publisher.Publish(subject, data)
	if err != nil {
		return err
	}

	if r.logger != nil {
		r.logger.Debug("relayed notification", map[string]interface{}{
			"subject":  subject,
			"resource": notification.Resource,
		})
	}

	return nil
}
