package sinks

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/overmindtech/harvester/discovery"
	"github.com/overmindtech/harvester/tracing"
)

// Headers set on every published message
const (
	HeaderSchemaVersion = "Harvester-Schema-Version"
	HeaderSession       = "Harvester-Session"
	HeaderResourceType  = "Harvester-Resource-Type"
)

// DefaultSubjectPrefix is used when no prefix is configured
const DefaultSubjectPrefix = "harvester"

// NATS publishes every envelope as JSON to a subject derived from its
// classification, e.g. "harvester.logging.sink". The message id is derived
// from the session and the resource identity so that JetStream can discard
// duplicates
type NATS struct {
	conn   *nats.Conn
	prefix string
}

// NewNATS publishes on conn. The connection is flushed and closed by Close
func NewNATS(conn *nats.Conn, subjectPrefix string) *NATS {
	if subjectPrefix == "" {
		subjectPrefix = DefaultSubjectPrefix
	}

	return &NATS{
		conn:   conn,
		prefix: subjectPrefix,
	}
}

// Subject returns the subject the envelope is published to
func (n *NATS) Subject(envelope *discovery.VersionedEnvelope) string {
	return n.prefix + "." + routingKey(envelope.ClassificationPath)
}

func (n *NATS) Emit(ctx context.Context, envelope *discovery.VersionedEnvelope) {
	subject := n.Subject(envelope)
	id := envelope.Identity()

	lf := log.Fields{
		"ovm.nats.subject":           subject,
		"ovm.discovery.resourceType": id.ResourceType,
		"ovm.discovery.resourceId":   id.ResourceID,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		log.WithContext(ctx).WithError(err).WithFields(lf).Error("Error serialising envelope")
		return
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  make(nats.Header),
	}
	msg.Header.Set(HeaderSchemaVersion, envelope.SchemaVersion)
	msg.Header.Set(HeaderResourceType, id.ResourceType)
	if envelope.Session != nil {
		msg.Header.Set(HeaderSession, envelope.Session.ID)
		msg.Header.Set(nats.MsgIdHdr, envelope.Session.ID+"/"+id.Key())
	}
	tracing.InjectNatsHeaders(ctx, msg)

	if err := n.conn.PublishMsg(msg); err != nil {
		log.WithContext(ctx).WithError(err).WithFields(lf).Error("Error publishing envelope")
	}
}

// Close flushes pending messages and closes the connection
func (n *NATS) Close() error {
	err := n.conn.Flush()
	n.conn.Close()

	return err
}
