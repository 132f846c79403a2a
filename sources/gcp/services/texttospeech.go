package services

import (
	"context"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/overmindtech/harvester/discovery"
	gcpshared "github.com/overmindtech/harvester/sources/gcp/shared"
)

// TextToSpeech discovers the voices offered by the Text-to-Speech API. They
// are not owned by the project but are stamped with it like everything else
type TextToSpeech struct {
	connect discovery.Connector[gcpshared.TextToSpeechClient]
}

// NewTextToSpeech creates the Text-to-Speech module
func NewTextToSpeech(connect discovery.Connector[gcpshared.TextToSpeechClient]) *TextToSpeech {
	return &TextToSpeech{connect: connect}
}

func (t *TextToSpeech) Service() string {
	return gcpshared.TextToSpeech
}

func (t *TextToSpeech) Discover(ctx context.Context, projectID string, session *discovery.Session, emitter discovery.Emitter, reporter discovery.ErrorReporter) {
	s := newScan(projectID, session, emitter, reporter)

	err := discovery.WithClient(ctx, t.connect, func(client gcpshared.TextToSpeechClient) error {
		resp, err := client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
		if err != nil {
			return discovery.ListingError(err)
		}

		pass := kindPass[*texttospeechpb.Voice]{
			kind: gcpshared.TextToSpeechVoice,
			id:   (*texttospeechpb.Voice).GetName,
		}

		return pass.run(ctx, s, gcpshared.NewSliceIterator(resp.GetVoices()...))
	})

	s.report(ctx, gcpshared.TextToSpeechVoice.ResourceType, err)
}
