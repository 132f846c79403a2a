//go:generate mockgen -destination=./mocks/mock_text_to_speech_client.go -package=mocks -source=text-to-speech-clients.go
package shared

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/overmindtech/harvester/discovery"
)

// TextToSpeechClient lists the available voices. The API returns every voice
// in a single response
type TextToSpeechClient interface {
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
	Close() error
}

type textToSpeechClient struct {
	client *texttospeech.Client
}

func (c textToSpeechClient) ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error) {
	return c.client.ListVoices(ctx, req, opts...)
}

func (c textToSpeechClient) Close() error {
	return c.client.Close()
}

// NewTextToSpeechClient creates a new TextToSpeechClient
func NewTextToSpeechClient(client *texttospeech.Client) TextToSpeechClient {
	return &textToSpeechClient{
		client: client,
	}
}

// TextToSpeechConnector opens a Text-to-Speech client
func TextToSpeechConnector(opts ...option.ClientOption) discovery.Connector[TextToSpeechClient] {
	return func(ctx context.Context) (TextToSpeechClient, error) {
		client, err := texttospeech.NewClient(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("error creating text-to-speech client: %w", err)
		}

		return NewTextToSpeechClient(client), nil
	}
}
