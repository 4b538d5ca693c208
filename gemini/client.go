package gemini

import (
	"context"

	"github.com/fwojciec/webask"
	"google.golang.org/genai"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// NewClient creates a Gemini API client for apiKey.
// Returns EUNCONFIGURED if the key is empty or the client cannot be created.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, webask.Errorf(webask.EUNCONFIGURED, "%s not set. Get a key at https://aistudio.google.com/apikey", APIKeyEnv)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, webask.Errorf(webask.EUNCONFIGURED, "could not configure the Gemini client: %v", err)
	}
	return client, nil
}
