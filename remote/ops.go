// SPDX-License-Identifier: EPL-2.0

package remote

import "context"

// SuppressBackgroundRequest carries a take for foreground/background
// separation.
type SuppressBackgroundRequest struct {
	AudioSamples []float32 `json:"audioSamples"`
	SampleRate   int       `json:"sampleRate"`
}

// SuppressBackgroundResponse splits the take into a voice track and a
// residual track, both at the request rate.
type SuppressBackgroundResponse struct {
	ForegroundSamples []float32 `json:"foregroundSamples"`
	BackgroundSamples []float32 `json:"backgroundSamples"`
}

// SuppressBackground separates speech from everything else in the
// take.
func (c *Client) SuppressBackground(ctx context.Context, req SuppressBackgroundRequest) (*SuppressBackgroundResponse, error) {
	var out SuppressBackgroundResponse
	if err := c.post(ctx, "suppress-background", "/voice/suppress-background", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// TranscribeRequest carries a take for speech recognition.
type TranscribeRequest struct {
	AudioSamples []float32 `json:"audioSamples"`
	SampleRate   int       `json:"sampleRate"`
	Language     string    `json:"language,omitempty"`
}

// TranscribeResponse is the recognized text.
type TranscribeResponse struct {
	Transcription string `json:"transcription"`
}

// Transcribe turns the take into text.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResponse, error) {
	var out TranscribeResponse
	if err := c.post(ctx, "transcribe", "/voice/transcribe", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SynthesizeRequest asks for text rendered as speech.
type SynthesizeRequest struct {
	Text      string `json:"text"`
	VoiceName string `json:"voiceName,omitempty"`
}

// SynthesizeResponse carries the rendered samples.
type SynthesizeResponse struct {
	AudioSamples []float32 `json:"audioSamples"`
	SampleRate   int       `json:"sampleRate"`
}

// Synthesize renders text as speech samples.
func (c *Client) Synthesize(ctx context.Context, req SynthesizeRequest) (*SynthesizeResponse, error) {
	var out SynthesizeResponse
	if err := c.post(ctx, "synthesize", "/voice/synthesize", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// EnrollVoiceRequest registers a speaker from a sample take.
type EnrollVoiceRequest struct {
	AudioSamples []float32 `json:"audioSamples"`
	SampleRate   int       `json:"sampleRate"`
	Speaker      string    `json:"speaker"`
}

// EnrollVoiceResponse identifies the stored enrollment.
type EnrollVoiceResponse struct {
	SpeakerID string `json:"speakerId"`
}

// EnrollVoice registers the speaker's voice print.
func (c *Client) EnrollVoice(ctx context.Context, req EnrollVoiceRequest) (*EnrollVoiceResponse, error) {
	var out EnrollVoiceResponse
	if err := c.post(ctx, "enroll-voice", "/voice/enroll", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// VerifyVoiceRequest checks a take against an enrolled speaker.
type VerifyVoiceRequest struct {
	AudioSamples []float32 `json:"audioSamples"`
	SampleRate   int       `json:"sampleRate"`
	Speaker      string    `json:"speaker"`
}

// VerifyVoiceResponse is the verification verdict and its confidence.
type VerifyVoiceResponse struct {
	Verified bool    `json:"verified"`
	Score    float64 `json:"score"`
}

// VerifyVoice matches the take against the speaker's enrollment.
func (c *Client) VerifyVoice(ctx context.Context, req VerifyVoiceRequest) (*VerifyVoiceResponse, error) {
	var out VerifyVoiceResponse
	if err := c.post(ctx, "verify-voice", "/voice/verify", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ConvertPhonemesRequest asks for the phoneme sequence of a text.
type ConvertPhonemesRequest struct {
	Text string `json:"text"`
}

// ConvertPhonemesResponse lists the phonemes in order.
type ConvertPhonemesResponse struct {
	Phonemes []string `json:"phonemes"`
}

// ConvertPhonemes maps text to its phoneme sequence.
func (c *Client) ConvertPhonemes(ctx context.Context, req ConvertPhonemesRequest) (*ConvertPhonemesResponse, error) {
	var out ConvertPhonemesResponse
	if err := c.post(ctx, "convert-phonemes", "/voice/phonemes", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GenerateSentenceRequest bounds the practice sentence to generate.
type GenerateSentenceRequest struct {
	MinWords int    `json:"minWords"`
	MaxWords int    `json:"maxWords"`
	Topic    string `json:"topic"`
}

// GenerateSentenceResponse is the generated sentence and its measured
// word count.
type GenerateSentenceResponse struct {
	Sentence  string `json:"sentence"`
	WordCount int    `json:"wordCount"`
}

// GenerateSentence produces a practice sentence within the word
// bounds, on the given topic.
func (c *Client) GenerateSentence(ctx context.Context, req GenerateSentenceRequest) (*GenerateSentenceResponse, error) {
	var out GenerateSentenceResponse
	if err := c.post(ctx, "generate-sentence", "/voice/sentence", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
