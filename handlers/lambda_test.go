package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pmaeria/youtube-transcript-extractor/services/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaTranscript_Success(t *testing.T) {
	svc := &fakeTranscriptService{entries: []transcript.Entry{
		{Text: "hello", Offset: 0, Duration: 1, Lang: "en"},
	}}
	handler := &LambdaHandler{TranscriptService: svc}

	resp, err := handler.Transcript(context.Background(), events.APIGatewayProxyRequest{
		PathParameters:        map[string]string{"videoId": "abc123"},
		QueryStringParameters: map[string]string{"lang": "en"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Headers["Content-Type"])
	assert.JSONEq(t, `[{"text":"hello","offset":0,"duration":1,"lang":"en"}]`, resp.Body)
	assert.Equal(t, "abc123", svc.gotID)
	assert.Equal(t, "en", svc.gotLang)
	assert.Equal(t, 1, svc.calls)
}

func TestLambdaTranscript_EmptyResultIsArray(t *testing.T) {
	handler := &LambdaHandler{TranscriptService: &fakeTranscriptService{}}

	resp, err := handler.Transcript(context.Background(), events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"videoId": "abc123"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", resp.Body)
}

func TestLambdaTranscript_Failure(t *testing.T) {
	svc := &fakeTranscriptService{err: errors.New("Transcript not available")}
	handler := &LambdaHandler{TranscriptService: svc}

	resp, err := handler.Transcript(context.Background(), events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"videoId": "bad"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Transcript not available", body.Message)
	assert.Equal(t, "Transcript not available", body.StatusMessage)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.Equal(t, 1, svc.calls)
}

func TestLambdaTranscript_MissingPathParameter(t *testing.T) {
	svc := &fakeTranscriptService{err: errors.New("Impossible to retrieve Youtube video ID.")}
	handler := &LambdaHandler{TranscriptService: svc}

	resp, err := handler.Transcript(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "", svc.gotID)
	assert.Equal(t, 1, svc.calls)
}
