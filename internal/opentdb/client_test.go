package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(&http.Client{Transport: rt})
}

func TestFetchQuestionsUsesDefaultAmountWhenNonPositive(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		resp := http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"response_code":0,"results":[]}`))),
			Header:     make(http.Header),
		}
		return &resp, nil
	}))

	questions, err := client.FetchQuestions(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
	if seenAmount != "10" {
		t.Fatalf("expected default amount 10, got %q", seenAmount)
	}
}

func TestFetchQuestionsPropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		resp := http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     make(http.Header),
		}
		return &resp, nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 5); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestFetchQuestionsJSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		resp := http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte("not-json"))),
			Header:     make(http.Header),
		}
		return &resp, nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 3); err == nil {
		t.Fatalf("expected JSON decode error")
	}
}

func TestFetchQuestionsNonZeroResponseCode(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		payload := apiResponse{
			ResponseCode: 1,
			Results: []RawQuestion{
				{Question: "ignored"},
			},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}

		resp := http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(encoded)),
			Header:     make(http.Header),
		}
		return &resp, nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 3); err == nil {
		t.Fatalf("expected error for non-zero response_code")
	}
}

func TestToDraftQuestionsTracksCorrectOption(t *testing.T) {
	raw := []RawQuestion{
		{
			Question:         "What is 2 &plus; 2?",
			CorrectAnswer:    "4",
			IncorrectAnswers: []string{"3", "5", "22"},
		},
	}

	drafts := ToDraftQuestions(raw)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	draft := drafts[0]
	if draft.Text != "What is 2 + 2?" {
		t.Fatalf("entities not unescaped: %q", draft.Text)
	}
	if len(draft.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(draft.Options))
	}
	if draft.CorrectOption < 1 || draft.CorrectOption > len(draft.Options) {
		t.Fatalf("correct option out of range: %d", draft.CorrectOption)
	}
	if draft.Options[draft.CorrectOption-1] != "4" {
		t.Fatalf("correct option points at %q, want %q", draft.Options[draft.CorrectOption-1], "4")
	}
}

func TestToDraftQuestionsCapsAndSkips(t *testing.T) {
	raw := []RawQuestion{
		{
			Question:         "Too many options",
			CorrectAnswer:    "right",
			IncorrectAnswers: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			Question:      "No options at all",
			CorrectAnswer: "right",
		},
	}

	drafts := ToDraftQuestions(raw)
	if len(drafts) != 1 {
		t.Fatalf("expected only the cappable question, got %d drafts", len(drafts))
	}
	if len(drafts[0].Options) != 6 {
		t.Fatalf("expected options capped at 6, got %d", len(drafts[0].Options))
	}
	if drafts[0].Options[drafts[0].CorrectOption-1] != "right" {
		t.Fatalf("correct answer lost while capping: %+v", drafts[0])
	}
}
