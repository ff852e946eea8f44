package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

const (
	apiURL        = "https://opentdb.com/api.php"
	defaultAmount = 10
)

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

func (c *Client) FetchQuestions(ctx context.Context, amount int) ([]RawQuestion, error) {
	if amount <= 0 {
		amount = defaultAmount
	}

	reqURL := apiURL + "?amount=" + strconv.Itoa(amount)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response_code=%d", payload.ResponseCode)
	}

	return payload.Results, nil
}

// ToDraftQuestions converts fetched trivia into quiz drafts: HTML
// entities are unescaped and the options are shuffled with the correct
// position tracked. Questions with too many options are capped at the
// quiz limit, always keeping the correct one.
func ToDraftQuestions(raw []RawQuestion) []quiz.DraftQuestion {
	drafts := make([]quiz.DraftQuestion, 0, len(raw))
	for _, r := range raw {
		options := make([]string, 0, len(r.IncorrectAnswers)+1)
		options = append(options, html.UnescapeString(r.CorrectAnswer))
		for _, incorrect := range r.IncorrectAnswers {
			options = append(options, html.UnescapeString(incorrect))
		}
		if len(options) > quiz.MaxOptions {
			options = options[:quiz.MaxOptions]
		}
		if len(options) < quiz.MinOptions {
			continue
		}

		// Fisher-Yates, tracking where the correct answer ends up.
		correct := 0
		for i := len(options) - 1; i > 0; i-- {
			j := rand.Intn(i + 1)
			options[i], options[j] = options[j], options[i]
			switch correct {
			case i:
				correct = j
			case j:
				correct = i
			}
		}

		drafts = append(drafts, quiz.DraftQuestion{
			Text:          html.UnescapeString(r.Question),
			Options:       options,
			CorrectOption: correct + 1,
		})
	}
	return drafts
}
