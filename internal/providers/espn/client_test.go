package espn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/kvckarthik/sportsData/internal/providers"
)

const scoreboardBody = `{
	"season": {"year": 2024, "type": 2},
	"week": {"number": 1},
	"events": [
		{
			"id": "401671789",
			"name": "Pittsburgh Steelers at Atlanta Falcons",
			"date": "2024-09-08T17:00Z",
			"status": {"type": {"description": "Scheduled"}},
			"competitions": [
				{
					"competitors": [
						{"homeAway": "home", "team": {"displayName": "Atlanta Falcons"}},
						{"homeAway": "away", "team": {"displayName": "Pittsburgh Steelers"}}
					]
				}
			]
		}
	]
}`

func TestFetchScoreboardHitsAPIAndDecodes(t *testing.T) {
	var capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", req.Method)
		}
		capturedQuery = req.URL.RawQuery
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(scoreboardBody)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/scoreboard",
		HTTPClient: &http.Client{Transport: rt},
	})

	doc, err := client.FetchScoreboard(context.Background(), providers.Query{Year: 2024})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q, err := url.ParseQuery(capturedQuery)
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQuery, err)
	}
	if q.Get("limit") != "100" {
		t.Fatalf("expected limit=100, got %s", q.Get("limit"))
	}
	if len(q) != 1 {
		t.Fatalf("expected limit to be the only parameter, got %s", capturedQuery)
	}

	sb := doc.Scoreboard
	if sb.Season.Year == nil || *sb.Season.Year != 2024 {
		t.Fatalf("unexpected season %+v", sb.Season)
	}
	if sb.Week.Number == nil || *sb.Week.Number != 1 {
		t.Fatalf("unexpected week %+v", sb.Week)
	}
	if len(sb.Events) != 1 || sb.Events[0].ID != "401671789" {
		t.Fatalf("unexpected events %+v", sb.Events)
	}
	if len(doc.Raw) == 0 {
		t.Fatal("expected raw payload to be preserved")
	}
}

func TestFetchScoreboardPinsRegularSeasonWhenWeekSet(t *testing.T) {
	var capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedQuery = req.URL.RawQuery
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"events": []}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/scoreboard",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchScoreboard(context.Background(), providers.Query{Year: 2024, Week: 5}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q, err := url.ParseQuery(capturedQuery)
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQuery, err)
	}
	if q.Get("week") != "5" {
		t.Fatalf("expected week=5, got %s", q.Get("week"))
	}
	if q.Get("seasontype") != "2" {
		t.Fatalf("expected seasontype=2, got %s", q.Get("seasontype"))
	}
	if q.Has("dates") {
		t.Fatalf("expected the season year to stay out of the query, got %s", capturedQuery)
	}
}

func TestFetchScoreboardHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/scoreboard",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchScoreboard(context.Background(), providers.Query{})
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	fErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", fErr.StatusCode)
	}
	if !strings.Contains(fErr.Error(), "boom") {
		t.Fatalf("expected body excerpt in error, got %s", fErr.Error())
	}
}

func TestFetchScoreboardHandlesTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, cause
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/scoreboard",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchScoreboard(context.Background(), providers.Query{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be wrapped")
	}
}

func TestFetchScoreboardHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/scoreboard",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchScoreboard(context.Background(), providers.Query{})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError, got %T", err)
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
	if c.limit != defaultLimit {
		t.Fatalf("expected default limit, got %d", c.limit)
	}
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatal("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatal("expected timeout to be set on default http client")
	}
}

func TestNormalizeBaseURLTrimsSlash(t *testing.T) {
	if got := normalizeBaseURL("http://example.com/scoreboard/"); got != "http://example.com/scoreboard" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
