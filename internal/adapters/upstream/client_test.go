package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"retroboard/internal/core/daterange"
	perr "retroboard/internal/platform/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL}, StaticToken("secret"))
}

func TestClientSendsAuthAndCorrelationHeaders(t *testing.T) {
	var gotToken, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-ADMIN-TOKEN")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.SignupCounts(context.Background(), daterange.Range{}); err != nil {
		t.Fatalf("SignupCounts: %v", err)
	}
	if gotToken != "secret" {
		t.Fatalf("X-ADMIN-TOKEN = %q, want %q", gotToken, "secret")
	}
	if gotReqID == "" {
		t.Fatal("X-Request-ID missing")
	}
}

func TestClientEncodesRangeAndCriteriaParams(t *testing.T) {
	var got map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{}
		for k := range q {
			got[k] = q.Get(k)
		}
		_, _ = w.Write([]byte(`{"meaningfulMemberCount":3,"totalMemberCount":10}`))
	})

	rng, _ := daterange.ParseDays("2025-03-10", "2025-03-12")
	res, err := c.MeaningfulCohort(context.Background(), rng, 2, 100)
	if err != nil {
		t.Fatalf("MeaningfulCohort: %v", err)
	}
	if res.MeaningfulMemberCount != 3 || res.TotalMemberCount != 10 {
		t.Fatalf("unexpected result %+v", res)
	}

	want := map[string]string{
		"startDate":        "2025-03-10T00:00:00",
		"endDate":          "2025-03-12T23:59:59",
		"retrospectCount":  "2",
		"retrospectLength": "100",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("param %s = %q, want %q (all: %v)", k, got[k], v, got)
		}
	}
}

func TestClientChoiceCountParams(t *testing.T) {
	var q url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		_, _ = w.Write([]byte(`[{"templateName":"kpt","count":4}]`))
	})

	rows, err := c.TemplateChoiceCounts(context.Background(), daterange.Range{}, ChoiceRecommend, 0, 5)
	if err != nil {
		t.Fatalf("TemplateChoiceCounts: %v", err)
	}
	if len(rows) != 1 || rows[0].TemplateName != "kpt" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if q.Get("choiceType") != "RECOMMEND" || q.Get("page") != "0" || q.Get("size") != "5" {
		t.Fatalf("unexpected query %v", q)
	}
}

func TestClientMapsServerErrorToUpstreamCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.StayTimes(context.Background(), daterange.Range{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("code = %v, want upstream", perr.CodeOf(err))
	}
}

func TestClientMapsAuthRejectionToUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.TemplateUsage(context.Background(), daterange.Range{})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("code = %v, want unauthorized", perr.CodeOf(err))
	}
}

func TestClientMapsMalformedBodyToJSONCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := c.SpaceMemberCounts(context.Background(), daterange.Range{})
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestClientMapsTransportFailureToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // dead endpoint

	c := NewClient(Options{BaseURL: srv.URL}, StaticToken("secret"))
	_, err := c.SignupCounts(context.Background(), daterange.Range{})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("code = %v, want unavailable", perr.CodeOf(err))
	}
}

func TestStaticTokenEmptyRejects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued without a token")
	})
	c.token = StaticToken("")

	_, err := c.SignupCounts(context.Background(), daterange.Range{})
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("code = %v, want unauthorized", perr.CodeOf(err))
	}
}
