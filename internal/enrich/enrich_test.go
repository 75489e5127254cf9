package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetcher_Summarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head>
			<title>Initech - TPS Reports</title>
			<meta name="description" content="We streamline TPS reporting.">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher()
	got := f.Summarize(context.Background(), srv.URL)

	want := "Company Website: " + srv.URL +
		"\nTitle: Initech - TPS Reports" +
		"\nDescription: We streamline TPS reporting."
	if got != want {
		t.Errorf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}

func TestFetcher_Summarize_MissingDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Initech</title></head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher()
	got := f.Summarize(context.Background(), srv.URL)

	want := "Company Website: " + srv.URL + "\nTitle: Initech\nDescription: "
	if got != want {
		t.Errorf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}

func TestFetcher_Summarize_Unreachable(t *testing.T) {
	f := NewFetcher()
	got := f.Summarize(context.Background(), "http://127.0.0.1:1")

	if got != "Company Website: http://127.0.0.1:1" {
		t.Errorf("expected URL-only summary, got %q", got)
	}
}

func TestFetcher_Summarize_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFetcher()
	got := f.Summarize(context.Background(), srv.URL)

	if got != "Company Website: "+srv.URL {
		t.Errorf("expected URL-only summary, got %q", got)
	}
}

func TestFetcher_Summarize_NoMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head></head><body>just text</body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher()
	got := f.Summarize(context.Background(), srv.URL)

	if got != "Company Website: "+srv.URL {
		t.Errorf("expected URL-only summary, got %q", got)
	}
}

func TestFetcher_Summarize_InvalidURL(t *testing.T) {
	f := NewFetcher()
	got := f.Summarize(context.Background(), "://not-a-url")

	if got != "Company Website: ://not-a-url" {
		t.Errorf("expected URL-only summary, got %q", got)
	}
}
