package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"nurse-roster/internal/middleware"
	"nurse-roster/internal/models"

	"github.com/chromedp/chromedp"
)

func TestE2E(t *testing.T) {
	if os.Getenv("E2E") == "" {
		t.Skip("set E2E=1 to run the browser test")
	}

	gen := &stubGenerator{generateFunc: func(ctx context.Context, nurses []models.Nurse) (models.Schedule, error) {
		sched := emptyWeek()
		for _, nurse := range nurses {
			sched[models.Monday].DayShift = append(sched[models.Monday].DayShift, nurse.Name)
		}
		return sched, nil
	}}
	resetTestState(gen)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			middleware.CSRF(handleRoster)(w, r)
		case "/api/nurses":
			middleware.CSRF(handleAddNurse)(w, r)
		case "/api/nurses/delete":
			middleware.CSRF(handleRemoveNurse)(w, r)
		case "/api/nurses/preferences":
			middleware.CSRF(handleSavePreferences)(w, r)
		case "/api/schedule/generate":
			middleware.CSRF(handleGenerate)(w, r)
		case "/active_search":
			handleActiveSearch(w, r)
		default:
			if strings.HasPrefix(r.URL.Path, "/static/") {
				http.StripPrefix("/static/", http.FileServer(http.Dir(resolveTemplatePath("ui/static")))).ServeHTTP(w, r)
				return
			}
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	t.Run("AddNurse", func(t *testing.T) {
		var listText string

		err := chromedp.Run(ctx,
			chromedp.Navigate(ts.URL),
			chromedp.WaitVisible(`input[name="name"]`),
			chromedp.SendKeys(`input[name="name"]`, "Florence Nightingale"),
			chromedp.Click(`form[action="/api/nurses"] button[type="submit"]`),
			chromedp.WaitVisible(`#nurse-results`),
			chromedp.Text(`#nurse-results`, &listText),
		)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(listText, "Florence Nightingale") {
			t.Errorf("nurse list does not show the added nurse: %q", listText)
		}
	})

	t.Run("GenerateSchedule", func(t *testing.T) {
		err := chromedp.Run(ctx,
			chromedp.Click(`form[action="/api/schedule/generate"] button[type="submit"]`),
		)
		if err != nil {
			t.Fatal(err)
		}

		waitForIdle(t)

		var gridText string
		err = chromedp.Run(ctx,
			chromedp.Navigate(ts.URL),
			chromedp.WaitVisible(`.schedule-grid`),
			chromedp.Text(`.schedule-grid`, &gridText),
		)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(gridText, "Florence Nightingale") {
			t.Errorf("schedule grid does not show the assignment: %q", gridText)
		}
		if !strings.Contains(gridText, "Nobody assigned") {
			t.Errorf("schedule grid does not show the unassigned marker: %q", gridText)
		}
	})
}
