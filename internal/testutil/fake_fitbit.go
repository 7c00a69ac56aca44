package testutil

import (
	"fitheat/internal/models"
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"time"
)

// FakeFitbit serves the token, sleep and active-zone-minutes endpoints
// with a deterministic year of data. Day n of the year (1-based) wakes at
// 05:00 + n%4 hours, so the main sleep ends before 07:00 when n%4 is 0 or 1.
// Active zone minutes are n%150.
type FakeFitbit struct {
	*httptest.Server

	SleepStatus    int
	TokenRequests  atomic.Int32
	SleepRequests  atomic.Int32
	AzmRequests    atomic.Int32
	LastAuthHeader atomic.Value
}

func NewFakeFitbit() *FakeFitbit {
	f := &FakeFitbit{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", f.token)
	mux.HandleFunc("GET /1.2/user/{user}/sleep/date/{from}/{to}", f.sleep)
	mux.HandleFunc("GET /1/user/{user}/activities/active-zone-minutes/date/{from}/{to}", f.azm)
	f.Server = httptest.NewServer(mux)
	return f
}

// FakeWakeHour is the hour the fake's main sleep ends on day.
func FakeWakeHour(day time.Time) int {
	return 5 + day.YearDay()%4
}

func (f *FakeFitbit) token(w http.ResponseWriter, r *http.Request) {
	f.TokenRequests.Add(1)
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "refresh_token" {
		http.Error(w, `{"errors":[{"errorType":"invalid_request"}]}`, http.StatusBadRequest)
		return
	}
	if _, _, ok := r.BasicAuth(); !ok {
		http.Error(w, `{"errors":[{"errorType":"invalid_client"}]}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]any{
		"access_token":  "fresh-access",
		"refresh_token": "fresh-refresh",
		"expires_in":    28800,
		"token_type":    "Bearer",
		"user_id":       "FAKE01",
		"scope":         "sleep activity",
	})
}

func (f *FakeFitbit) sleep(w http.ResponseWriter, r *http.Request) {
	f.SleepRequests.Add(1)
	f.LastAuthHeader.Store(r.Header.Get("Authorization"))
	if f.SleepStatus != 0 {
		http.Error(w, `{"errors":[{"errorType":"system"}]}`, f.SleepStatus)
		return
	}
	from, to, ok := pathRange(r)
	if !ok {
		http.Error(w, "bad range", http.StatusBadRequest)
		return
	}

	entries := []map[string]any{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		wake := d.Add(time.Duration(FakeWakeHour(d)) * time.Hour)
		entries = append(entries, map[string]any{
			"logId":         d.Unix(),
			"dateOfSleep":   d.Format(models.DateLayout),
			"startTime":     wake.Add(-7 * time.Hour).Format("2006-01-02T15:04:05.000"),
			"endTime":       wake.Format("2006-01-02T15:04:05.000"),
			"isMainSleep":   true,
			"timeInBed":     420,
			"minutesAsleep": 390,
			"efficiency":    92,
		})
		if d.YearDay()%2 == 0 {
			nap := d.Add(14 * time.Hour)
			entries = append(entries, map[string]any{
				"logId":       d.Unix() + 1,
				"dateOfSleep": d.Format(models.DateLayout),
				"startTime":   nap.Format("2006-01-02T15:04:05.000"),
				"endTime":     nap.Add(30 * time.Minute).Format("2006-01-02T15:04:05.000"),
				"isMainSleep": false,
				"timeInBed":   30,
			})
		}
	}
	writeJSON(w, map[string]any{"sleep": entries})
}

func (f *FakeFitbit) azm(w http.ResponseWriter, r *http.Request) {
	f.AzmRequests.Add(1)
	from, to, ok := pathRange(r)
	if !ok {
		http.Error(w, "bad range", http.StatusBadRequest)
		return
	}

	entries := []map[string]any{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		entries = append(entries, map[string]any{
			"dateTime": d.Format(models.DateLayout),
			"value":    map[string]int{"activeZoneMinutes": d.YearDay() % 150},
		})
	}
	writeJSON(w, map[string]any{"activities-active-zone-minutes": entries})
}

func pathRange(r *http.Request) (time.Time, time.Time, bool) {
	from, err := time.Parse(models.DateLayout, r.PathValue("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(models.DateLayout, strings.TrimSuffix(r.PathValue("to"), ".json"))
	if err != nil || to.Before(from) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("encode: %s", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
