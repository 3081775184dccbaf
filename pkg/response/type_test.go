package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"phone-assistant/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00Z"`},
		{"offset is normalised", time.Date(2024, 5, 1, 21, 0, 0, 0, ist), `"2024-05-01T15:30:00Z"`},
		{"zero is null", time.Time{}, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var d response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T15:30:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !time.Time(d).Equal(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected time %v", time.Time(d))
	}
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Error("expected parse error")
	}
}
