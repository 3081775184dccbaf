package orchestrator

import (
	"bytes"
	"encoding/json"
	"strings"
)

type record map[string]json.RawMessage

// detailsPayload accepts a single phone record.
func detailsPayload(raw json.RawMessage) json.RawMessage {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil || !r.isPhone() {
		return nil
	}
	return compact(raw)
}

// recommendationsPayload accepts a non-empty list of phone records.
func recommendationsPayload(raw json.RawMessage) json.RawMessage {
	var list []record
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil
	}
	for _, r := range list {
		if !r.isPhone() {
			return nil
		}
	}
	return compact(raw)
}

// comparisonPayload accepts {"phone_1": record, "phone_2": record}.
func comparisonPayload(raw json.RawMessage) json.RawMessage {
	var pair struct {
		Error  *json.RawMessage `json:"error"`
		Phone1 record           `json:"phone_1"`
		Phone2 record           `json:"phone_2"`
	}
	if err := json.Unmarshal(raw, &pair); err != nil || pair.Error != nil {
		return nil
	}
	if !pair.Phone1.isPhone() || !pair.Phone2.isPhone() {
		return nil
	}
	return compact(raw)
}

func (r record) isPhone() bool {
	if r == nil {
		return false
	}
	if _, isErr := r["error"]; isErr {
		return false
	}
	var name string
	if err := json.Unmarshal(r["name"], &name); err != nil {
		return false
	}
	return strings.TrimSpace(name) != ""
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil
	}
	return buf.Bytes()
}
