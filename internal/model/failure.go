package model

import "strconv"

// FailureColumns is the export column order of failure records.
var FailureColumns = []string{"period", "age_group", "sex", "indicator_code", "url", "status", "reason", "transient"}

// FailureRecord describes one request that produced no data.
// Status is 0 when the request never received an HTTP response.
type FailureRecord struct {
	Period        string `json:"period"`
	AgeGroup      string `json:"age_group"`
	Sex           string `json:"sex"`
	IndicatorCode string `json:"indicator_code"`
	URL           string `json:"url"`
	Status        int    `json:"status"`
	Reason        string `json:"reason"`
	Transient     bool   `json:"transient"`
}

// Record renders the failure in FailureColumns order.
func (f FailureRecord) Record() []string {
	return []string{
		f.Period,
		f.AgeGroup,
		f.Sex,
		f.IndicatorCode,
		f.URL,
		strconv.Itoa(f.Status),
		f.Reason,
		strconv.FormatBool(f.Transient),
	}
}
