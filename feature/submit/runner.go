package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"lpcr-compare/core/document"
	"lpcr-compare/core/logger"
)

// Echo identifies the applicant a result belongs to without repeating the
// full applicant record. Only the last four SSN digits are echoed.
type Echo struct {
	Index     int    `json:"index"`
	FirstName any    `json:"firstName"`
	LastName  any    `json:"lastName"`
	SSNLast4  string `json:"ssn_last4"`
}

// Result is one captured submission: the applicant echo, the payload that
// was sent, and either the parsed response or the final error.
type Result struct {
	Applicant      Echo      `json:"applicant"`
	RequestPayload Payload   `json:"request_payload"`
	Response       *Response `json:"response,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// LoadApplicants reads the input file, which must be a JSON array of
// applicant objects.
func LoadApplicants(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &document.ParseError{Path: path, Err: err}
	}

	var applicants []map[string]any
	if err := json.Unmarshal(data, &applicants); err != nil {
		return nil, &document.ParseError{Path: path, Err: err, Reason: "expected a JSON array of applicant objects"}
	}
	return applicants, nil
}

// Run submits every applicant sequentially and collects one Result per
// applicant. A failed submission is recorded with its error and the run
// continues with the next applicant.
func Run(ctx context.Context, client *Client, applicants []map[string]any, bureau string, settings Settings, log *zap.Logger) []Result {
	results := make([]Result, 0, len(applicants))

	for i, applicant := range applicants {
		echo := Echo{
			Index:     i,
			FirstName: applicant["firstName"],
			LastName:  applicant["lastName"],
			SSNLast4:  ssnLast4(applicant),
		}
		payload := NewPayload(applicant, bureau, settings)

		al := logger.WithApplicant(log, identityOf(applicant))
		al.Info("submitting report request",
			zap.Int("index", i+1),
			zap.Int("total", len(applicants)),
			zap.String("bureau", bureau),
		)

		resp, err := client.Submit(ctx, payload)
		if err != nil {
			al.Error("submission failed", zap.Int("index", i+1), zap.Error(err))
			results = append(results, Result{
				Applicant:      echo,
				RequestPayload: payload,
				Error:          err.Error(),
			})
			continue
		}

		al.Info("submission complete", zap.Int("index", i+1), zap.Int("status", resp.StatusCode))
		results = append(results, Result{
			Applicant:      echo,
			RequestPayload: payload,
			Response:       resp,
		})
	}

	return results
}

// WriteResults writes the capture document as indented JSON.
func WriteResults(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// identityOf derives the same first_last identity the compare engine keys
// on, so submission logs correlate with discrepancy rows. Applicants
// without both names log without the field.
func identityOf(applicant map[string]any) string {
	first, okFirst := applicant["firstName"].(string)
	last, okLast := applicant["lastName"].(string)
	if !okFirst || !okLast {
		return ""
	}
	return fmt.Sprintf("%s_%s", first, last)
}

// ssnLast4 extracts the last four digits of the applicant's SSN, empty when
// absent or too short.
func ssnLast4(applicant map[string]any) string {
	ssn, _ := applicant["ssn"].(string)
	if len(ssn) <= 4 {
		return ssn
	}
	return ssn[len(ssn)-4:]
}
