package submit

import (
	"fmt"
	"sort"
	"strings"
)

// Credentials are the bureau subscriber credentials sent in the payload.
type Credentials struct {
	SubscriberCode string `json:"subscriberCode"`
	Password       string `json:"password"`
}

// Settings is the bureau-specific settings block of a report request.
type Settings struct {
	InstitutionID      string      `json:"institutionId"`
	Origin             string      `json:"origin"`
	Products           []string    `json:"products"`
	Credentials        Credentials `json:"credentials"`
	ProductCode        string      `json:"productCode"`
	IndustryCode       string      `json:"industryCode"`
	PermissiblePurpose string      `json:"permissiblePurpose"`
}

// bureauSettings holds the per-bureau request profiles. Subscriber
// passwords are never stored here; SettingsFor injects them from
// configuration.
var bureauSettings = map[string]Settings{
	"EFX": {
		InstitutionID:      "1239438",
		Origin:             "INDIRECT",
		Products:           []string{"05201"},
		Credentials:        Credentials{SubscriberCode: "999ZS06891"},
		ProductCode:        "07000",
		IndustryCode:       "I",
		PermissiblePurpose: "CI",
	},
	"TU": {
		InstitutionID:      "1239438",
		Origin:             "INDIRECT",
		Products:           []string{"00W82"},
		Credentials:        Credentials{SubscriberCode: "06226909913"},
		ProductCode:        "07000",
		IndustryCode:       "I",
		PermissiblePurpose: "CI",
	},
	"XPN": {
		InstitutionID: "25693",
		Origin:        "INDIRECT",
		Products:      []string{"FE"},
		Credentials:   Credentials{SubscriberCode: "5991774"},
	},
	"LN": {
		InstitutionID:      "1239438",
		Origin:             "INDIRECT",
		Products:           []string{"RVA1503_0"},
		Credentials:        Credentials{SubscriberCode: "AmTrustNADEVRVXML"},
		ProductCode:        "RISK_VIEW",
		PermissiblePurpose: "Written Consent Prequalification",
	},
}

// Bureaus returns the supported bureau codes, sorted.
func Bureaus() []string {
	codes := make([]string, 0, len(bureauSettings))
	for code := range bureauSettings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SettingsFor returns the settings profile for a bureau with the subscriber
// password filled in.
func SettingsFor(bureau, password string) (Settings, error) {
	settings, ok := bureauSettings[bureau]
	if !ok {
		return Settings{}, fmt.Errorf("unknown bureau %q, valid options: %s", bureau, strings.Join(Bureaus(), ", "))
	}
	settings.Credentials.Password = password
	return settings, nil
}
