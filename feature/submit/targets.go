package submit

import (
	"fmt"
	"sort"
	"strings"
)

// Target is the service endpoint of one environment. Host is sent as the
// Host header, which may differ from the URL host when requests go through
// shared ingress.
type Target struct {
	URL  string
	Host string
}

var targets = map[string]Target{
	"test1": {
		URL:  "https://aztest1.devops.dev-openlending.com/lpcr-service/reports",
		Host: "aztest1.devops.dev-openlending.com",
	},
	"test4": {
		URL:  "https://aztest4.devops.dev-openlending.com/lpcr-service/reports",
		Host: "aztest4.devops.dev-openlending.com",
	},
	"staging": {
		URL:  "https://staging.stg.aks.prd.lend-pro.com/lpcr-service/reports",
		Host: "staging.stg.aks.prd.lend-pro.com",
	},
}

// Environments returns the known environment names, sorted.
func Environments() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTarget looks up an environment target and applies optional URL and
// Host overrides.
func ResolveTarget(env, urlOverride, hostOverride string) (Target, error) {
	target, ok := targets[env]
	if !ok {
		return Target{}, fmt.Errorf("unknown env %q, valid options: %s", env, strings.Join(Environments(), ", "))
	}
	if urlOverride != "" {
		target.URL = urlOverride
	}
	if hostOverride != "" {
		target.Host = hostOverride
	}
	return target, nil
}
