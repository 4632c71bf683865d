package toolsets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVulnerabilityTools(t *testing.T) {
	tests := []struct {
		tool     string
		args     map[string]any
		endpoint string
		params   map[string]any
	}{
		{
			tool:     "get_vulnerability_openapi",
			args:     map[string]any{},
			endpoint: "vulnerability/v1/openapi.json",
			params:   nil,
		},
		{
			tool:     "get_cves",
			args:     map[string]any{},
			endpoint: "vulnerability/v1/vulnerabilities/cves",
			params:   map[string]any{},
		},
		{
			tool:     "get_cves",
			args:     map[string]any{"limit": 20, "offset": 40, "sort": "-public_date", "filter": "log4j"},
			endpoint: "vulnerability/v1/vulnerabilities/cves",
			params:   map[string]any{"limit": 20, "offset": 40, "sort": "-public_date", "filter": "log4j"},
		},
		{
			tool:     "get_cve",
			args:     map[string]any{"cve": "CVE-2021-44228"},
			endpoint: "vulnerability/v1/cves/CVE-2021-44228",
			params:   nil,
		},
		{
			tool:     "get_cve_systems",
			args:     map[string]any{"cve": "CVE-2021-44228", "limit": 10},
			endpoint: "vulnerability/v1/cves/CVE-2021-44228/affected_systems",
			params:   map[string]any{"limit": 10},
		},
		{
			tool:     "get_system_cves",
			args:     map[string]any{"system_uuid": "2e3c1a4a-6b1f-4a43-9bfe-0ea1b0c6a111"},
			endpoint: "vulnerability/v1/systems/2e3c1a4a-6b1f-4a43-9bfe-0ea1b0c6a111/cves",
			params:   map[string]any{},
		},
		{
			tool:     "get_systems",
			args:     map[string]any{"offset": 5},
			endpoint: "vulnerability/v1/systems",
			params:   map[string]any{"offset": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			caller := new(MockCaller)
			caller.On("Get", tt.endpoint, tt.params).Return(map[string]any{"data": []any{}}, nil)

			session := connect(t, Vulnerability(caller))
			res := callTool(t, session, tt.tool, tt.args)

			require.False(t, res.IsError, textOf(t, res))
			assert.JSONEq(t, `{"data": []}`, textOf(t, res))
			caller.AssertExpectations(t)
		})
	}
}

func TestPathParametersAreEscaped(t *testing.T) {
	caller := new(MockCaller)
	caller.On("Get", "vulnerability/v1/systems/a%2Fb/cves", map[string]any{}).Return(map[string]any{}, nil)

	session := connect(t, Vulnerability(caller))
	res := callTool(t, session, "get_system_cves", map[string]any{"system_uuid": "a/b"})

	require.False(t, res.IsError, textOf(t, res))
	caller.AssertExpectations(t)
}
