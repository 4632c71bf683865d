package toolsets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redhatinsights/insights-mcp/internal/types"
)

func TestCVEsBody(t *testing.T) {
	body := CVEsBody(types.CVEsParams{
		CVEs:             []string{"CVE-2021-1"},
		Page:             1,
		PageSize:         10,
		ErrataAssociated: true,
		PublishedSince:   "2025-01-01T00:00:00Z",
		ModifiedSince:    "2025-01-01T00:00:00Z",
	})

	assert.Equal(t, map[string]any{
		"cve_list":          []string{"CVE-2021-1"},
		"page":              1,
		"page_size":         10,
		"errata_associated": true,
		"published_since":   "2025-01-01T00:00:00Z",
		"modified_since":    "2025-01-01T00:00:00Z",
	}, body)
}

func TestPackagesQuery(t *testing.T) {
	query := PackagesQuery(types.PackagesParams{
		Packages: []string{"bash-0:4.4.20-5.el8.x86_64"},
		Page:     2,
		PageSize: 5,
	})

	assert.Equal(t, map[string]any{
		"package_list": []string{"bash-0:4.4.20-5.el8.x86_64"},
		"page":         2,
		"page_size":    5,
	}, query)
}

func TestVMaaSToolNames(t *testing.T) {
	ts := VMaaS(new(MockCaller))
	var names []string
	for _, tool := range ts.Tools {
		names = append(names, tool.Tool.Name)
	}
	assert.Equal(t, []string{
		"get_vmaas_openapi",
		"get_cve_details",
		"get_cves_details",
		"get_erratum_details",
		"get_errata_details",
		"get_repository_details",
		"get_repositories_details",
		"get_package_details",
		"get_packages_details",
		"get_package_updates",
		"get_package_vulnerabilities",
	}, names)
}

func TestVMaaSTools(t *testing.T) {
	modules := []any{map[string]any{"module_name": "container-tools", "module_stream": "rhel8"}}
	wantModules := []types.Module{{ModuleName: "container-tools", ModuleStream: "rhel8"}}

	tests := []struct {
		tool     string
		args     map[string]any
		method   string
		endpoint string
		payload  any
	}{
		{
			tool:     "get_vmaas_openapi",
			args:     map[string]any{},
			method:   "Get",
			endpoint: "vmaas/v3/openapi.json",
			payload:  map[string]any(nil),
		},
		{
			tool:     "get_cve_details",
			args:     map[string]any{"cve": "CVE-2021-44228"},
			method:   "Get",
			endpoint: "vmaas/v3/cves/CVE-2021-44228",
			payload:  map[string]any(nil),
		},
		{
			tool: "get_cves_details",
			args: map[string]any{
				"cves":              []any{"CVE-2021-1"},
				"page":              1,
				"page_size":         10,
				"errata_associated": true,
				"published_since":   "2025-01-01T00:00:00Z",
				"modified_since":    "2025-01-01T00:00:00Z",
			},
			method:   "Post",
			endpoint: "vmaas/v3/cves",
			payload: map[string]any{
				"cve_list":          []string{"CVE-2021-1"},
				"page":              1,
				"page_size":         10,
				"errata_associated": true,
				"published_since":   "2025-01-01T00:00:00Z",
				"modified_since":    "2025-01-01T00:00:00Z",
			},
		},
		{
			tool:     "get_erratum_details",
			args:     map[string]any{"erratum": "RHSA-2021:3801"},
			method:   "Get",
			endpoint: "vmaas/v3/errata/RHSA-2021:3801",
			payload:  map[string]any(nil),
		},
		{
			tool: "get_errata_details",
			args: map[string]any{
				"errata":          []any{"RHSA-2021:.*"},
				"page":            1,
				"page_size":       20,
				"published_since": "2025-04-05T01:23:45+02:00",
				"modified_since":  "2025-04-05T01:23:45+02:00",
				"type":            "security",
				"severity":        "critical",
			},
			method:   "Post",
			endpoint: "vmaas/v3/errata",
			payload: map[string]any{
				"errata_list":     []string{"RHSA-2021:.*"},
				"page":            1,
				"page_size":       20,
				"published_since": "2025-04-05T01:23:45+02:00",
				"modified_since":  "2025-04-05T01:23:45+02:00",
				"type":            "security",
				"severity":        "critical",
			},
		},
		{
			tool:     "get_repository_details",
			args:     map[string]any{"repository": "rhel-8-for-x86_64-baseos-rpms"},
			method:   "Get",
			endpoint: "vmaas/v3/repos/rhel-8-for-x86_64-baseos-rpms",
			payload:  map[string]any(nil),
		},
		{
			tool: "get_repositories_details",
			args: map[string]any{
				"repositories":  []any{"rhel-8-for-x86_64-appstream-rpms"},
				"show_packages": true,
				"has_packages":  false,
				"page":          1,
				"page_size":     5,
			},
			method:   "Post",
			endpoint: "vmaas/v3/repos",
			payload: map[string]any{
				"repository_list": []string{"rhel-8-for-x86_64-appstream-rpms"},
				"show_packages":   true,
				"has_packages":    false,
				"page":            1,
				"page_size":       5,
			},
		},
		{
			tool:     "get_package_details",
			args:     map[string]any{"package": "bash-0:4.4.20-5.el8.x86_64"},
			method:   "Get",
			endpoint: "vmaas/v3/packages/bash-0:4.4.20-5.el8.x86_64",
			payload:  map[string]any(nil),
		},
		{
			tool: "get_packages_details",
			args: map[string]any{
				"packages":  []any{"bash-0:4.4.20-5.el8.x86_64"},
				"page":      2,
				"page_size": 5,
			},
			method:   "Get",
			endpoint: "vmaas/v3/packages",
			payload: map[string]any{
				"package_list": []string{"bash-0:4.4.20-5.el8.x86_64"},
				"page":         2,
				"page_size":    5,
			},
		},
		{
			tool: "get_package_updates",
			args: map[string]any{
				"packages":     []any{"kernel-2.6.32-696.20.1.el6.x86_64"},
				"repositories": []any{"rhel-8-for-x86_64-baseos-rpms"},
				"releasever":   "8.1",
				"basearch":     "x86_64",
				"modules":      modules,
			},
			method:   "Post",
			endpoint: "vmaas/v3/updates",
			payload: map[string]any{
				"package_list":    []string{"kernel-2.6.32-696.20.1.el6.x86_64"},
				"repository_list": []string{"rhel-8-for-x86_64-baseos-rpms"},
				"releasever":      "8.1",
				"basearch":        "x86_64",
				"modules_list":    wantModules,
			},
		},
		{
			tool: "get_package_vulnerabilities",
			args: map[string]any{
				"packages":     []any{"bash-0:4.4.20-5.el8.x86_64"},
				"repositories": []any{"rhel-8-for-x86_64-baseos-rpms"},
				"releasever":   "8.1",
				"basearch":     "x86_64",
				"modules":      modules,
				"extended":     true,
			},
			method:   "Post",
			endpoint: "vmaas/v3/vulnerabilities",
			payload: map[string]any{
				"package_list":    []string{"bash-0:4.4.20-5.el8.x86_64"},
				"repository_list": []string{"rhel-8-for-x86_64-baseos-rpms"},
				"releasever":      "8.1",
				"basearch":        "x86_64",
				"modules_list":    wantModules,
				"extended":        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			caller := new(MockCaller)
			caller.On(tt.method, tt.endpoint, tt.payload).Return(map[string]any{"tool": tt.tool}, nil)

			session := connect(t, VMaaS(caller))
			res := callTool(t, session, tt.tool, tt.args)

			require.False(t, res.IsError, textOf(t, res))
			assert.JSONEq(t, `{"tool": "`+tt.tool+`"}`, textOf(t, res))
			caller.AssertExpectations(t)
			caller.AssertNumberOfCalls(t, tt.method, 1)
		})
	}
}

func TestVMaaSRequiredParameters(t *testing.T) {
	caller := new(MockCaller)
	session := connect(t, VMaaS(caller))

	_, err := session.CallTool(t.Context(), toolParams("get_cve_details", map[string]any{}))
	assert.Error(t, err, "missing cve should be rejected by the input schema")
	caller.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
