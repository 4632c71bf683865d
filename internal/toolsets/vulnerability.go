package toolsets

import (
	"context"
	"net/url"

	"github.com/redhatinsights/insights-mcp/internal/types"
)

// Vulnerability returns the tools backed by the Insights Vulnerability API
// (vulnerability/v1), which reports CVE exposure of registered systems.
func Vulnerability(c Caller) Toolset {
	return Toolset{
		Name:        "vulnerability",
		Description: "CVE exposure of systems registered in Insights",
		Tools: []ServerTool{
			newTool("get_vulnerability_openapi",
				"Get Red Hat Insights Vulnerability OpenAPI specification in JSON format.",
				func(ctx context.Context, _ types.Empty) (any, error) {
					return c.Get(ctx, "vulnerability/v1/openapi.json", nil)
				}),

			newTool("get_cves",
				"Get the list of CVEs affecting systems in the account.",
				func(ctx context.Context, args types.CVEListParams) (any, error) {
					params := pageParams(args.Limit, args.Offset)
					if args.Sort != "" {
						params["sort"] = args.Sort
					}
					if args.Filter != "" {
						params["filter"] = args.Filter
					}
					return c.Get(ctx, "vulnerability/v1/vulnerabilities/cves", params)
				}),

			newTool("get_cve",
				"Get details about a specific CVE, including its impact on the account.",
				func(ctx context.Context, args types.CVEParams) (any, error) {
					return c.Get(ctx, "vulnerability/v1/cves/"+url.PathEscape(args.CVE), nil)
				}),

			newTool("get_cve_systems",
				"Get the systems affected by a specific CVE.",
				func(ctx context.Context, args types.CVESystemsParams) (any, error) {
					endpoint := "vulnerability/v1/cves/" + url.PathEscape(args.CVE) + "/affected_systems"
					return c.Get(ctx, endpoint, pageParams(args.Limit, args.Offset))
				}),

			newTool("get_system_cves",
				"Get the CVEs affecting a specific system.",
				func(ctx context.Context, args types.SystemCVEsParams) (any, error) {
					endpoint := "vulnerability/v1/systems/" + url.PathEscape(args.SystemUUID) + "/cves"
					return c.Get(ctx, endpoint, pageParams(args.Limit, args.Offset))
				}),

			newTool("get_systems",
				"Get the systems registered with the Vulnerability service.",
				func(ctx context.Context, args types.ListParams) (any, error) {
					return c.Get(ctx, "vulnerability/v1/systems", pageParams(args.Limit, args.Offset))
				}),
		},
	}
}

// pageParams omits unset paging values so the API applies its defaults.
func pageParams(limit, offset int) map[string]any {
	params := map[string]any{}
	if limit > 0 {
		params["limit"] = limit
	}
	if offset > 0 {
		params["offset"] = offset
	}
	return params
}
