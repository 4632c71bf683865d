package toolsets

import (
	"context"
	"net/url"

	"github.com/redhatinsights/insights-mcp/internal/types"
)

// VMaaS returns the tools backed by the Vulnerability Metadata as a Service
// API (vmaas/v3).
func VMaaS(c Caller) Toolset {
	return Toolset{
		Name:        "vmaas",
		Description: "Package, erratum, repository, CVE and update lookups",
		Tools: []ServerTool{
			newTool("get_vmaas_openapi",
				"Get Red Hat Insights VMAAS OpenAPI specification in JSON format.",
				func(ctx context.Context, _ types.Empty) (any, error) {
					return c.Get(ctx, "vmaas/v3/openapi.json", nil)
				}),

			newTool("get_cve_details",
				"Get details about a specific CVE.",
				func(ctx context.Context, args types.CVEParams) (any, error) {
					return c.Get(ctx, "vmaas/v3/cves/"+url.PathEscape(args.CVE), nil)
				}),

			newTool("get_cves_details",
				"Get details about a list of CVEs.",
				func(ctx context.Context, args types.CVEsParams) (any, error) {
					return c.Post(ctx, "vmaas/v3/cves", CVEsBody(args))
				}),

			newTool("get_erratum_details",
				"Get details about a specific erratum.",
				func(ctx context.Context, args types.ErratumParams) (any, error) {
					return c.Get(ctx, "vmaas/v3/errata/"+url.PathEscape(args.Erratum), nil)
				}),

			newTool("get_errata_details",
				"Get details about a list of errata.",
				func(ctx context.Context, args types.ErrataParams) (any, error) {
					return c.Post(ctx, "vmaas/v3/errata", map[string]any{
						"errata_list":     args.Errata,
						"page":            args.Page,
						"page_size":       args.PageSize,
						"published_since": args.PublishedSince,
						"modified_since":  args.ModifiedSince,
						"type":            args.Type,
						"severity":        args.Severity,
					})
				}),

			newTool("get_repository_details",
				"Get details about a specific repository.",
				func(ctx context.Context, args types.RepositoryParams) (any, error) {
					return c.Get(ctx, "vmaas/v3/repos/"+url.PathEscape(args.Repository), nil)
				}),

			newTool("get_repositories_details",
				"Get details about a list of repositories.",
				func(ctx context.Context, args types.RepositoriesParams) (any, error) {
					return c.Post(ctx, "vmaas/v3/repos", map[string]any{
						"repository_list": args.Repositories,
						"show_packages":   args.ShowPackages,
						"has_packages":    args.HasPackages,
						"page":            args.Page,
						"page_size":       args.PageSize,
					})
				}),

			newTool("get_package_details",
				"Get details about a specific package.",
				func(ctx context.Context, args types.PackageParams) (any, error) {
					return c.Get(ctx, "vmaas/v3/packages/"+url.PathEscape(args.Package), nil)
				}),

			newTool("get_packages_details",
				"Get details about a list of packages.",
				func(ctx context.Context, args types.PackagesParams) (any, error) {
					return c.Get(ctx, "vmaas/v3/packages", PackagesQuery(args))
				}),

			newTool("get_package_updates",
				"Get updates for a list of packages.",
				func(ctx context.Context, args types.UpdatesParams) (any, error) {
					return c.Post(ctx, "vmaas/v3/updates", map[string]any{
						"package_list":    args.Packages,
						"repository_list": args.Repositories,
						"releasever":      args.Releasever,
						"basearch":        args.Basearch,
						"modules_list":    args.Modules,
					})
				}),

			newTool("get_package_vulnerabilities",
				"Get vulnerabilities for a list of packages.",
				func(ctx context.Context, args types.VulnerabilitiesParams) (any, error) {
					return c.Post(ctx, "vmaas/v3/vulnerabilities", map[string]any{
						"package_list":    args.Packages,
						"repository_list": args.Repositories,
						"releasever":      args.Releasever,
						"basearch":        args.Basearch,
						"modules_list":    args.Modules,
						"extended":        args.Extended,
					})
				}),
		},
	}
}

// CVEsBody builds the vmaas/v3/cves request body.
func CVEsBody(args types.CVEsParams) map[string]any {
	return map[string]any{
		"cve_list":          args.CVEs,
		"page":              args.Page,
		"page_size":         args.PageSize,
		"errata_associated": args.ErrataAssociated,
		"published_since":   args.PublishedSince,
		"modified_since":    args.ModifiedSince,
	}
}

// PackagesQuery builds the vmaas/v3/packages query parameters.
func PackagesQuery(args types.PackagesParams) map[string]any {
	return map[string]any{
		"package_list": args.Packages,
		"page":         args.Page,
		"page_size":    args.PageSize,
	}
}
