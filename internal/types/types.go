package types

// Empty is the argument type of tools that take no parameters.
type Empty struct{}

type CVEParams struct {
	CVE string `json:"cve" jsonschema:"CVE identifier. Example: CVE-2021-44228"`
}

type CVEsParams struct {
	CVEs             []string `json:"cves" jsonschema:"List of CVEs to get details for. CVE string can be also regex."`
	Page             int      `json:"page" jsonschema:"Page number to get."`
	PageSize         int      `json:"page_size" jsonschema:"Number of CVEs to get per page."`
	ErrataAssociated bool     `json:"errata_associated" jsonschema:"Return only those CVEs which are associated with at least one errata. Defaults to false."`
	PublishedSince   string   `json:"published_since" jsonschema:"Filter CVEs published since a specific date. Example: 2025-04-05T01:23:45+02:00"`
	ModifiedSince    string   `json:"modified_since" jsonschema:"Filter CVEs modified since a specific date. Example: 2025-04-05T01:23:45+02:00"`
}

type ErratumParams struct {
	Erratum string `json:"erratum" jsonschema:"Erratum identifier. Example: RHSA-2021:3801"`
}

type ErrataParams struct {
	Errata         []string `json:"errata" jsonschema:"List of errata to get details for. Erratum string can be also regex."`
	Page           int      `json:"page" jsonschema:"Page number to get."`
	PageSize       int      `json:"page_size" jsonschema:"Number of errata to get per page."`
	PublishedSince string   `json:"published_since" jsonschema:"Filter errata published since a specific date. Example: 2025-04-05T01:23:45+02:00"`
	ModifiedSince  string   `json:"modified_since" jsonschema:"Filter errata modified since a specific date. Example: 2025-04-05T01:23:45+02:00"`
	Type           string   `json:"type" jsonschema:"Filter errata by type. Example: security, bugfix, enhancement."`
	Severity       string   `json:"severity" jsonschema:"Filter errata by severity. Example: low, moderate, important, critical."`
}

type RepositoryParams struct {
	Repository string `json:"repository" jsonschema:"Repository label. Example: rhel-8-for-x86_64-baseos-rpms"`
}

type RepositoriesParams struct {
	Repositories []string `json:"repositories" jsonschema:"List of repositories to get details for. Repository string can be also regex. Example: [\"rhel-8-for-x86_64-appstream-rpms\",\"rhel-8-for-x86_64-baseos-rpms\"]"`
	ShowPackages bool     `json:"show_packages" jsonschema:"Show updated package names in a repo since the last modified_since. Defaults to false."`
	HasPackages  bool     `json:"has_packages" jsonschema:"Return only repositories having advisories with packages released since the last modified_since. Defaults to false."`
	Page         int      `json:"page" jsonschema:"Page number to get."`
	PageSize     int      `json:"page_size" jsonschema:"Number of repositories to get per page."`
}

type PackageParams struct {
	Package string `json:"package" jsonschema:"Package NEVRA. Example: bash-0:4.4.20-5.el8.x86_64"`
}

type PackagesParams struct {
	Packages []string `json:"packages" jsonschema:"List of packages to get details for. Package string can be also regex. Example: [\"kernel-2.6.32-696.20.1.el6.x86_64\", \"bash-0:4.4.20-5.el8.x86_64\"]"`
	Page     int      `json:"page" jsonschema:"Page number to get."`
	PageSize int      `json:"page_size" jsonschema:"Number of packages to get per page."`
}

// Module selects a modular stream when evaluating updates.
type Module struct {
	ModuleName   string `json:"module_name" jsonschema:"Module name. Example: container-tools"`
	ModuleStream string `json:"module_stream" jsonschema:"Module stream. Example: rhel8"`
}

type UpdatesParams struct {
	Packages     []string `json:"packages" jsonschema:"List of packages to get updates for. Package string can be also regex. Example: [\"kernel-2.6.32-696.20.1.el6.x86_64\", \"bash-0:4.4.20-5.el8.x86_64\"]"`
	Repositories []string `json:"repositories" jsonschema:"List of repositories to get updates for. Repository string can be also regex. Example: [\"rhel-8-for-x86_64-appstream-rpms\",\"rhel-8-for-x86_64-baseos-rpms\"]"`
	Releasever   string   `json:"releasever" jsonschema:"Filter updates by release version. Example: 8.1"`
	Basearch     string   `json:"basearch" jsonschema:"Filter updates by base architecture. Example: x86_64"`
	Modules      []Module `json:"modules" jsonschema:"Filter updates by modules. Example: [{\"module_name\": \"container-tools\", \"module_stream\": \"rhel8\"}]"`
}

type VulnerabilitiesParams struct {
	Packages     []string `json:"packages" jsonschema:"List of packages to get vulnerabilities for. Package string can be also regex. Example: [\"kernel-2.6.32-696.20.1.el6.x86_64\", \"bash-0:4.4.20-5.el8.x86_64\"]"`
	Repositories []string `json:"repositories" jsonschema:"List of repositories to get vulnerabilities for. Repository string can be also regex. Example: [\"rhel-8-for-x86_64-appstream-rpms\",\"rhel-8-for-x86_64-baseos-rpms\"]"`
	Releasever   string   `json:"releasever" jsonschema:"Filter vulnerabilities by release version. Example: 8.1"`
	Basearch     string   `json:"basearch" jsonschema:"Filter vulnerabilities by base architecture. Example: x86_64"`
	Modules      []Module `json:"modules" jsonschema:"Filter vulnerabilities by modules. Example: [{\"module_name\": \"container-tools\", \"module_stream\": \"rhel8\"}]"`
	Extended     bool     `json:"extended" jsonschema:"Return extended information about vulnerabilities. Defaults to false."`
}

// Vulnerability API parameters. Paging and filtering are optional there.

type ListParams struct {
	Limit  int `json:"limit,omitempty" jsonschema:"Maximum number of items to return."`
	Offset int `json:"offset,omitempty" jsonschema:"Number of items to skip."`
}

type CVEListParams struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of CVEs to return."`
	Offset int    `json:"offset,omitempty" jsonschema:"Number of CVEs to skip."`
	Sort   string `json:"sort,omitempty" jsonschema:"Sort field, prefix with - for descending order. Example: -public_date"`
	Filter string `json:"filter,omitempty" jsonschema:"Full text filter on CVE name and description. Example: log4j"`
}

type CVESystemsParams struct {
	CVE    string `json:"cve" jsonschema:"CVE identifier. Example: CVE-2021-44228"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of systems to return."`
	Offset int    `json:"offset,omitempty" jsonschema:"Number of systems to skip."`
}

type SystemCVEsParams struct {
	SystemUUID string `json:"system_uuid" jsonschema:"Inventory ID of the system."`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of CVEs to return."`
	Offset     int    `json:"offset,omitempty" jsonschema:"Number of CVEs to skip."`
}
