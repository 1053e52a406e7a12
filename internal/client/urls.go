package client

import (
	"net/url"

	"github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
)

// adminBasePath is the admin center API root, used for environment
// discovery before an environment is pinned.
const adminBasePath = "/admin/v2.21/applications/businesscentral"

// buildBasePath produces the base path for an addressing mode from a scope
// snapshot. It is a pure function: the same snapshot and mode always yield
// the same path. Missing context fails with the sentinel naming the setup
// step to perform, before any network call.
func buildBasePath(mode bcapi.Mode, snap scopeSnapshot, ext bcapi.ExtensionAPI) (string, error) {
	switch mode {
	case bcapi.ModeCompany:
		if snap.Environment == "" {
			return "", bcapi.ErrEnvironmentRequired
		}

		if snap.CompanyID == "" || snap.CompanyName == "" {
			return "", bcapi.ErrCompanyRequired
		}

		return "/v2.0/" + snap.Environment + "/api/v2.0/companies(" + snap.CompanyID + ")", nil

	case bcapi.ModeEnvironment:
		if snap.Environment == "" {
			return "", bcapi.ErrEnvironmentRequired
		}

		return "/v2.0/" + snap.Environment + "/api/v2.0", nil

	case bcapi.ModeOData:
		if snap.Environment == "" {
			return "", bcapi.ErrEnvironmentRequired
		}

		if snap.CompanyID == "" || snap.CompanyName == "" {
			return "", bcapi.ErrCompanyRequired
		}

		if snap.TenantID == "" {
			return "", bcapi.ErrTenantIDRequired
		}

		return "/v2.0/" + snap.TenantID + "/" + snap.Environment +
			"/ODataV4/Company('" + url.PathEscape(snap.CompanyName) + "')", nil

	case bcapi.ModeExtension:
		if snap.Environment == "" {
			return "", bcapi.ErrEnvironmentRequired
		}

		if snap.CompanyID == "" || snap.CompanyName == "" {
			return "", bcapi.ErrCompanyRequired
		}

		// All three parts or nothing: a partial triple is a
		// configuration error, not a best-effort call.
		if !ext.Complete() {
			return "", bcapi.ErrExtensionAPIRequired
		}

		if snap.TenantID == "" {
			return "", bcapi.ErrTenantIDRequired
		}

		return "/v2.0/" + snap.TenantID + "/" + snap.Environment +
			"/api/" + ext.Publisher + "/" + ext.Group + "/" + ext.Version +
			"/Companies(" + snap.CompanyID + ")", nil

	case bcapi.ModeAdmin:
		return adminBasePath, nil

	default:
		return "", bcapi.ErrUnknownMode
	}
}
