package middleware

import (
	"net/http"

	"pedigree/api/contexts"
	authzModels "pedigree/api/models/authorization"
	authzConstants "pedigree/api/models/constants/authorization"
	e "pedigree/api/models/dtos/errors"

	"github.com/labstack/echo"
)

func ViewDataEverythingPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pc := c.(*contexts.PedigreeContext)
		addResourceEverything(pc)
		addPermissions(pc, authzConstants.VIEW, authzConstants.DATA)
		return next(pc)
	}
}
func AnalyzeDataEverythingPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pc := c.(*contexts.PedigreeContext)
		addResourceEverything(pc)
		addPermissions(pc, authzConstants.ANALYZE, authzConstants.DATA)
		return next(pc)
	}
}

// ValidateTokenPermissionsAttribute evaluates the bearer token against the
// resource and permissions set by a preceding permission attribute.
func ValidateTokenPermissionsAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pc := c.(*contexts.PedigreeContext)

		az := pc.AuthzService
		if az != nil && az.IsEnabled() {
			authnToken, missingHeaderErr := az.FetchAuthorizationHeader(pc.Request().Header)
			if missingHeaderErr != nil {
				return echo.NewHTTPError(http.StatusForbidden, e.CreateSimpleUnauthorized(missingHeaderErr.Error()))
			}

			accessError := az.EnsureAccessPermittedForUser(authnToken, pc.RequestedResource, pc.RequiredPermissions)
			if accessError != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, e.CreateSimpleUnauthorized(accessError.Error()))
			}
		}

		// access granted!
		return next(pc)
	}
}

// -- helper functions
func addResourceEverything(pc *contexts.PedigreeContext) {
	pc.RequestedResource = authzModels.ResourceEverything{
		Everything: true,
	}
}
func addPermissions(pc *contexts.PedigreeContext, verb authzConstants.PermissionVerb, noun authzConstants.PermissionNoun) {
	pc.RequiredPermissions = []authzModels.Permission{{
		Verb: verb,
		Noun: noun,
	}}
}
