package serviceInfo

import (
	"fmt"
	"net/http"
	"time"

	"pedigree/api/contexts"
	serviceInfo "pedigree/api/models/constants/service-info"

	"github.com/labstack/echo"
)

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	fmt.Printf("[%s] - GetServiceInfo hit!\n", time.Now())
	cfg := c.(*contexts.PedigreeContext).Config

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bento": map[string]interface{}{
			"dataService": false,
			"serviceKind": serviceInfo.SERVICE_ARTIFACT,
		},
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  cfg.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"organization": map[string]string{
			"name": "C3G",
			"url":  "http://c3g.ca",
		},
		"contactUrl": cfg.ServiceContact,
		"version":    cfg.SemVer,
	})
}
