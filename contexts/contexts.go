package contexts

import (
	"pedigree/api/models"
	authz "pedigree/api/models/authorization"
	"pedigree/api/services"
	variantsService "pedigree/api/services/variants"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  an elasticsearch client and other variables
	PedigreeContext struct {
		echo.Context
		Es7Client *es7.Client
		Config    *models.Config

		AuthzService    *services.AuthzService
		AnalysisService *services.AnalysisService
		VariantService  *variantsService.VariantService

		RequestedResource   authz.Resource
		RequiredPermissions []authz.Permission
	}
)
