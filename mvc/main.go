package mvc

import (
	"pedigree/api/contexts"
	"pedigree/api/models/constants"
	a "pedigree/api/models/constants/assembly-id"
	im "pedigree/api/models/constants/inheritance-mode"

	"github.com/labstack/echo"
)

// RetrieveCommonElements reads the query parameters shared by the analysis
// routes; both have been validated by middleware where mandatory.
func RetrieveCommonElements(c echo.Context) (*contexts.PedigreeContext, constants.InheritanceMode, constants.AssemblyId) {
	pc := c.(*contexts.PedigreeContext)

	mode := im.CastToInheritanceMode(c.QueryParam("mode"))

	assemblyId := a.Unknown
	assemblyIdQP := c.QueryParam("assemblyId")
	if len(assemblyIdQP) > 0 && a.IsKnownAssemblyId(assemblyIdQP) {
		assemblyId = a.CastToAssemblyId(assemblyIdQP)
	}

	return pc, mode, assemblyId
}
