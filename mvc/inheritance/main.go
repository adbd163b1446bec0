package inheritance

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pedigree/api/models"
	"pedigree/api/models/analysis"
	c "pedigree/api/models/constants"
	im "pedigree/api/models/constants/inheritance-mode"
	"pedigree/api/models/dtos"
	e "pedigree/api/models/dtos/errors"
	"pedigree/api/models/pedigree"
	"pedigree/api/mvc"
	"pedigree/api/services"

	"github.com/labstack/echo"
)

var modeDescriptions = map[c.InheritanceMode]string{
	im.Recessive:            "Homozygous-alternate in every affected individual, never identically so in an unaffected one.",
	im.Dominant:             "Heterozygous allele shared by all affected individuals, absent from unaffected ones and not transmitted by a named unaffected parent.",
	im.CompoundHeterozygous: "Two or more heterozygous hits in one gene, split across the parents, whose combination no unaffected individual carries.",
	im.XLinked:              "Homozygous or hemizygous X-chromosome call carried by the mother and not shared by the father.",
	im.DeNovo:               "Call not explained by transmission from the named parents and absent from every unaffected individual.",
}

func GetInheritanceModes(ctx echo.Context) error {
	fmt.Printf("[%s] - GetInheritanceModes hit!\n", time.Now())

	modes := make([]map[string]string, 0, len(im.All()))
	for _, m := range im.All() {
		modes = append(modes, map[string]string{
			"mode":        string(m),
			"description": modeDescriptions[m],
		})
	}
	return ctx.JSON(http.StatusOK, modes)
}

func AnalyzeFamily(ctx echo.Context) error {
	fmt.Printf("[%s] - AnalyzeFamily hit!\n", time.Now())
	pc, mode, _ := mvc.RetrieveCommonElements(ctx)

	var body dtos.AnalysisRequestDto
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("Invalid request body : %v", err)))
	}

	family, err := body.ToFamily()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	return runAnalysis(ctx, pc.AnalysisService, family, mode, body)
}

func AnalyzeFamilyBySampleIds(ctx echo.Context) error {
	fmt.Printf("[%s] - AnalyzeFamilyBySampleIds hit!\n", time.Now())
	pc, mode, assemblyId := mvc.RetrieveCommonElements(ctx)

	var body dtos.SampleAnalysisRequestDto
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("Invalid request body : %v", err)))
	}

	// variants come from the store
	for i := range body.Individuals {
		body.Individuals[i].Variants = nil
	}

	family, err := body.ToFamily()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	geneField := options(pc.AnalysisService, body.AnalysisRequestDto).GeneField
	if popErr := pc.VariantService.PopulateFamily(ctx.Request().Context(), &family, assemblyId, body.AnnotateGenes, geneField); popErr != nil {
		fmt.Printf("[%s] - Error fetching family variants : %v\n", time.Now(), popErr)
		pc.AnalysisService.Fail(family, mode, popErr)
		return echo.NewHTTPError(http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong fetching the family's variants. Please contact the administrator!"))
	}

	return runAnalysis(ctx, pc.AnalysisService, family, mode, body.AnalysisRequestDto)
}

func GetAllAnalysisRequests(ctx echo.Context) error {
	fmt.Printf("[%s] - GetAllAnalysisRequests hit!\n", time.Now())
	pc, _, _ := mvc.RetrieveCommonElements(ctx)

	return ctx.JSON(http.StatusOK, pc.AnalysisService.GetAllRequests())
}

// -- helpers
func options(as *services.AnalysisService, body dtos.AnalysisRequestDto) services.AnalysisOptions {
	opts := as.DefaultOptions()
	if body.GeneField != "" {
		opts.GeneField = body.GeneField
	}
	if body.RequireHetInAllAffected != nil {
		opts.Dominant.RequireHetInAllAffected = *body.RequireHetInAllAffected
	}
	return opts
}

func runAnalysis(ctx echo.Context, as *services.AnalysisService, family pedigree.Family, mode c.InheritanceMode, body dtos.AnalysisRequestDto) error {
	req, results, err := as.Run(ctx.Request().Context(), family, mode, options(as, body))
	if err != nil {
		if isCallerError(err) {
			return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
		}
		fmt.Printf("[%s] - Analysis failed : %v\n", time.Now(), err)
		return echo.NewHTTPError(http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong. Please contact the administrator!"))
	}

	return ctx.JSON(http.StatusOK, newInheritanceResponse(req, mode, results))
}

func isCallerError(err error) bool {
	return errors.Is(err, services.ErrUnknownInheritanceMode) ||
		errors.Is(err, services.ErrNoAffectedIndividuals) ||
		errors.Is(err, services.ErrAffectedParent) ||
		errors.Is(err, services.ErrDuplicateIndividual)
}

func newInheritanceResponse(req *analysis.AnalysisRequest, mode c.InheritanceMode, results []models.Variant) dtos.InheritanceResponseDto {
	calls := make([]dtos.VariantCall, 0, len(results))
	for _, v := range results {
		calls = append(calls, dtos.NewVariantCall(v))
	}

	return dtos.InheritanceResponseDto{
		Status:    http.StatusOK,
		Message:   string(req.State),
		RequestId: req.Id.String(),
		Mode:      mode,
		Count:     len(calls),
		Results:   calls,
	}
}
