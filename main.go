package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"pedigree/api/contexts"
	gam "pedigree/api/middleware"
	"pedigree/api/models"
	serviceInfo "pedigree/api/models/constants/service-info"
	inheritanceMvc "pedigree/api/mvc/inheritance"
	serviceInfoMvc "pedigree/api/mvc/service-info"
	workflowsMvc "pedigree/api/mvc/workflows"
	"pedigree/api/services"
	"pedigree/api/services/variantcache"
	variantsService "pedigree/api/services/variants"
	"pedigree/api/utils"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tAnalysis Concurrency Level : %d\n"+
		"\tDefault Gene Field : %s\n"+
		"\tDominant Requires Het In All Affected : %t\n"+
		"\tVariants Fetch Size : %d\n\n"+

		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"\tCache TTL (minutes) : %d\n"+
		"\tCache Eviction Interval (minutes) : %d\n\n"+

		"\tAuthorization Enabled : %t\n"+
		"\tAuthorization Url : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.AnalysisConcurrencyLevel,
		cfg.Api.DefaultGeneField,
		cfg.Api.DominantRequiresHetInAllAffected,
		cfg.Api.VariantsFetchSize,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.Cache.TtlMinutes,
		cfg.Cache.EvictionIntervalMinutes,
		cfg.AuthX.IsAuthorizationEnabled,
		cfg.AuthX.AuthorizationUrl,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Connections:
	// -- Elasticsearch
	es, esErr := utils.CreateEsConnection(&cfg)
	if esErr != nil {
		fmt.Println(esErr)
		os.Exit(2)
	}

	// Service Singletons
	az := services.NewAuthzService(&cfg)
	as := services.NewAnalysisService(&cfg)
	vc := variantcache.NewVariantCache(&cfg)
	defer vc.Stop()
	vs := variantsService.NewVariantService(es, &cfg, vc)

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom Pedigree" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.PedigreeContext{
				Context:         c,
				Es7Client:       es,
				Config:          &cfg,
				AuthzService:    az,
				AnalysisService: as,
				VariantService:  vs,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Inheritance
	e.GET("/inheritance/modes", inheritanceMvc.GetInheritanceModes)

	e.POST("/inheritance/analyze", inheritanceMvc.AnalyzeFamily,
		// middleware
		gam.AnalyzeDataEverythingPermissionAttribute,
		gam.ValidateTokenPermissionsAttribute,
		gam.MandateInheritanceModeAttribute)
	e.POST("/inheritance/analyze/by/sampleId", inheritanceMvc.AnalyzeFamilyBySampleIds,
		// middleware
		gam.AnalyzeDataEverythingPermissionAttribute,
		gam.ValidateTokenPermissionsAttribute,
		gam.MandateInheritanceModeAttribute,
		gam.MandateAssemblyIdAttribute)
	e.GET("/inheritance/requests", inheritanceMvc.GetAllAnalysisRequests,
		// middleware
		gam.ViewDataEverythingPermissionAttribute,
		gam.ValidateTokenPermissionsAttribute)

	// -- Workflows
	e.GET("/workflows", workflowsMvc.WorkflowsGet)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
