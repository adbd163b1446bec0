package workflows

import (
	"fmt"
	"net/http"
	"time"

	w "pedigree/api/workflows"

	"github.com/labstack/echo"
)

func WorkflowsGet(c echo.Context) error {
	fmt.Printf("[%s] - WorkflowsGet hit!\n", time.Now())
	return c.JSON(http.StatusOK, w.WORKFLOW_INHERITANCE_SCHEMA)
}
