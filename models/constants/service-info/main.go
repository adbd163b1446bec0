package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Bento Pedigree Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Pedigree inheritance-pattern API!"
	SERVICE_DESCRIPTION ServiceInfo = "Pedigree inheritance-pattern analysis service for a Bento platform node."

	SERVICE_ARTIFACT    ServiceInfo = "pedigree"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("ca.c3g.bento:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
