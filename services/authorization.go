package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pedigree/api/models"
	authz "pedigree/api/models/authorization"
	dtos "pedigree/api/models/dtos/authorization"
)

var publicAuthzErrorMessage string = "Something went wrong interfacing with the authorization service! Please contact the system administrators.."

type (
	AuthzService struct {
		isEnabled        bool
		authorizationUrl string
		client           *http.Client
	}
)

func NewAuthzService(cfg *models.Config) *AuthzService {
	return &AuthzService{
		isEnabled:        cfg.AuthX.IsAuthorizationEnabled,
		authorizationUrl: cfg.AuthX.AuthorizationUrl,
		client:           &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *AuthzService) IsEnabled() bool {
	return a.isEnabled
}

func (a *AuthzService) GetAuthorizationUrl() string {
	return a.authorizationUrl
}

func (a *AuthzService) EnsureAccessPermittedForUser(authnTokenString string, resource authz.Resource, permissions []authz.Permission) error {
	//	- validate authn token against external authorization service
	permissionRequestJson := dtos.PermissionRequestDto{
		RequestedResource: resource,
		RequiredPermissions: authz.PermissionsList{
			List: permissions,
		},
	}

	permJsonData, permissionJsonMarshallErr := json.Marshal(&permissionRequestJson)
	if permissionJsonMarshallErr != nil {
		fmt.Printf("%s\n", permissionJsonMarshallErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	// Create a Bearer string by appending string access token
	var bearer = "Bearer " + authnTokenString

	evaluateUrl := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(a.GetAuthorizationUrl(), "/"), "policy", "evaluate")
	permReq, permReqErr := http.NewRequest("POST", evaluateUrl, bytes.NewBuffer(permJsonData))
	if permReqErr != nil {
		fmt.Printf("%s\n", permReqErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}
	permReq.Header.Add("Authorization", bearer)
	permReq.Header.Add("Content-Type", "application/json")

	permRes, permResErr := a.client.Do(permReq)
	if permResErr != nil {
		fmt.Printf("%s\n", permResErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	defer permRes.Body.Close()

	if permRes.StatusCode != http.StatusOK {
		return errors.New("access denied")
	}

	var permJson map[string]interface{}
	if decodeErr := json.NewDecoder(permRes.Body).Decode(&permJson); decodeErr != nil {
		fmt.Printf("%s\n", decodeErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	accessPermitted, isMapContainsKey := permJson["result"]
	if !isMapContainsKey {
		fmt.Printf("%s\n", "Missing 'result' key from authorization service response!")
		return errors.New(publicAuthzErrorMessage)
	}
	if permitted, isBool := accessPermitted.(bool); !isBool || !permitted {
		return errors.New("access denied")
	}

	// Access permitted! Return no error
	return nil
}

func (a *AuthzService) FetchAuthorizationHeader(headers http.Header) (string, error) {
	if headers.Get("Authorization") == "" {
		return "", errors.New("missing 'Authorization' HTTP header")
	}

	authnToken := headers.Get("Authorization")
	// remove "Bearer " if need be, assuming the header is properly formatted
	if strings.HasPrefix(authnToken, "Bearer ") {
		authnToken = strings.TrimPrefix(authnToken, "Bearer ")
	}

	return authnToken, nil
}
