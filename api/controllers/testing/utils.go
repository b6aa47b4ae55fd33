package testing

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

const (
	AdminToken = "admin-secret"
	JuryToken  = "jury-secret"
	TeamToken  = "team-secret"
)

// PerformRequest Helper for performing requests in tests.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			panic("failed to marshal request body: " + err.Error())
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func AdminHeaders() map[string]string {
	return map[string]string{"x-admin-token": AdminToken}
}

func JuryHeaders(juryID string) map[string]string {
	return map[string]string{"x-jury-token": JuryToken, "x-jury-id": juryID}
}

func TeamHeaders(teamID string) map[string]string {
	return map[string]string{"x-team-token": TeamToken, "x-team-id": teamID}
}
