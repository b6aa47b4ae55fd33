package controllers

import (
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/gin-gonic/gin"
)

func respondError(g *gin.Context, prefix string, err error) {
	status, body := models.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logging.Log.Errorf("%s: %s %s failed: %v", prefix, g.Request.Method, g.Request.URL.Path, err)
	} else {
		logging.Log.Warnf("%s: %s %s rejected: %v", prefix, g.Request.Method, g.Request.URL.Path, err)
	}
	g.JSON(status, body)
}

func respondBindingError(g *gin.Context, prefix string, err error) {
	logging.Log.Errorf("%s: invalid request on %s: %v", prefix, g.Request.URL.Path, err)
	g.JSON(http.StatusBadRequest, models.BindingError(err))
}
