package transport

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const callerKey = "caller"

// Tokens holds the shared secrets that map request headers to roles. An
// empty token disables that role.
type Tokens struct {
	Admin string
	Jury  string
	Team  string
}

func NewRouter(ginMode string, tokens Tokens, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(ginMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(CORSMiddleware())
	engine.Use(RoleMiddleware(tokens))

	//Bypass swagger for non-local
	if os.Getenv("APP_ENV") == "local" {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	engine.NoRoute(NoRouteHandler())

	return engine
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, x-admin-token, x-jury-token, x-jury-id, x-team-token, x-team-id")

		if c.Request.Method == "OPTIONS" {
			logging.Log.Infof("OPTIONS request received:%s", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
	}
}

func tokenMatches(got, expected string) bool {
	return expected != "" && subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}

// RoleMiddleware derives the caller once per request. Requests without role
// headers continue as public; a role header with a wrong token is rejected.
func RoleMiddleware(tokens Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := contest.Caller{Role: contest.RolePublic}

		switch {
		case c.GetHeader("x-admin-token") != "":
			if !tokenMatches(c.GetHeader("x-admin-token"), tokens.Admin) {
				unauthorized(c, "admin")
				return
			}
			caller = contest.Admin()
		case c.GetHeader("x-jury-token") != "":
			id := c.GetHeader("x-jury-id")
			if !tokenMatches(c.GetHeader("x-jury-token"), tokens.Jury) || id == "" {
				unauthorized(c, "jury")
				return
			}
			caller = contest.Jury(id)
		case c.GetHeader("x-team-token") != "":
			id := c.GetHeader("x-team-id")
			if !tokenMatches(c.GetHeader("x-team-token"), tokens.Team) || id == "" {
				unauthorized(c, "team")
				return
			}
			caller = contest.TeamCaller(id)
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

func unauthorized(c *gin.Context, role string) {
	logging.Log.Warnf("AUTH: rejected %s credentials on %s", role, c.Request.URL.Path)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials", "code": "UNAUTHENTICATED"})
}

// CallerFrom returns the caller stored by RoleMiddleware, or a public caller.
func CallerFrom(c *gin.Context) contest.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(contest.Caller); ok {
			return caller
		}
	}
	return contest.Caller{Role: contest.RolePublic}
}

// AdminAuthMiddleware stops non-admin callers before the handler runs.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerFrom(c).Role != contest.RoleAdmin {
			logging.Log.Warnf("ADMIN: Unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
