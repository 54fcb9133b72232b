package routes

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/config"
	"github.com/masjid-annour/mosquee-backend/controllers"
	"github.com/masjid-annour/mosquee-backend/middleware"
	"github.com/masjid-annour/mosquee-backend/store"
)

// SetupRouter registers every route under the /:locale/api prefix. The store
// and config are injected here and flow into the controllers; nothing reads
// globals.
func SetupRouter(r *gin.Engine, s *store.Store, cfg *config.Config) *gin.Engine {
	// 405 + Allow header instead of a blanket 404 on known paths.
	r.HandleMethodNotAllowed = true

	auth := controllers.NewAuthController(s, cfg.JWTSecret)
	users := controllers.NewUserController(s, cfg.BaseURL)
	sermons := controllers.NewSermonController(s, cfg.BaseURL)
	news := controllers.NewNewsController(s, cfg.BaseURL)
	activities := controllers.NewActivityController(s, cfg.BaseURL)
	projects := controllers.NewProjectController(s, cfg.BaseURL)
	donations := controllers.NewDonationController(s, cfg.BaseURL)
	subscribers := controllers.NewSubscriberController(s, cfg.BaseURL, cfg.SMTP)
	health := controllers.NewHealthController(s)

	r.GET("/health", health.Check)

	api := r.Group("/:locale/api", middleware.Locale())

	authed := middleware.Auth(cfg.JWTSecret)
	admin := []gin.HandlerFunc{authed, middleware.RequireAdmin()}

	ar := api.Group("/auth")
	{
		ar.POST("/register", auth.Register)
		ar.POST("/login", auth.Login)
		ar.POST("/change-password", authed, auth.ChangePassword)
	}

	ur := api.Group("/users")
	{
		ur.GET("", append(admin, users.List)...)
		if cfg.PublicUserCreate {
			ur.POST("", middleware.OptionalAuth(cfg.JWTSecret), users.Create)
		} else {
			ur.POST("", append(admin, users.Create)...)
		}
		ur.GET("/:id", authed, users.Get)
		ur.PUT("/:id", authed, users.Update)
		ur.PATCH("/:id", authed, users.Update)
		ur.DELETE("/:id", append(admin, users.Delete)...)
	}

	sr := api.Group("/sermons")
	{
		sr.GET("", sermons.List)
		sr.GET("/:id", sermons.Get)
		sr.POST("", append(admin, sermons.Create)...)
		sr.PUT("/:id", append(admin, sermons.Update)...)
		sr.DELETE("/:id", append(admin, sermons.Delete)...)
	}

	nr := api.Group("/news")
	{
		nr.GET("", news.List)
		nr.GET("/:id", news.Get)
		nr.POST("", append(admin, news.Create)...)
		nr.PUT("/:id", append(admin, news.Update)...)
		nr.DELETE("/:id", append(admin, news.Delete)...)
	}

	acr := api.Group("/activities")
	{
		acr.GET("", activities.List)
		acr.GET("/:id", activities.Get)
		acr.POST("", append(admin, activities.Create)...)
		acr.PUT("/:id", append(admin, activities.Update)...)
		acr.DELETE("/:id", append(admin, activities.Delete)...)
	}

	pr := api.Group("/projects")
	{
		pr.GET("", projects.List)
		pr.GET("/:id", projects.Get)
		pr.GET("/:id/progress", projects.Progress)
		pr.POST("", append(admin, projects.Create)...)
		pr.PUT("/:id", append(admin, projects.Update)...)
		pr.DELETE("/:id", append(admin, projects.Delete)...)
	}

	dr := api.Group("/donations")
	{
		dr.POST("", authed, donations.Create)
		dr.GET("", append(admin, donations.List)...)
	}

	api.POST("/subscribe", subscribers.Subscribe)
	api.GET("/subscribers", append(admin, subscribers.List)...)

	r.NoMethod(methodNotAllowed(r))

	return r
}

// methodNotAllowed answers 405 and lists the methods the path does accept.
func methodNotAllowed(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		seen := map[string]bool{}
		var allowed []string
		for _, route := range r.Routes() {
			if !pathMatches(route.Path, c.Request.URL.Path) || seen[route.Method] {
				continue
			}
			seen[route.Method] = true
			allowed = append(allowed, route.Method)
		}
		if len(allowed) > 0 {
			sort.Strings(allowed)
			c.Header("Allow", strings.Join(allowed, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	}
}

func pathMatches(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	cs := strings.Split(path, "/")
	if len(ps) != len(cs) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") {
			if cs[i] == "" {
				return false
			}
			continue
		}
		if seg != cs[i] {
			return false
		}
	}
	return true
}
