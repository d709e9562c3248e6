package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const devOrigin = "http://localhost:3000"

// allowedOrigins merges the dev server with ORIGIN_URL, which may list
// several comma separated site origins.
func allowedOrigins(originURL string) []string {
	origins := []string{devOrigin}
	for _, origin := range strings.Split(originURL, ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" && origin != devOrigin {
			origins = append(origins, origin)
		}
	}
	return origins
}

// CORSMiddleware allows credentialed requests so the session and members
// cookies reach the cart endpoints from the site.
func CORSMiddleware(originURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(originURL),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
