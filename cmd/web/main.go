// @title           JobBridge API
// @version         1.0
// @description     Job marketplace backend: job seekers, companies and organizations with admin-reviewed subscriptions.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"jobbridge_backend/internal/app"

	_ "jobbridge_backend/docs"
)

func main() {
	app.Run()
}
