// @title           joonbee auth
// @version         1.0
// @description     Identity server: OAuth callbacks, session refresh, onboarding.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4001
// @BasePath        /

package main

import "joonbee_backend/internal/app"

func main() {
	app.RunAuth()
}
