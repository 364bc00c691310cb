// @title           joonbee API
// @version         1.0
// @description     Interview practice platform: questions, interviews, carts.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "joonbee_backend/internal/app"

func main() {
	app.RunAPI()
}
